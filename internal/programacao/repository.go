package programacao

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Programacao) error
	ListarTodas(db *gorm.DB) ([]Programacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Programacao, error)
	BuscarPorCodigo(db *gorm.DB, codigo string) (*Programacao, error)
	AtualizarStatusSe(db *gorm.DB, id uint, de, para string) (bool, error)
	AtualizarTotais(db *gorm.DB, id uint, totalCaixas int, kgEstimado float64) error
	TravarParaAlocacao(db *gorm.DB, id uint) (bool, error)
	TravarParaLancamentos(db *gorm.DB, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Programacao) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Programacao, error) {
	var list []Programacao
	err := db.Order("data desc, id desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Programacao, error) {
	var p Programacao
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) BuscarPorCodigo(db *gorm.DB, codigo string) (*Programacao, error) {
	var p Programacao
	if err := db.Where("upper(codigo) = upper(?)", codigo).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AtualizarStatusSe só avança o status se ele ainda for o esperado. Serve de
// checagem otimista contra uma transição concorrente na mesma programação.
func (r *repositoryImpl) AtualizarStatusSe(db *gorm.DB, id uint, de, para string) (bool, error) {
	res := db.Model(&Programacao{}).Where("id = ? AND status = ?", id, de).Update("status", para)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repositoryImpl) AtualizarTotais(db *gorm.DB, id uint, totalCaixas int, kgEstimado float64) error {
	return db.Model(&Programacao{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_caixas": totalCaixas,
		"kg_estimado":  kgEstimado,
	}).Error
}

// TravarParaAlocacao toca a linha da programação exigindo o status inicial.
// O UPDATE guardado prende a linha até o fim da transação e revalida o status
// dentro dela, serializando a alocação contra transições concorrentes.
func (r *repositoryImpl) TravarParaAlocacao(db *gorm.DB, id uint) (bool, error) {
	return tocarLinha(db, id, statusOnde(PermiteAlocacao))
}

// TravarParaLancamentos toca a linha da programação exigindo um status que
// ainda aceite escrita de filhos (PDC, despesas, cédulas). Escritores
// concorrentes e o fechamento da mesma rota passam a conflitar na linha da
// programação, então nenhum lançamento escapa da janela de agregação do
// fechamento.
func (r *repositoryImpl) TravarParaLancamentos(db *gorm.DB, id uint) (bool, error) {
	return tocarLinha(db, id, statusOnde(PermiteLancamentos))
}

func tocarLinha(db *gorm.DB, id uint, statusPermitidos []string) (bool, error) {
	res := db.Model(&Programacao{}).
		Where("id = ? AND status IN ?", id, statusPermitidos).
		Update("updated_at", time.Now())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
