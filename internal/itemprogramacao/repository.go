package itemprogramacao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, item *Item) error
	ListarPorProgramacao(db *gorm.DB, programacaoID uint) ([]Item, error)
	SomarPorProgramacao(db *gorm.DB, programacaoID uint) (int, float64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, item *Item) error {
	return db.Create(item).Error
}

// ListarPorProgramacao devolve os itens na ordem de inserção.
func (r *repositoryImpl) ListarPorProgramacao(db *gorm.DB, programacaoID uint) ([]Item, error) {
	var itens []Item
	err := db.Where("programacao_id = ?", programacaoID).Order("id").Find(&itens).Error
	return itens, err
}

// SomarPorProgramacao devolve o total de caixas e a soma de kg dos itens.
func (r *repositoryImpl) SomarPorProgramacao(db *gorm.DB, programacaoID uint) (int, float64, error) {
	var soma struct {
		Caixas int
		Kg     float64
	}
	err := db.Model(&Item{}).
		Select("COALESCE(SUM(caixas), 0) AS caixas, COALESCE(SUM(kg_cliente), 0) AS kg").
		Where("programacao_id = ?", programacaoID).
		Scan(&soma).Error
	return soma.Caixas, soma.Kg, err
}
