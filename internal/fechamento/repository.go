package fechamento

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Criar(db *gorm.DB, f *FechamentoRota) error
	BuscarPorProgramacao(db *gorm.DB, programacaoID uint) (*FechamentoRota, error)
	Existe(db *gorm.DB, programacaoID uint) (bool, error)

	CriarDespesa(db *gorm.DB, d *FechamentoDespesa) error
	ListarDespesas(db *gorm.DB, programacaoID uint) ([]FechamentoDespesa, error)
	SomarDespesas(db *gorm.DB, programacaoID uint) (float64, error)

	UpsertCedula(db *gorm.DB, c *FechamentoCedula) error
	RemoverCedulasForaDaLista(db *gorm.DB, programacaoID uint, faces []float64) error
	ListarCedulas(db *gorm.DB, programacaoID uint) ([]FechamentoCedula, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *FechamentoRota) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorProgramacao(db *gorm.DB, programacaoID uint) (*FechamentoRota, error) {
	var f FechamentoRota
	err := db.Where("programacao_id = ?", programacaoID).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Existe(db *gorm.DB, programacaoID uint) (bool, error) {
	_, err := r.BuscarPorProgramacao(db, programacaoID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *repositoryImpl) CriarDespesa(db *gorm.DB, d *FechamentoDespesa) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarDespesas(db *gorm.DB, programacaoID uint) ([]FechamentoDespesa, error) {
	var list []FechamentoDespesa
	err := db.Where("programacao_id = ?", programacaoID).Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) SomarDespesas(db *gorm.DB, programacaoID uint) (float64, error) {
	var total float64
	err := db.Model(&FechamentoDespesa{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("programacao_id = ?", programacaoID).
		Scan(&total).Error
	return total, err
}

// UpsertCedula grava a contagem de um valor de face. O índice único em
// (programação, valor de face) garante linha única; regravar sobrescreve.
func (r *repositoryImpl) UpsertCedula(db *gorm.DB, c *FechamentoCedula) error {
	c.Subtotal = float64(c.Quantidade) * c.ValorFace
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "programacao_id"}, {Name: "valor_face"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantidade", "subtotal", "updated_at"}),
	}).Create(c).Error
}

// RemoverCedulasForaDaLista apaga as contagens da programação cujos valores de
// face não estão na lista. Remoção física: um soft delete deixaria a linha
// presa no índice único (programação, valor de face).
func (r *repositoryImpl) RemoverCedulasForaDaLista(db *gorm.DB, programacaoID uint, faces []float64) error {
	q := db.Unscoped().Where("programacao_id = ?", programacaoID)
	if len(faces) > 0 {
		q = q.Where("valor_face NOT IN ?", faces)
	}
	return q.Delete(&FechamentoCedula{}).Error
}

func (r *repositoryImpl) ListarCedulas(db *gorm.DB, programacaoID uint) ([]FechamentoCedula, error) {
	var list []FechamentoCedula
	err := db.Where("programacao_id = ?", programacaoID).Order("valor_face desc").Find(&list).Error
	return list, err
}
