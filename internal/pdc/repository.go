package pdc

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(db *gorm.DB, l *Lancamento) error
	ListarPorProgramacao(db *gorm.DB, programacaoID uint) ([]Lancamento, error)
	TotalRecebido(db *gorm.DB, programacaoID uint) (float64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Upsert grava o lançamento do par (programação, item). O índice único
// resolve a corrida entre escritores concorrentes: o segundo vira update.
func (r *repositoryImpl) Upsert(db *gorm.DB, l *Lancamento) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "programacao_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pago", "valor_pago", "forma_pagamento", "nota_fiscal", "observacao", "updated_at",
		}),
	}).Create(l).Error
}

func (r *repositoryImpl) ListarPorProgramacao(db *gorm.DB, programacaoID uint) ([]Lancamento, error) {
	var list []Lancamento
	err := db.Where("programacao_id = ?", programacaoID).Order("id").Find(&list).Error
	return list, err
}

// TotalRecebido soma os valores pagos da programação; base de caixa esperada
// para o fechamento.
func (r *repositoryImpl) TotalRecebido(db *gorm.DB, programacaoID uint) (float64, error) {
	var total float64
	err := db.Model(&Lancamento{}).
		Select("COALESCE(SUM(valor_pago), 0)").
		Where("programacao_id = ? AND pago = ?", programacaoID, true).
		Scan(&total).Error
	return total, err
}
