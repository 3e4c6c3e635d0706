package programacao

import (
	"time"

	"gorm.io/gorm"
)

// Programacao é uma viagem de entrega: raiz do agregado que possui itens,
// lançamentos de PDC, despesas, cédulas e fechamento.
type Programacao struct {
	gorm.Model
	Codigo      string    `json:"codigo" gorm:"size:8;not null;uniqueIndex"`
	Data        time.Time `json:"data" gorm:"not null"`
	MotoristaID uint      `json:"motoristaId" gorm:"not null;index"`
	VeiculoID   uint      `json:"veiculoId" gorm:"not null;index"`
	EquipeID    uint      `json:"equipeId" gorm:"index"`

	// Agregados mantidos pela alocação de itens.
	TotalCaixas int     `json:"totalCaixas" gorm:"not null;default:0"`
	KgEstimado  float64 `json:"kgEstimado" gorm:"not null;default:0"`
	KgReal      float64 `json:"kgReal" gorm:"not null;default:0"`

	Status string `json:"status" gorm:"size:30;not null;default:'Aguardando NF'"`
}

// Migrate cria a tabela de programações.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Programacao{})
}
