package pedido

import "gorm.io/gorm"

// Pedido é um pedido de venda importado, disponível para alocação em uma
// programação. A alocação só consulta estes campos; nunca os altera.
type Pedido struct {
	gorm.Model
	Numero        string  `json:"numero" gorm:"size:30;uniqueIndex"`
	Cliente       string  `json:"cliente" gorm:"size:255;not null"`
	Cidade        string  `json:"cidade" gorm:"size:100"`
	Caixas        int     `json:"caixas" gorm:"not null;default:0"`
	KgCliente     float64 `json:"kgCliente" gorm:"not null;default:0"`
	ValorUnitario float64 `json:"valorUnitario" gorm:"not null;default:0"`
}

// Migrate cria a tabela de pedidos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pedido{})
}
