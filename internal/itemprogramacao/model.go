package itemprogramacao

import "gorm.io/gorm"

// Item liga um pedido de venda a uma programação. Caixas, valor unitário e
// peso do cliente são copiados do pedido no momento da alocação e não são
// relidos depois, mesmo que o pedido mude.
type Item struct {
	gorm.Model
	ProgramacaoID uint    `json:"programacaoId" gorm:"not null;index"`
	PedidoID      uint    `json:"pedidoId" gorm:"not null;index"`
	Caixas        int     `json:"caixas" gorm:"not null;default:0"`
	ValorUnitario float64 `json:"valorUnitario" gorm:"not null;default:0"`
	KgCliente     float64 `json:"kgCliente" gorm:"not null;default:0"`
}

// Migrate cria a tabela de itens de programação.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Item{})
}
