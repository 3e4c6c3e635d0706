package pdc

import (
	"errors"

	"gorm.io/gorm"
)

// Lancamento registra a cobrança de um item da programação. No máximo um
// lançamento por par (programação, item): novo registro sobrescreve o antigo,
// nunca duplica.
type Lancamento struct {
	gorm.Model
	ProgramacaoID  uint    `json:"programacaoId" gorm:"not null;uniqueIndex:idx_pdc_programacao_item"`
	ItemID         uint    `json:"itemId" gorm:"not null;uniqueIndex:idx_pdc_programacao_item"`
	Pago           bool    `json:"pago" gorm:"not null;default:false"`
	ValorPago      float64 `json:"valorPago" gorm:"not null;default:0"`
	FormaPagamento string  `json:"formaPagamento" gorm:"size:20;not null"`
	NotaFiscal     string  `json:"notaFiscal" gorm:"size:30"`
	Observacao     string  `json:"observacao" gorm:"size:255"`
}

// Formas de pagamento aceitas. Valor fora da lista é rejeitado na borda;
// texto livre só na observação.
const (
	FormaDinheiro = "Dinheiro"
	FormaPrazo    = "Prazo"
	FormaCheque   = "Cheque"
	FormaPix      = "Pix"
	FormaBoleto   = "Boleto"
)

var (
	// ErrFormaPagamentoInvalida indica forma fora da enumeração.
	ErrFormaPagamentoInvalida = errors.New("forma de pagamento desconhecida")
	// ErrValorInvalido indica valor pago negativo.
	ErrValorInvalido = errors.New("valor pago não pode ser negativo")
	// ErrItemForaDaProgramacao indica item que não pertence à programação.
	ErrItemForaDaProgramacao = errors.New("item não pertence à programação")
)

// FormaValida informa se a forma de pagamento faz parte da enumeração.
func FormaValida(f string) bool {
	switch f {
	case FormaDinheiro, FormaPrazo, FormaCheque, FormaPix, FormaBoleto:
		return true
	}
	return false
}

// Migrate cria a tabela de lançamentos de PDC.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}
