package pdc

import (
	"github.com/FrigoAves/api-rotas/internal/itemprogramacao"
	"github.com/FrigoAves/api-rotas/internal/programacao"
	"gorm.io/gorm"
)

// Entrada de registro de cobrança.
type Entrada struct {
	Pago           bool    `json:"pago"`
	ValorPago      float64 `json:"valorPago"`
	FormaPagamento string  `json:"formaPagamento"`
	NotaFiscal     string  `json:"notaFiscal"`
	Observacao     string  `json:"observacao"`
}

// RegistrarPagamento valida e grava (ou sobrescreve) o lançamento do par
// (programação, item). Toda validação acontece antes de qualquer escrita.
func RegistrarPagamento(db *gorm.DB, programacaoID, itemID uint, entrada Entrada) (*Lancamento, error) {
	if !FormaValida(entrada.FormaPagamento) {
		return nil, ErrFormaPagamentoInvalida
	}
	if entrada.ValorPago < 0 {
		return nil, ErrValorInvalido
	}

	progRepo := programacao.NewRepository()
	repo := NewRepository()

	var lanc *Lancamento
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := progRepo.BuscarPorID(tx, programacaoID); err != nil {
			return err
		}
		// prende a linha da programação; um fechamento concorrente da mesma
		// rota serializa contra este lançamento e nunca perde a soma
		if ok, err := progRepo.TravarParaLancamentos(tx, programacaoID); err != nil {
			return err
		} else if !ok {
			return programacao.ErrStatusInvalido
		}

		var item itemprogramacao.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		if item.ProgramacaoID != programacaoID {
			return ErrItemForaDaProgramacao
		}

		novo := Lancamento{
			ProgramacaoID:  programacaoID,
			ItemID:         itemID,
			Pago:           entrada.Pago,
			ValorPago:      entrada.ValorPago,
			FormaPagamento: entrada.FormaPagamento,
			NotaFiscal:     entrada.NotaFiscal,
			Observacao:     entrada.Observacao,
		}
		if err := repo.Upsert(tx, &novo); err != nil {
			return err
		}
		lanc = &novo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lanc, nil
}
