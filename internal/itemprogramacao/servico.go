package itemprogramacao

import (
	"errors"

	"github.com/FrigoAves/api-rotas/internal/pedido"
	"github.com/FrigoAves/api-rotas/internal/programacao"
	"gorm.io/gorm"
)

// ErrValidacao cobre entradas fora de faixa na alocação.
var ErrValidacao = errors.New("dados de alocação inválidos")

// Entrada da alocação. Campos zerados herdam o snapshot do pedido.
type Entrada struct {
	PedidoID      uint    `json:"pedidoId"`
	Caixas        int     `json:"caixas"`
	ValorUnitario float64 `json:"valorUnitario"`
	KgCliente     float64 `json:"kgCliente"`
}

// Alocar anexa um pedido à programação e recalcula os agregados da rota
// (total de caixas e kg estimado) na mesma transação.
func Alocar(db *gorm.DB, programacaoID uint, entrada Entrada) (*Item, error) {
	if entrada.Caixas < 0 || entrada.ValorUnitario < 0 || entrada.KgCliente < 0 {
		return nil, ErrValidacao
	}

	progRepo := programacao.NewRepository()
	pedRepo := pedido.NewRepository()
	itemRepo := NewRepository()

	var item *Item
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := progRepo.BuscarPorID(tx, programacaoID); err != nil {
			return err
		}
		// prende a linha da programação e revalida o status inicial dentro
		// da transação, contra uma transição concorrente
		if ok, err := progRepo.TravarParaAlocacao(tx, programacaoID); err != nil {
			return err
		} else if !ok {
			return programacao.ErrStatusInvalido
		}

		ped, err := pedRepo.BuscarPorID(tx, entrada.PedidoID)
		if err != nil {
			return err
		}

		novo := Item{
			ProgramacaoID: programacaoID,
			PedidoID:      ped.ID,
			Caixas:        entrada.Caixas,
			ValorUnitario: entrada.ValorUnitario,
			KgCliente:     entrada.KgCliente,
		}
		// snapshot do pedido quando o chamador não informa os valores
		if novo.Caixas == 0 {
			novo.Caixas = ped.Caixas
		}
		if novo.ValorUnitario == 0 {
			novo.ValorUnitario = ped.ValorUnitario
		}
		if novo.KgCliente == 0 {
			novo.KgCliente = ped.KgCliente
		}

		if err := itemRepo.Criar(tx, &novo); err != nil {
			return err
		}

		totalCaixas, kgEstimado, err := itemRepo.SomarPorProgramacao(tx, programacaoID)
		if err != nil {
			return err
		}
		if err := progRepo.AtualizarTotais(tx, programacaoID, totalCaixas, kgEstimado); err != nil {
			return err
		}

		item = &novo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
