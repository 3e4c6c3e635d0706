package fechamento

import (
	"errors"

	"github.com/FrigoAves/api-rotas/internal/pdc"
	"github.com/FrigoAves/api-rotas/internal/programacao"
	"gorm.io/gorm"
)

// Entrada reúne os dados digitados no acerto da rota.
type Entrada struct {
	KmSaida       float64         `json:"kmSaida"`
	KmChegada     float64         `json:"kmChegada"`
	Litros        float64         `json:"litros"`
	CxCarregada   int             `json:"cxCarregada"`
	KgNF          float64         `json:"kgNf"`
	KgCarregado   float64         `json:"kgCarregado"`
	AvesPorCaixa  int             `json:"avesPorCaixa"`
	Adiantamento  float64         `json:"adiantamento"`
	Devolver      float64         `json:"devolver"`
	Cheque        float64         `json:"cheque"`
	TotalDinheiro float64         `json:"totalDinheiro"`
	Cedulas       []CedulaEntrada `json:"cedulas"`
}

func (e *Entrada) validar() error {
	if e.KmSaida < 0 || e.KmChegada < 0 || e.Litros < 0 ||
		e.CxCarregada < 0 || e.KgNF < 0 || e.KgCarregado < 0 ||
		e.Adiantamento < 0 || e.Devolver < 0 || e.Cheque < 0 ||
		e.TotalDinheiro < 0 || e.AvesPorCaixa < 0 {
		return ErrDadosIncompletos
	}
	if e.KmChegada < e.KmSaida {
		return ErrDadosIncompletos
	}
	for _, c := range e.Cedulas {
		if c.ValorFace <= 0 || c.Quantidade < 0 {
			return ErrDadosIncompletos
		}
	}
	return nil
}

// Existe informa se a programação já possui fechamento. Assinatura compatível
// com programacao.VerificadorFechamento para a trava "Em Fechamento" → "Fechada".
func Existe(db *gorm.DB, programacaoID uint) (bool, error) {
	return NewRepository().Existe(db, programacaoID)
}

// Fechar grava o fechamento da programação: valida a entrada, confere as
// cédulas contra o dinheiro declarado, agrega recebimentos e despesas e
// persiste fechamento + cédulas em uma única transação. Fechamentos
// concorrentes disputam o índice único; o perdedor recebe ErrRotaJaFechada.
func Fechar(db *gorm.DB, programacaoID uint, entrada Entrada) (*FechamentoRota, error) {
	if err := entrada.validar(); err != nil {
		return nil, err
	}
	if entrada.AvesPorCaixa == 0 {
		entrada.AvesPorCaixa = AvesPorCaixaPadrao
	}
	if err := ConferirCedulas(entrada.Cedulas, entrada.TotalDinheiro, EpsilonPadrao); err != nil {
		return nil, err
	}

	progRepo := programacao.NewRepository()
	pdcRepo := pdc.NewRepository()
	repo := NewRepository()

	var fech *FechamentoRota
	err := db.Transaction(func(tx *gorm.DB) error {
		// UPDATE guardado no topo da transação: prende a linha da programação
		// até o commit, revalida o status e já grava o peso real apurado na
		// chegada. Lançamentos concorrentes na mesma rota conflitam nesta
		// linha, então as somas abaixo enxergam tudo que foi commitado antes.
		res := tx.Model(&programacao.Programacao{}).
			Where("id = ? AND status = ?", programacaoID, programacao.StatusEmFechamento).
			Update("kg_real", entrada.KgCarregado)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			prog, err := progRepo.BuscarPorID(tx, programacaoID)
			if err != nil {
				return err
			}
			if prog.Status == programacao.StatusFechada {
				return ErrRotaJaFechada
			}
			return programacao.ErrStatusInvalido
		}

		if existe, err := repo.Existe(tx, programacaoID); err != nil {
			return err
		} else if existe {
			return ErrRotaJaFechada
		}

		totalRecebido, err := pdcRepo.TotalRecebido(tx, programacaoID)
		if err != nil {
			return err
		}
		totalDespesas, err := repo.SomarDespesas(tx, programacaoID)
		if err != nil {
			return err
		}

		novo := FechamentoRota{
			ProgramacaoID: programacaoID,
			KmSaida:       entrada.KmSaida,
			KmChegada:     entrada.KmChegada,
			Litros:        entrada.Litros,
			Media:         CalcularMedia(entrada.KmSaida, entrada.KmChegada, entrada.Litros),
			CxCarregada:   entrada.CxCarregada,
			KgNF:          entrada.KgNF,
			KgCarregado:   entrada.KgCarregado,
			AvesPorCaixa:  entrada.AvesPorCaixa,
			ValorCaixa:    CalcularValorCaixa(entrada.KgNF, entrada.CxCarregada),
			Adiantamento:  entrada.Adiantamento,
			Devolver:      entrada.Devolver,
			Cheque:        entrada.Cheque,
			TotalDinheiro: entrada.TotalDinheiro,
			TotalDespesas: totalDespesas,
			TotalRecebido: totalRecebido,
			Saldo:         CalcularSaldo(totalRecebido, totalDespesas, entrada.Adiantamento, entrada.Devolver, entrada.Cheque),
		}

		if err := repo.Criar(tx, &novo); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrRotaJaFechada
			}
			return err
		}

		// a contagem enviada no fechamento é a autoritativa: faces gravadas
		// antes e ausentes da entrada saem da tabela
		faces := make([]float64, 0, len(entrada.Cedulas))
		for _, c := range entrada.Cedulas {
			faces = append(faces, c.ValorFace)
		}
		if err := repo.RemoverCedulasForaDaLista(tx, programacaoID, faces); err != nil {
			return err
		}
		for _, c := range entrada.Cedulas {
			cedula := FechamentoCedula{
				ProgramacaoID: programacaoID,
				ValorFace:     c.ValorFace,
				Quantidade:    c.Quantidade,
			}
			if err := repo.UpsertCedula(tx, &cedula); err != nil {
				return err
			}
		}

		fech = &novo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fech, nil
}

// RegistrarDespesa anexa um gasto à programação. Depois do fechamento gravado
// a lista de despesas fica congelada.
func RegistrarDespesa(db *gorm.DB, programacaoID uint, descricao string, valor float64) (*FechamentoDespesa, error) {
	if descricao == "" || valor < 0 {
		return nil, ErrDespesaInvalida
	}

	progRepo := programacao.NewRepository()
	repo := NewRepository()

	var despesa *FechamentoDespesa
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := progRepo.BuscarPorID(tx, programacaoID); err != nil {
			return err
		}
		// prende a linha da programação: um fechamento concorrente da mesma
		// rota espera este commit e conta a despesa, ou commita antes e a
		// checagem de existência abaixo rejeita a escrita tardia
		if ok, err := progRepo.TravarParaLancamentos(tx, programacaoID); err != nil {
			return err
		} else if !ok {
			return programacao.ErrStatusInvalido
		}
		if existe, err := repo.Existe(tx, programacaoID); err != nil {
			return err
		} else if existe {
			return ErrRotaJaFechada
		}

		nova := FechamentoDespesa{ProgramacaoID: programacaoID, Descricao: descricao, Valor: valor}
		if err := repo.CriarDespesa(tx, &nova); err != nil {
			return err
		}
		despesa = &nova
		return nil
	})
	if err != nil {
		return nil, err
	}
	return despesa, nil
}

// RegistrarCedulas grava (ou regrava) a contagem de cédulas da programação
// antes do fechamento. Valor de face repetido sobrescreve a quantidade.
func RegistrarCedulas(db *gorm.DB, programacaoID uint, cedulas []CedulaEntrada) ([]FechamentoCedula, error) {
	for _, c := range cedulas {
		if c.ValorFace <= 0 || c.Quantidade < 0 {
			return nil, ErrDadosIncompletos
		}
	}

	progRepo := programacao.NewRepository()
	repo := NewRepository()

	var gravadas []FechamentoCedula
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := progRepo.BuscarPorID(tx, programacaoID); err != nil {
			return err
		}
		if ok, err := progRepo.TravarParaLancamentos(tx, programacaoID); err != nil {
			return err
		} else if !ok {
			return programacao.ErrStatusInvalido
		}
		if existe, err := repo.Existe(tx, programacaoID); err != nil {
			return err
		} else if existe {
			return ErrRotaJaFechada
		}

		for _, c := range cedulas {
			cedula := FechamentoCedula{
				ProgramacaoID: programacaoID,
				ValorFace:     c.ValorFace,
				Quantidade:    c.Quantidade,
			}
			if err := repo.UpsertCedula(tx, &cedula); err != nil {
				return err
			}
		}
		lista, err := repo.ListarCedulas(tx, programacaoID)
		if err != nil {
			return err
		}
		gravadas = lista
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gravadas, nil
}
