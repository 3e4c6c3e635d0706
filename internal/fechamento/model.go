package fechamento

import (
	"errors"

	"gorm.io/gorm"
)

// FechamentoRota é o resumo financeiro e operacional final de uma programação.
// Exatamente um por programação (índice único); imutável depois de gravado.
type FechamentoRota struct {
	gorm.Model
	ProgramacaoID uint `json:"programacaoId" gorm:"not null;uniqueIndex"`

	KmSaida   float64 `json:"kmSaida" gorm:"not null;default:0"`
	KmChegada float64 `json:"kmChegada" gorm:"not null;default:0"`
	Litros    float64 `json:"litros" gorm:"not null;default:0"`
	Media     float64 `json:"media" gorm:"not null;default:0"`

	CxCarregada  int     `json:"cxCarregada" gorm:"not null;default:0"`
	KgNF         float64 `json:"kgNf" gorm:"not null;default:0"`
	KgCarregado  float64 `json:"kgCarregado" gorm:"not null;default:0"`
	AvesPorCaixa int     `json:"avesPorCaixa" gorm:"not null;default:6"`
	ValorCaixa   float64 `json:"valorCaixa" gorm:"not null;default:0"`

	Adiantamento  float64 `json:"adiantamento" gorm:"not null;default:0"`
	Devolver      float64 `json:"devolver" gorm:"not null;default:0"`
	Cheque        float64 `json:"cheque" gorm:"not null;default:0"`
	TotalDinheiro float64 `json:"totalDinheiro" gorm:"not null;default:0"`
	TotalDespesas float64 `json:"totalDespesas" gorm:"not null;default:0"`
	TotalRecebido float64 `json:"totalRecebido" gorm:"not null;default:0"`
	Saldo         float64 `json:"saldo" gorm:"not null;default:0"`
}

// FechamentoDespesa é um gasto avulso da rota (pedágio, refeição, reparo).
// Imutável depois que o fechamento da programação é gravado.
type FechamentoDespesa struct {
	gorm.Model
	ProgramacaoID uint    `json:"programacaoId" gorm:"not null;index"`
	Descricao     string  `json:"descricao" gorm:"size:255;not null"`
	Valor         float64 `json:"valor" gorm:"not null;default:0"`
}

// FechamentoCedula é a contagem de uma cédula/moeda na conferência de caixa.
// No máximo uma linha por (programação, valor de face); regravar sobrescreve
// a quantidade.
type FechamentoCedula struct {
	gorm.Model
	ProgramacaoID uint    `json:"programacaoId" gorm:"not null;uniqueIndex:idx_cedula_programacao_face"`
	ValorFace     float64 `json:"valorFace" gorm:"not null;uniqueIndex:idx_cedula_programacao_face"`
	Quantidade    int     `json:"quantidade" gorm:"not null;default:0"`
	Subtotal      float64 `json:"subtotal" gorm:"not null;default:0"`
}

var (
	// ErrRotaJaFechada indica fechamento já gravado para a programação.
	ErrRotaJaFechada = errors.New("programação já possui fechamento")
	// ErrDadosIncompletos indica campo numérico obrigatório ausente ou negativo.
	ErrDadosIncompletos = errors.New("dados numéricos do fechamento ausentes ou negativos")
	// ErrCedulasNaoConferem indica soma das cédulas divergente do dinheiro declarado.
	ErrCedulasNaoConferem = errors.New("soma das cédulas não confere com o total em dinheiro")
	// ErrDespesaInvalida cobre despesa sem descrição ou com valor negativo.
	ErrDespesaInvalida = errors.New("despesa inválida")
)

// Migrate cria as tabelas do fechamento.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&FechamentoRota{}, &FechamentoDespesa{}, &FechamentoCedula{})
}
