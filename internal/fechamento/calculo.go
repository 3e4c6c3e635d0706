package fechamento

import "math"

// EpsilonPadrao é a tolerância da conferência de caixa, em unidade monetária.
const EpsilonPadrao = 0.01

// AvesPorCaixaPadrao converte caixas em unidades quando a rota não configura
// outro multiplicador.
const AvesPorCaixaPadrao = 6

// CalcularMedia devolve o consumo médio (km/l) do trajeto. Sem litros
// abastecidos a média é zero; dado de combustível faltando não é erro.
func CalcularMedia(kmSaida, kmChegada, litros float64) float64 {
	if litros == 0 {
		return 0
	}
	return (kmChegada - kmSaida) / litros
}

// CalcularValorCaixa devolve o peso faturado por caixa carregada; zero quando
// nada foi carregado.
func CalcularValorCaixa(kgNF float64, cxCarregada int) float64 {
	if cxCarregada == 0 {
		return 0
	}
	return kgNF / float64(cxCarregada)
}

// CalcularSaldo aplica a fórmula oficial do acerto da rota:
//
//	saldo = recebido − despesas − adiantamento + devolver + cheque
//
// Qualquer divergência em relação a ela é erro de digitação dos dados, nunca
// algo a corrigir aqui.
func CalcularSaldo(totalRecebido, totalDespesas, adiantamento, devolver, cheque float64) float64 {
	return totalRecebido - totalDespesas - adiantamento + devolver + cheque
}

// CedulaEntrada é a contagem declarada de um valor de face.
type CedulaEntrada struct {
	ValorFace  float64 `json:"valorFace"`
	Quantidade int     `json:"quantidade"`
}

// SomarCedulas devolve o total físico contado (quantidade × valor de face).
func SomarCedulas(cedulas []CedulaEntrada) float64 {
	var total float64
	for _, c := range cedulas {
		total += float64(c.Quantidade) * c.ValorFace
	}
	return total
}

// ConferirCedulas compara o total contado com o dinheiro declarado, dentro da
// tolerância. Divergência rejeita o fechamento.
func ConferirCedulas(cedulas []CedulaEntrada, totalDinheiro, epsilon float64) error {
	if math.Abs(SomarCedulas(cedulas)-totalDinheiro) > epsilon {
		return ErrCedulasNaoConferem
	}
	return nil
}
