package programacao

import "errors"

// Ciclo de vida de uma programação. As transições andam sempre para frente,
// um passo por vez; "Fechada" é terminal.
const (
	StatusAguardandoNF = "Aguardando NF"
	StatusCarregada    = "Carregada"
	StatusEmRota       = "Em Rota"
	StatusEmFechamento = "Em Fechamento"
	StatusFechada      = "Fechada"
)

var (
	// ErrTransicaoInvalida indica salto, retrocesso ou status desconhecido.
	ErrTransicaoInvalida = errors.New("transição de status inválida")
	// ErrStatusInvalido indica operação ilegal para o status atual da programação.
	ErrStatusInvalido = errors.New("operação não permitida no status atual")
	// ErrFechamentoPendente bloqueia "Em Fechamento" → "Fechada" sem fechamento gravado.
	ErrFechamentoPendente = errors.New("programação sem fechamento registrado")
)

var ordemStatus = map[string]int{
	StatusAguardandoNF: 0,
	StatusCarregada:    1,
	StatusEmRota:       2,
	StatusEmFechamento: 3,
	StatusFechada:      4,
}

// StatusConhecido informa se o valor faz parte do ciclo de vida.
func StatusConhecido(s string) bool {
	_, ok := ordemStatus[s]
	return ok
}

// ValidarTransicao aceita apenas o avanço de exatamente um passo.
func ValidarTransicao(atual, destino string) error {
	de, okDe := ordemStatus[atual]
	para, okPara := ordemStatus[destino]
	if !okDe || !okPara {
		return ErrTransicaoInvalida
	}
	if para != de+1 {
		return ErrTransicaoInvalida
	}
	return nil
}

// PermiteAlocacao informa se itens ainda podem ser anexados à programação.
func PermiteAlocacao(status string) bool {
	return status == StatusAguardandoNF
}

// PermiteLancamentos informa se filhos (PDC, despesas, cédulas) ainda aceitam
// escrita. "Fechada" congela tudo.
func PermiteLancamentos(status string) bool {
	return StatusConhecido(status) && status != StatusFechada
}

// statusOnde materializa um predicado como lista de status, para cláusulas IN.
func statusOnde(permite func(string) bool) []string {
	out := make([]string, 0, len(ordemStatus))
	for s := range ordemStatus {
		if permite(s) {
			out = append(out, s)
		}
	}
	return out
}
