package programacao

import (
	"errors"
	"testing"
)

func TestValidarTransicao(t *testing.T) {
	tests := []struct {
		name    string
		atual   string
		destino string
		wantErr error
	}{
		{"aguardando para carregada", StatusAguardandoNF, StatusCarregada, nil},
		{"carregada para em rota", StatusCarregada, StatusEmRota, nil},
		{"em rota para em fechamento", StatusEmRota, StatusEmFechamento, nil},
		{"em fechamento para fechada", StatusEmFechamento, StatusFechada, nil},
		{"pular em fechamento", StatusEmRota, StatusFechada, ErrTransicaoInvalida},
		{"pular carregada", StatusAguardandoNF, StatusEmRota, ErrTransicaoInvalida},
		{"retroceder", StatusEmRota, StatusCarregada, ErrTransicaoInvalida},
		{"mesmo status", StatusCarregada, StatusCarregada, ErrTransicaoInvalida},
		{"fechada e terminal", StatusFechada, StatusAguardandoNF, ErrTransicaoInvalida},
		{"status desconhecido", "Cancelada", StatusCarregada, ErrTransicaoInvalida},
		{"destino desconhecido", StatusCarregada, "Cancelada", ErrTransicaoInvalida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarTransicao(tt.atual, tt.destino)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidarTransicao(%q, %q) = %v, want %v", tt.atual, tt.destino, err, tt.wantErr)
			}
		})
	}
}

func TestPermiteAlocacao(t *testing.T) {
	if !PermiteAlocacao(StatusAguardandoNF) {
		t.Error("alocação deveria ser permitida em Aguardando NF")
	}
	for _, s := range []string{StatusCarregada, StatusEmRota, StatusEmFechamento, StatusFechada} {
		if PermiteAlocacao(s) {
			t.Errorf("alocação não deveria ser permitida em %q", s)
		}
	}
}

func TestPermiteLancamentos(t *testing.T) {
	for _, s := range []string{StatusAguardandoNF, StatusCarregada, StatusEmRota, StatusEmFechamento} {
		if !PermiteLancamentos(s) {
			t.Errorf("lançamentos deveriam ser permitidos em %q", s)
		}
	}
	if PermiteLancamentos(StatusFechada) {
		t.Error("programação fechada não deveria aceitar lançamentos")
	}
	if PermiteLancamentos("Cancelada") {
		t.Error("status desconhecido não deveria aceitar lançamentos")
	}
}
