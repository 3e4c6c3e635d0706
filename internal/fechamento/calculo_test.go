package fechamento

import (
	"errors"
	"math"
	"testing"
)

func TestCalcularMedia(t *testing.T) {
	tests := []struct {
		name                       string
		kmSaida, kmChegada, litros float64
		want                       float64
	}{
		{"viagem normal", 1000, 1300, 50, 6.0},
		{"sem abastecimento", 1000, 1300, 0, 0},
		{"sem deslocamento", 500, 500, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularMedia(tt.kmSaida, tt.kmChegada, tt.litros)
			if got != tt.want {
				t.Errorf("CalcularMedia(%v, %v, %v) = %v, want %v", tt.kmSaida, tt.kmChegada, tt.litros, got, tt.want)
			}
		})
	}
}

func TestCalcularValorCaixa(t *testing.T) {
	tests := []struct {
		name        string
		kgNF        float64
		cxCarregada int
		want        float64
	}{
		{"carga cheia", 1200, 200, 6.0},
		{"sem caixas", 1200, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularValorCaixa(tt.kgNF, tt.cxCarregada)
			if got != tt.want {
				t.Errorf("CalcularValorCaixa(%v, %d) = %v, want %v", tt.kgNF, tt.cxCarregada, got, tt.want)
			}
		})
	}
}

func TestCalcularSaldo(t *testing.T) {
	// saldo = recebido − despesas − adiantamento + devolver + cheque
	got := CalcularSaldo(5000, 320.50, 200, 80, 1500)
	want := 5000 - 320.50 - 200 + 80 + 1500
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CalcularSaldo = %v, want %v", got, want)
	}
}

func TestConferirCedulas(t *testing.T) {
	cedulas := []CedulaEntrada{
		{ValorFace: 100, Quantidade: 10},
		{ValorFace: 50, Quantidade: 4},
		{ValorFace: 0.25, Quantidade: 8},
	}
	// 1000 + 200 + 2 = 1202

	if err := ConferirCedulas(cedulas, 1202, EpsilonPadrao); err != nil {
		t.Errorf("total exato: err = %v, want nil", err)
	}
	if err := ConferirCedulas(cedulas, 1202.005, EpsilonPadrao); err != nil {
		t.Errorf("dentro da tolerância: err = %v, want nil", err)
	}
	if err := ConferirCedulas(cedulas, 1203, EpsilonPadrao); !errors.Is(err, ErrCedulasNaoConferem) {
		t.Errorf("fora da tolerância: err = %v, want ErrCedulasNaoConferem", err)
	}
	if err := ConferirCedulas(nil, 0, EpsilonPadrao); err != nil {
		t.Errorf("sem cédulas e sem dinheiro: err = %v, want nil", err)
	}
}
