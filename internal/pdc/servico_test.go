package pdc

import (
	"errors"
	"testing"
	"time"

	"github.com/FrigoAves/api-rotas/internal/itemprogramacao"
	"github.com/FrigoAves/api-rotas/internal/programacao"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obter sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, migrar := range []func(*gorm.DB) error{programacao.Migrate, itemprogramacao.Migrate, Migrate} {
		if err := migrar(db); err != nil {
			t.Fatalf("migrar: %v", err)
		}
	}
	return db
}

func montarRotaComItem(t *testing.T, db *gorm.DB, status string) (*programacao.Programacao, *itemprogramacao.Item) {
	t.Helper()
	p := &programacao.Programacao{
		Codigo:      "TESTE1",
		Data:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		MotoristaID: 1,
		VeiculoID:   1,
		Status:      status,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("criar programação: %v", err)
	}
	item := &itemprogramacao.Item{ProgramacaoID: p.ID, PedidoID: 1, Caixas: 10, KgCliente: 60, ValorUnitario: 5}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("criar item: %v", err)
	}
	return p, item
}

func TestRegistrarPagamentoUpsertNaoDuplica(t *testing.T) {
	db := abrirBanco(t)
	p, item := montarRotaComItem(t, db, programacao.StatusEmRota)

	primeiro, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{
		Pago: true, ValorPago: 300, FormaPagamento: FormaDinheiro, NotaFiscal: "NF-1",
	})
	if err != nil {
		t.Fatalf("primeiro registro: %v", err)
	}
	if !primeiro.Pago || primeiro.ValorPago != 300 {
		t.Errorf("primeiro registro = %+v", primeiro)
	}

	// regrava o mesmo par: última escrita vence, sem linha nova
	if _, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{
		Pago: true, ValorPago: 450, FormaPagamento: FormaPix, Observacao: "acertado na volta",
	}); err != nil {
		t.Fatalf("segundo registro: %v", err)
	}

	var total int64
	if err := db.Model(&Lancamento{}).Where("programacao_id = ?", p.ID).Count(&total).Error; err != nil {
		t.Fatalf("contar lançamentos: %v", err)
	}
	if total != 1 {
		t.Fatalf("lançamentos = %d, want 1", total)
	}

	list, err := NewRepository().ListarPorProgramacao(db, p.ID)
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if list[0].ValorPago != 450 || list[0].FormaPagamento != FormaPix {
		t.Errorf("lançamento final = %+v, want valor 450 via Pix", list[0])
	}
}

func TestTotalRecebidoSomaApenasPagos(t *testing.T) {
	db := abrirBanco(t)
	p, item := montarRotaComItem(t, db, programacao.StatusEmRota)
	outro := &itemprogramacao.Item{ProgramacaoID: p.ID, PedidoID: 2, Caixas: 5, KgCliente: 30, ValorUnitario: 5}
	if err := db.Create(outro).Error; err != nil {
		t.Fatalf("criar item: %v", err)
	}

	if _, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{Pago: true, ValorPago: 300, FormaPagamento: FormaDinheiro}); err != nil {
		t.Fatalf("registrar: %v", err)
	}
	if _, err := RegistrarPagamento(db, p.ID, outro.ID, Entrada{Pago: false, ValorPago: 150, FormaPagamento: FormaPrazo}); err != nil {
		t.Fatalf("registrar: %v", err)
	}

	total, err := NewRepository().TotalRecebido(db, p.ID)
	if err != nil {
		t.Fatalf("total recebido: %v", err)
	}
	if total != 300 {
		t.Errorf("total recebido = %v, want 300", total)
	}
}

func TestRegistrarPagamentoValidaEntrada(t *testing.T) {
	db := abrirBanco(t)
	p, item := montarRotaComItem(t, db, programacao.StatusEmRota)

	if _, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{FormaPagamento: "Vale"}); !errors.Is(err, ErrFormaPagamentoInvalida) {
		t.Errorf("forma desconhecida: err = %v, want ErrFormaPagamentoInvalida", err)
	}
	if _, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{FormaPagamento: FormaDinheiro, ValorPago: -1}); !errors.Is(err, ErrValorInvalido) {
		t.Errorf("valor negativo: err = %v, want ErrValorInvalido", err)
	}
}

func TestRegistrarPagamentoItemDeOutraRota(t *testing.T) {
	db := abrirBanco(t)
	p, _ := montarRotaComItem(t, db, programacao.StatusEmRota)

	outraRota := &programacao.Programacao{Codigo: "TESTE2", Data: time.Now(), MotoristaID: 1, VeiculoID: 1, Status: programacao.StatusEmRota}
	if err := db.Create(outraRota).Error; err != nil {
		t.Fatalf("criar programação: %v", err)
	}
	alheio := &itemprogramacao.Item{ProgramacaoID: outraRota.ID, PedidoID: 3, Caixas: 2}
	if err := db.Create(alheio).Error; err != nil {
		t.Fatalf("criar item: %v", err)
	}

	if _, err := RegistrarPagamento(db, p.ID, alheio.ID, Entrada{FormaPagamento: FormaDinheiro}); !errors.Is(err, ErrItemForaDaProgramacao) {
		t.Errorf("err = %v, want ErrItemForaDaProgramacao", err)
	}
}

func TestRegistrarPagamentoRotaFechada(t *testing.T) {
	db := abrirBanco(t)
	p, item := montarRotaComItem(t, db, programacao.StatusFechada)

	if _, err := RegistrarPagamento(db, p.ID, item.ID, Entrada{FormaPagamento: FormaDinheiro}); !errors.Is(err, programacao.ErrStatusInvalido) {
		t.Errorf("err = %v, want ErrStatusInvalido", err)
	}
}
