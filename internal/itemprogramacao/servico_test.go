package itemprogramacao

import (
	"errors"
	"testing"
	"time"

	"github.com/FrigoAves/api-rotas/internal/pedido"
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

	for _, migrar := range []func(*gorm.DB) error{programacao.Migrate, pedido.Migrate, Migrate} {
		if err := migrar(db); err != nil {
			t.Fatalf("migrar: %v", err)
		}
	}
	return db
}

func montarCenario(t *testing.T, db *gorm.DB, status string) (*programacao.Programacao, *pedido.Pedido) {
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
	ped := &pedido.Pedido{Numero: "P-100", Cliente: "Mercado Central", Caixas: 40, KgCliente: 250, ValorUnitario: 7.5}
	if err := db.Create(ped).Error; err != nil {
		t.Fatalf("criar pedido: %v", err)
	}
	return p, ped
}

func TestAlocarAtualizaTotaisDaRota(t *testing.T) {
	db := abrirBanco(t)
	p, ped := montarCenario(t, db, programacao.StatusAguardandoNF)

	item, err := Alocar(db, p.ID, Entrada{PedidoID: ped.ID, Caixas: 30, ValorUnitario: 8, KgCliente: 200})
	if err != nil {
		t.Fatalf("alocar: %v", err)
	}
	if item.Caixas != 30 || item.KgCliente != 200 {
		t.Errorf("item = %+v, want 30 caixas e 200 kg", item)
	}

	segundo := &pedido.Pedido{Numero: "P-101", Cliente: "Feira Norte", Caixas: 10, KgCliente: 55, ValorUnitario: 7}
	if err := db.Create(segundo).Error; err != nil {
		t.Fatalf("criar pedido: %v", err)
	}
	if _, err := Alocar(db, p.ID, Entrada{PedidoID: segundo.ID, Caixas: 10, KgCliente: 55}); err != nil {
		t.Fatalf("alocar segundo: %v", err)
	}

	var prog programacao.Programacao
	if err := db.First(&prog, p.ID).Error; err != nil {
		t.Fatalf("recarregar programação: %v", err)
	}
	if prog.TotalCaixas != 40 {
		t.Errorf("total de caixas = %d, want 40", prog.TotalCaixas)
	}
	if prog.KgEstimado != 255 {
		t.Errorf("kg estimado = %v, want 255", prog.KgEstimado)
	}
}

func TestAlocarHerdaSnapshotDoPedido(t *testing.T) {
	db := abrirBanco(t)
	p, ped := montarCenario(t, db, programacao.StatusAguardandoNF)

	item, err := Alocar(db, p.ID, Entrada{PedidoID: ped.ID})
	if err != nil {
		t.Fatalf("alocar: %v", err)
	}
	if item.Caixas != ped.Caixas || item.KgCliente != ped.KgCliente || item.ValorUnitario != ped.ValorUnitario {
		t.Errorf("snapshot = %+v, want valores do pedido %+v", item, ped)
	}

	// mudar o pedido depois não altera o item alocado
	if err := db.Model(ped).Update("kg_cliente", 999).Error; err != nil {
		t.Fatalf("alterar pedido: %v", err)
	}
	itens, err := NewRepository().ListarPorProgramacao(db, p.ID)
	if err != nil {
		t.Fatalf("listar itens: %v", err)
	}
	if itens[0].KgCliente != 250 {
		t.Errorf("kg do item = %v, want snapshot 250", itens[0].KgCliente)
	}
}

func TestAlocarForaDoStatusInicial(t *testing.T) {
	db := abrirBanco(t)
	p, ped := montarCenario(t, db, programacao.StatusCarregada)

	if _, err := Alocar(db, p.ID, Entrada{PedidoID: ped.ID}); !errors.Is(err, programacao.ErrStatusInvalido) {
		t.Errorf("err = %v, want ErrStatusInvalido", err)
	}
}

func TestAlocarReferenciasInexistentes(t *testing.T) {
	db := abrirBanco(t)
	p, _ := montarCenario(t, db, programacao.StatusAguardandoNF)

	if _, err := Alocar(db, 999, Entrada{PedidoID: 1}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("programação inexistente: err = %v, want ErrRecordNotFound", err)
	}
	if _, err := Alocar(db, p.ID, Entrada{PedidoID: 999}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("pedido inexistente: err = %v, want ErrRecordNotFound", err)
	}
}

func TestAlocarValoresNegativos(t *testing.T) {
	db := abrirBanco(t)
	p, ped := montarCenario(t, db, programacao.StatusAguardandoNF)

	if _, err := Alocar(db, p.ID, Entrada{PedidoID: ped.ID, Caixas: -1}); !errors.Is(err, ErrValidacao) {
		t.Errorf("err = %v, want ErrValidacao", err)
	}
}
