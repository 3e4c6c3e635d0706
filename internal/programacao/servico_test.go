package programacao

import (
	"errors"
	"strings"
	"testing"
	"time"

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

	if err := Migrate(db); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func novaProgramacao(t *testing.T, db *gorm.DB) *Programacao {
	t.Helper()
	p := &Programacao{
		Data:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		MotoristaID: 1,
		VeiculoID:   1,
	}
	if err := Criar(db, NewRepository(), p); err != nil {
		t.Fatalf("criar programação: %v", err)
	}
	return p
}

func TestCriarGeraCodigoEStatusInicial(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)

	if len(p.Codigo) != 6 {
		t.Errorf("código com %d caracteres, want 6", len(p.Codigo))
	}
	if p.Codigo != strings.ToUpper(p.Codigo) {
		t.Errorf("código %q deveria estar em maiúsculas", p.Codigo)
	}
	if p.Status != StatusAguardandoNF {
		t.Errorf("status inicial = %q, want %q", p.Status, StatusAguardandoNF)
	}
}

func TestBuscarPorCodigoIgnoraCaixa(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)

	achada, err := NewRepository().BuscarPorCodigo(db, strings.ToLower(p.Codigo))
	if err != nil {
		t.Fatalf("buscar por código: %v", err)
	}
	if achada.ID != p.ID {
		t.Errorf("buscou programação %d, want %d", achada.ID, p.ID)
	}
}

func TestTransicionarAvancaUmPasso(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)
	repo := NewRepository()

	atualizada, err := Transicionar(db, repo, p.ID, StatusCarregada, nil)
	if err != nil {
		t.Fatalf("transicionar: %v", err)
	}
	if atualizada.Status != StatusCarregada {
		t.Errorf("status = %q, want %q", atualizada.Status, StatusCarregada)
	}

	persistida, err := repo.BuscarPorID(db, p.ID)
	if err != nil {
		t.Fatalf("recarregar: %v", err)
	}
	if persistida.Status != StatusCarregada {
		t.Errorf("status persistido = %q, want %q", persistida.Status, StatusCarregada)
	}
}

func TestTransicionarRejeitaSaltoERetrocesso(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)
	repo := NewRepository()

	if _, err := Transicionar(db, repo, p.ID, StatusEmRota, nil); !errors.Is(err, ErrTransicaoInvalida) {
		t.Errorf("salto de status: err = %v, want ErrTransicaoInvalida", err)
	}

	if _, err := Transicionar(db, repo, p.ID, StatusCarregada, nil); err != nil {
		t.Fatalf("avançar: %v", err)
	}
	if _, err := Transicionar(db, repo, p.ID, StatusAguardandoNF, nil); !errors.Is(err, ErrTransicaoInvalida) {
		t.Errorf("retrocesso: err = %v, want ErrTransicaoInvalida", err)
	}
}

func TestTransicionarParaFechadaExigeFechamento(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)
	repo := NewRepository()

	for _, destino := range []string{StatusCarregada, StatusEmRota, StatusEmFechamento} {
		if _, err := Transicionar(db, repo, p.ID, destino, nil); err != nil {
			t.Fatalf("avançar para %q: %v", destino, err)
		}
	}

	semFechamento := func(db *gorm.DB, id uint) (bool, error) { return false, nil }
	if _, err := Transicionar(db, repo, p.ID, StatusFechada, semFechamento); !errors.Is(err, ErrFechamentoPendente) {
		t.Errorf("sem fechamento: err = %v, want ErrFechamentoPendente", err)
	}

	comFechamento := func(db *gorm.DB, id uint) (bool, error) { return true, nil }
	atualizada, err := Transicionar(db, repo, p.ID, StatusFechada, comFechamento)
	if err != nil {
		t.Fatalf("fechar: %v", err)
	}
	if atualizada.Status != StatusFechada {
		t.Errorf("status = %q, want %q", atualizada.Status, StatusFechada)
	}
}

func TestTravarLinhaRevalidaStatus(t *testing.T) {
	db := abrirBanco(t)
	p := novaProgramacao(t, db)
	repo := NewRepository()

	if ok, err := repo.TravarParaAlocacao(db, p.ID); err != nil || !ok {
		t.Fatalf("travar para alocação no status inicial: ok=%v err=%v", ok, err)
	}
	if _, err := Transicionar(db, repo, p.ID, StatusCarregada, nil); err != nil {
		t.Fatalf("avançar: %v", err)
	}
	if ok, err := repo.TravarParaAlocacao(db, p.ID); err != nil || ok {
		t.Errorf("alocação fora do status inicial: ok=%v err=%v, want falso", ok, err)
	}
	if ok, err := repo.TravarParaLancamentos(db, p.ID); err != nil || !ok {
		t.Errorf("lançamentos em %q: ok=%v err=%v, want verdadeiro", StatusCarregada, ok, err)
	}

	if err := db.Model(p).Update("status", StatusFechada).Error; err != nil {
		t.Fatalf("fechar programação: %v", err)
	}
	if ok, err := repo.TravarParaLancamentos(db, p.ID); err != nil || ok {
		t.Errorf("lançamentos em rota fechada: ok=%v err=%v, want falso", ok, err)
	}
	if ok, err := repo.TravarParaLancamentos(db, 999); err != nil || ok {
		t.Errorf("programação inexistente: ok=%v err=%v, want falso", ok, err)
	}
}

func TestTransicionarProgramacaoInexistente(t *testing.T) {
	db := abrirBanco(t)
	if _, err := Transicionar(db, NewRepository(), 999, StatusCarregada, nil); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
