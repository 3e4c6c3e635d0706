package fechamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/FrigoAves/api-rotas/internal/programacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository do fechamento.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func programacaoID(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}

// Fechar trata POST /programacoes/{id}/fechamento
func (h *Handler) Fechar(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	var entrada Entrada
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	fech, err := Fechar(h.DB, progID, entrada)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação não encontrada", http.StatusNotFound)
		return
	case errors.Is(err, ErrDadosIncompletos):
		http.Error(w, "Dados numéricos do fechamento ausentes ou negativos", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, ErrCedulasNaoConferem):
		http.Error(w, "Soma das cédulas não confere com o total em dinheiro", http.StatusBadRequest)
		return
	case errors.Is(err, ErrRotaJaFechada):
		http.Error(w, "Programação já possui fechamento", http.StatusConflict)
		return
	case errors.Is(err, programacao.ErrStatusInvalido):
		http.Error(w, "Programação não está em fechamento", http.StatusConflict)
		return
	default:
		http.Error(w, "Erro ao gravar fechamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(fech)
}

// BuscarPorProgramacao trata GET /programacoes/{id}/fechamento
func (h *Handler) BuscarPorProgramacao(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	fech, err := h.Repository.BuscarPorProgramacao(h.DB, progID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Fechamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar fechamento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fech)
}

type criarDespesaRequest struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// CriarDespesa trata POST /programacoes/{id}/despesas
func (h *Handler) CriarDespesa(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	var req criarDespesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	despesa, err := RegistrarDespesa(h.DB, progID, req.Descricao, req.Valor)
	switch {
	case err == nil:
	case errors.Is(err, ErrDespesaInvalida):
		http.Error(w, "Descrição é obrigatória e o valor não pode ser negativo", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação não encontrada", http.StatusNotFound)
		return
	case errors.Is(err, ErrRotaJaFechada), errors.Is(err, programacao.ErrStatusInvalido):
		http.Error(w, "Programação fechada não aceita despesas", http.StatusConflict)
		return
	default:
		http.Error(w, "Erro ao registrar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(despesa)
}

// ListarDespesas trata GET /programacoes/{id}/despesas
func (h *Handler) ListarDespesas(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarDespesas(h.DB, progID)
	if err != nil {
		http.Error(w, "Erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

type registrarCedulasRequest struct {
	Cedulas []CedulaEntrada `json:"cedulas"`
}

// RegistrarCedulas trata PUT /programacoes/{id}/cedulas
func (h *Handler) RegistrarCedulas(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	var req registrarCedulasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if len(req.Cedulas) == 0 {
		http.Error(w, "A lista 'cedulas' não pode estar vazia", http.StatusBadRequest)
		return
	}

	gravadas, err := RegistrarCedulas(h.DB, progID, req.Cedulas)
	switch {
	case err == nil:
	case errors.Is(err, ErrDadosIncompletos):
		http.Error(w, "Valor de face deve ser positivo e quantidade não negativa", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação não encontrada", http.StatusNotFound)
		return
	case errors.Is(err, ErrRotaJaFechada), errors.Is(err, programacao.ErrStatusInvalido):
		http.Error(w, "Programação fechada não aceita contagem de cédulas", http.StatusConflict)
		return
	default:
		http.Error(w, "Erro ao registrar cédulas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(gravadas)
}

// ListarCedulas trata GET /programacoes/{id}/cedulas
func (h *Handler) ListarCedulas(w http.ResponseWriter, r *http.Request) {
	progID, err := programacaoID(r)
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarCedulas(h.DB, progID)
	if err != nil {
		http.Error(w, "Erro ao listar cédulas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
