package itemprogramacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/FrigoAves/api-rotas/internal/programacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository dos itens de programação.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Criar trata POST /programacoes/{id}/itens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	progID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	var entrada Entrada
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if entrada.PedidoID == 0 {
		http.Error(w, "O campo 'pedidoId' é obrigatório", http.StatusBadRequest)
		return
	}

	item, err := Alocar(h.DB, uint(progID), entrada)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação ou pedido não encontrado", http.StatusNotFound)
		return
	case errors.Is(err, programacao.ErrStatusInvalido):
		http.Error(w, "Programação não aceita mais alocação de itens", http.StatusConflict)
		return
	case errors.Is(err, ErrValidacao):
		http.Error(w, "Valores de alocação não podem ser negativos", http.StatusBadRequest)
		return
	default:
		http.Error(w, "Erro ao alocar item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// ListarPorProgramacao trata GET /programacoes/{id}/itens
func (h *Handler) ListarPorProgramacao(w http.ResponseWriter, r *http.Request) {
	progID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}

	itens, err := h.Repository.ListarPorProgramacao(h.DB, uint(progID))
	if err != nil {
		http.Error(w, "Erro ao listar itens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(itens)
}
