package pedido

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository de pedidos.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Criar trata POST /pedidos — entrada manual no lugar da planilha importada.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var p Pedido
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if p.Cliente == "" {
		http.Error(w, "O campo 'cliente' é obrigatório", http.StatusBadRequest)
		return
	}
	if p.Caixas < 0 || p.KgCliente < 0 || p.ValorUnitario < 0 {
		http.Error(w, "caixas, kgCliente e valorUnitario não podem ser negativos", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "Número de pedido já cadastrado", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar pedido", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// ListarTodos trata GET /pedidos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	pedidos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar pedidos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pedidos)
}

// BuscarPorID trata GET /pedidos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Pedido não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
