package programacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e a checagem de fechamento injetada.
type Handler struct {
	DB               *gorm.DB
	Repository       Repository
	FechamentoExiste VerificadorFechamento
}

func NewHandler(db *gorm.DB, fechamentoExiste VerificadorFechamento) *Handler {
	return &Handler{
		DB:               db,
		Repository:       NewRepository(),
		FechamentoExiste: fechamentoExiste,
	}
}

type criarRequest struct {
	Data        string `json:"data"` // "2006-01-02"
	MotoristaID uint   `json:"motoristaId"`
	VeiculoID   uint   `json:"veiculoId"`
	EquipeID    uint   `json:"equipeId"`
}

// Criar trata POST /programacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.MotoristaID == 0 || req.VeiculoID == 0 {
		http.Error(w, "motoristaId e veiculoId são obrigatórios", http.StatusBadRequest)
		return
	}
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		http.Error(w, "O campo 'data' deve estar no formato AAAA-MM-DD", http.StatusBadRequest)
		return
	}

	p := Programacao{
		Data:        data,
		MotoristaID: req.MotoristaID,
		VeiculoID:   req.VeiculoID,
		EquipeID:    req.EquipeID,
	}
	if err := Criar(h.DB, h.Repository, &p); err != nil {
		http.Error(w, "Erro ao criar programação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// ListarTodas trata GET /programacoes
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	// ?codigo= busca pelo código curto (sem diferenciar maiúsculas)
	if codigo := r.URL.Query().Get("codigo"); codigo != "" {
		p, err := h.Repository.BuscarPorCodigo(h.DB, codigo)
		if err != nil {
			http.Error(w, "Programação não encontrada", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Programacao{*p})
		return
	}

	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar programações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /programacoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Programação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// AtualizarStatus trata PATCH /programacoes/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		http.Error(w, "O campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	p, err := Transicionar(h.DB, h.Repository, uint(id), req.Status, h.FechamentoExiste)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação não encontrada", http.StatusNotFound)
		return
	case errors.Is(err, ErrTransicaoInvalida):
		http.Error(w, "Transição de status inválida", http.StatusConflict)
		return
	case errors.Is(err, ErrFechamentoPendente):
		http.Error(w, "Programação ainda não tem fechamento registrado", http.StatusConflict)
		return
	default:
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
