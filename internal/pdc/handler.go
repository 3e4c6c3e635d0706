package pdc

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/FrigoAves/api-rotas/internal/programacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository dos lançamentos de PDC.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// RegistrarPagamento trata PUT /programacoes/{id}/pdc/{itemId}
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	progID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.Atoi(vars["itemId"])
	if err != nil {
		http.Error(w, "ID de item inválido", http.StatusBadRequest)
		return
	}

	var entrada Entrada
	if err := json.NewDecoder(r.Body).Decode(&entrada); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	lanc, err := RegistrarPagamento(h.DB, uint(progID), uint(itemID), entrada)
	switch {
	case err == nil:
	case errors.Is(err, ErrFormaPagamentoInvalida):
		http.Error(w, "Forma de pagamento desconhecida", http.StatusBadRequest)
		return
	case errors.Is(err, ErrValorInvalido):
		http.Error(w, "Valor pago não pode ser negativo", http.StatusBadRequest)
		return
	case errors.Is(err, ErrItemForaDaProgramacao):
		http.Error(w, "Item não pertence à programação", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Programação ou item não encontrado", http.StatusNotFound)
		return
	case errors.Is(err, programacao.ErrStatusInvalido):
		http.Error(w, "Programação fechada não aceita lançamentos", http.StatusConflict)
		return
	default:
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(lanc)
}

// ListarPorProgramacao trata GET /programacoes/{id}/pdc
func (h *Handler) ListarPorProgramacao(w http.ResponseWriter, r *http.Request) {
	progID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorProgramacao(h.DB, uint(progID))
	if err != nil {
		http.Error(w, "Erro ao listar lançamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// TotalRecebido trata GET /programacoes/{id}/pdc/total
func (h *Handler) TotalRecebido(w http.ResponseWriter, r *http.Request) {
	progID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de programação inválido", http.StatusBadRequest)
		return
	}
	total, err := h.Repository.TotalRecebido(h.DB, uint(progID))
	if err != nil {
		http.Error(w, "Erro ao somar recebimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]float64{"totalRecebido": total})
}
