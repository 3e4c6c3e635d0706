package cadastro

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository dos cadastros.
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return uint(id), nil
}

func responderJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// CriarMotorista trata POST /motoristas
func (h *Handler) CriarMotorista(w http.ResponseWriter, r *http.Request) {
	var m Motorista
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if m.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	m.Ativo = true
	if err := h.Repository.CriarMotorista(&m); err != nil {
		http.Error(w, "Erro ao salvar motorista", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusCreated, m)
}

// ListarMotoristas trata GET /motoristas
func (h *Handler) ListarMotoristas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarMotoristas()
	if err != nil {
		http.Error(w, "Erro ao listar motoristas", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, list)
}

// AtualizarMotorista trata PUT /motoristas/{id}
func (h *Handler) AtualizarMotorista(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarMotorista(id)
	if err != nil {
		http.Error(w, "Motorista não encontrado", http.StatusNotFound)
		return
	}

	var req Motorista
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	existente.Nome = req.Nome
	existente.CNH = req.CNH
	existente.Telefone = req.Telefone
	existente.Ativo = req.Ativo

	if err := h.Repository.AtualizarMotorista(existente); err != nil {
		http.Error(w, "Erro ao atualizar motorista", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, existente)
}

// CriarVeiculo trata POST /veiculos
func (h *Handler) CriarVeiculo(w http.ResponseWriter, r *http.Request) {
	var v Veiculo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if v.Placa == "" {
		http.Error(w, "O campo 'placa' é obrigatório", http.StatusBadRequest)
		return
	}
	v.Ativo = true
	if err := h.Repository.CriarVeiculo(&v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "Placa já cadastrada", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar veículo", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusCreated, v)
}

// ListarVeiculos trata GET /veiculos
func (h *Handler) ListarVeiculos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarVeiculos()
	if err != nil {
		http.Error(w, "Erro ao listar veículos", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, list)
}

// AtualizarVeiculo trata PUT /veiculos/{id}
func (h *Handler) AtualizarVeiculo(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarVeiculo(id)
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}

	var req Veiculo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	existente.Placa = req.Placa
	existente.Modelo = req.Modelo
	existente.CapacidadeCaixas = req.CapacidadeCaixas
	existente.Ativo = req.Ativo

	if err := h.Repository.AtualizarVeiculo(existente); err != nil {
		http.Error(w, "Erro ao atualizar veículo", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, existente)
}

// CriarEquipe trata POST /equipes
func (h *Handler) CriarEquipe(w http.ResponseWriter, r *http.Request) {
	var e Equipe
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if e.Nome == "" {
		http.Error(w, "O campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.Repository.CriarEquipe(&e); err != nil {
		http.Error(w, "Erro ao salvar equipe", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusCreated, e)
}

// ListarEquipes trata GET /equipes
func (h *Handler) ListarEquipes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarEquipes()
	if err != nil {
		http.Error(w, "Erro ao listar equipes", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, list)
}
