package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FrigoAves/api-rotas/internal/utils"
	"gorm.io/gorm"
)

// Handler encapsula o DB para login e gestão de usuários.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var user Usuario
	if err := h.DB.Where("login = ?", req.Login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
			return
		}
		http.Error(w, "erro ao buscar usuário", http.StatusInternalServerError)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

type criarUsuarioRequest struct {
	Nome    string `json:"nome"`
	Login   string `json:"login"`
	Senha   string `json:"senha"`
	IsAdmin bool   `json:"isAdmin"`
}

// CriarUsuario trata POST /usuarios (somente admin).
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Senha == "" {
		http.Error(w, "login e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao gerar hash de senha", http.StatusInternalServerError)
		return
	}

	user := Usuario{Nome: req.Nome, Login: req.Login, Senha: hash, IsAdmin: req.IsAdmin}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "login já cadastrado", http.StatusConflict)
			return
		}
		http.Error(w, "erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(user)
}
