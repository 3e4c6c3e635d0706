package auth

import "gorm.io/gorm"

// Usuario é a conta que acessa o painel de rotas.
type Usuario struct {
	gorm.Model
	Nome    string `json:"nome"`
	Login   string `json:"login" gorm:"size:100;uniqueIndex"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}

// Migrate cria a tabela de usuários.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
