package database

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func env(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// Conectar abre a conexão com o Postgres a partir das variáveis de ambiente.
// TranslateError é obrigatório: os serviços dependem de gorm.ErrDuplicatedKey
// para detectar violação de unicidade no fechamento e no PDC.
func Conectar() (*gorm.DB, error) {
	var sslMode string
	if env("DB_SSL_MODE_DISABLE", "true") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
		env("DB_HOST", "localhost"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_NAME", "rotas"),
		env("DB_PORT", "5432"),
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("conectar no banco: %w", err)
	}
	return db, nil
}
