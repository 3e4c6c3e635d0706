package cadastro

import "gorm.io/gorm"

// Motorista conduz as programações de entrega.
type Motorista struct {
	gorm.Model
	Nome     string `json:"nome" gorm:"size:255;not null"`
	CNH      string `json:"cnh" gorm:"size:20"`
	Telefone string `json:"telefone" gorm:"size:20"`
	Ativo    bool   `json:"ativo" gorm:"not null;default:true"`
}

// Veiculo é o caminhão usado em uma programação.
type Veiculo struct {
	gorm.Model
	Placa            string `json:"placa" gorm:"size:10;uniqueIndex"`
	Modelo           string `json:"modelo" gorm:"size:100"`
	CapacidadeCaixas int    `json:"capacidadeCaixas" gorm:"not null;default:0"`
	Ativo            bool   `json:"ativo" gorm:"not null;default:true"`
}

// Equipe é o grupo de carregadores escalado para a programação.
type Equipe struct {
	gorm.Model
	Nome        string `json:"nome" gorm:"size:255;not null"`
	Integrantes string `json:"integrantes" gorm:"size:500"`
}

// Migrate cria as tabelas de cadastro.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Motorista{}, &Veiculo{}, &Equipe{})
}
