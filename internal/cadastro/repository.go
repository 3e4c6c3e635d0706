package cadastro

import "gorm.io/gorm"

// Repository encapsula operações de banco para os cadastros de apoio.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CriarMotorista(m *Motorista) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarMotoristas() ([]Motorista, error) {
	var list []Motorista
	err := r.DB.Order("nome").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarMotorista(id uint) (*Motorista, error) {
	var m Motorista
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) AtualizarMotorista(m *Motorista) error {
	return r.DB.Save(m).Error
}

func (r *Repository) CriarVeiculo(v *Veiculo) error {
	return r.DB.Create(v).Error
}

func (r *Repository) ListarVeiculos() ([]Veiculo, error) {
	var list []Veiculo
	err := r.DB.Order("placa").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarVeiculo(id uint) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) AtualizarVeiculo(v *Veiculo) error {
	return r.DB.Save(v).Error
}

func (r *Repository) CriarEquipe(e *Equipe) error {
	return r.DB.Create(e).Error
}

func (r *Repository) ListarEquipes() ([]Equipe, error) {
	var list []Equipe
	err := r.DB.Order("nome").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarEquipe(id uint) (*Equipe, error) {
	var e Equipe
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
