package pedido

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Pedido) error
	ListarTodos(db *gorm.DB) ([]Pedido, error)
	BuscarPorID(db *gorm.DB, id uint) (*Pedido, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Pedido) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Pedido, error) {
	var pedidos []Pedido
	err := db.Order("id").Find(&pedidos).Error
	return pedidos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pedido, error) {
	var p Pedido
	err := db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
