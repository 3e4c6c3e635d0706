package programacao

import (
	"errors"
	"fmt"

	"github.com/FrigoAves/api-rotas/internal/utils"
	"gorm.io/gorm"
)

// VerificadorFechamento informa se a programação já tem fechamento gravado.
// Injetado pelo pacote fechamento na montagem do servidor.
type VerificadorFechamento func(db *gorm.DB, programacaoID uint) (bool, error)

const tamanhoCodigo = 6

// Criar gera o código único e grava a programação no status inicial.
func Criar(db *gorm.DB, repo Repository, p *Programacao) error {
	p.Status = StatusAguardandoNF
	p.TotalCaixas = 0
	p.KgEstimado = 0

	// Código curto aleatório; em colisão (índice único) tenta de novo.
	for tentativa := 0; tentativa < 5; tentativa++ {
		codigo, err := utils.GerarCodigo(tamanhoCodigo)
		if err != nil {
			return fmt.Errorf("gerar código: %w", err)
		}
		p.Codigo = codigo
		err = repo.Salvar(db, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return errors.New("não foi possível gerar um código único")
}

// Transicionar avança o status da programação em exatamente um passo.
// "Em Fechamento" → "Fechada" exige fechamento já gravado.
func Transicionar(db *gorm.DB, repo Repository, id uint, destino string, fechamentoExiste VerificadorFechamento) (*Programacao, error) {
	p, err := repo.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}

	if err := ValidarTransicao(p.Status, destino); err != nil {
		return nil, err
	}

	if destino == StatusFechada {
		if fechamentoExiste == nil {
			return nil, ErrFechamentoPendente
		}
		existe, err := fechamentoExiste(db, id)
		if err != nil {
			return nil, err
		}
		if !existe {
			return nil, ErrFechamentoPendente
		}
	}

	ok, err := repo.AtualizarStatusSe(db, id, p.Status, destino)
	if err != nil {
		return nil, err
	}
	if !ok {
		// outro escritor mudou o status entre a leitura e o update
		return nil, ErrTransicaoInvalida
	}

	p.Status = destino
	return p, nil
}
