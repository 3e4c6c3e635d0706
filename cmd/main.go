package main

import (
	"log"
	"net/http"
	"os"

	"github.com/FrigoAves/api-rotas/internal/auth"
	"github.com/FrigoAves/api-rotas/internal/cadastro"
	"github.com/FrigoAves/api-rotas/internal/database"
	"github.com/FrigoAves/api-rotas/internal/fechamento"
	"github.com/FrigoAves/api-rotas/internal/itemprogramacao"
	"github.com/FrigoAves/api-rotas/internal/pdc"
	"github.com/FrigoAves/api-rotas/internal/pedido"
	"github.com/FrigoAves/api-rotas/internal/programacao"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis de ambiente")
	}

	db, err := database.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	migracoes := []func(*gorm.DB) error{
		auth.Migrate,
		cadastro.Migrate,
		pedido.Migrate,
		programacao.Migrate,
		itemprogramacao.Migrate,
		pdc.Migrate,
		fechamento.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(db); err != nil {
			log.Fatal("Erro ao migrar o esquema:", err)
		}
	}

	// Handlers
	authHandler := auth.NewHandler(db)
	cadastroHandler := cadastro.NewHandler(db)
	pedidoHandler := pedido.NewHandler(db)
	programacaoHandler := programacao.NewHandler(db, fechamento.Existe)
	itemHandler := itemprogramacao.NewHandler(db)
	pdcHandler := pdc.NewHandler(db)
	fechamentoHandler := fechamento.NewHandler(db)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(authHandler.CriarUsuario))).Methods("POST")

	// Cadastros de apoio
	api.HandleFunc("/motoristas", cadastroHandler.CriarMotorista).Methods("POST")
	api.HandleFunc("/motoristas", cadastroHandler.ListarMotoristas).Methods("GET")
	api.HandleFunc("/motoristas/{id}", cadastroHandler.AtualizarMotorista).Methods("PUT")
	api.HandleFunc("/veiculos", cadastroHandler.CriarVeiculo).Methods("POST")
	api.HandleFunc("/veiculos", cadastroHandler.ListarVeiculos).Methods("GET")
	api.HandleFunc("/veiculos/{id}", cadastroHandler.AtualizarVeiculo).Methods("PUT")
	api.HandleFunc("/equipes", cadastroHandler.CriarEquipe).Methods("POST")
	api.HandleFunc("/equipes", cadastroHandler.ListarEquipes).Methods("GET")

	// Pedidos importados
	api.HandleFunc("/pedidos", pedidoHandler.Criar).Methods("POST")
	api.HandleFunc("/pedidos", pedidoHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/pedidos/{id}", pedidoHandler.BuscarPorID).Methods("GET")

	// Programações
	api.HandleFunc("/programacoes", programacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/programacoes", programacaoHandler.ListarTodas).Methods("GET")
	api.HandleFunc("/programacoes/{id}", programacaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/programacoes/{id}/status", programacaoHandler.AtualizarStatus).Methods("PATCH")

	// Itens alocados
	api.HandleFunc("/programacoes/{id}/itens", itemHandler.Criar).Methods("POST")
	api.HandleFunc("/programacoes/{id}/itens", itemHandler.ListarPorProgramacao).Methods("GET")

	// PDC
	api.HandleFunc("/programacoes/{id}/pdc/total", pdcHandler.TotalRecebido).Methods("GET")
	api.HandleFunc("/programacoes/{id}/pdc/{itemId}", pdcHandler.RegistrarPagamento).Methods("PUT")
	api.HandleFunc("/programacoes/{id}/pdc", pdcHandler.ListarPorProgramacao).Methods("GET")

	// Fechamento
	api.HandleFunc("/programacoes/{id}/despesas", fechamentoHandler.CriarDespesa).Methods("POST")
	api.HandleFunc("/programacoes/{id}/despesas", fechamentoHandler.ListarDespesas).Methods("GET")
	api.HandleFunc("/programacoes/{id}/cedulas", fechamentoHandler.RegistrarCedulas).Methods("PUT")
	api.HandleFunc("/programacoes/{id}/cedulas", fechamentoHandler.ListarCedulas).Methods("GET")
	api.HandleFunc("/programacoes/{id}/fechamento", fechamentoHandler.Fechar).Methods("POST")
	api.HandleFunc("/programacoes/{id}/fechamento", fechamentoHandler.BuscarPorProgramacao).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	log.Printf("Servidor rodando em http://localhost:%s", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
