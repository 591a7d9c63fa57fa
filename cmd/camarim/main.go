package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/interfaces/cli"
	"github.com/showtech/camarim/pkg/config"
	"github.com/showtech/camarim/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	// Cada execução ganha um id de sessão para correlacionar os logs
	log = logger.Sub(log.With().Str("sessao", uuid.NewString()).Logger())

	log.Info().Str("app", cfg.App.Name).Str("ambiente", cfg.App.Env).Msg("iniciando")

	shell := cli.New(os.Stdin, os.Stdout, cli.Deps{
		Catalog:    usecase.NewCatalogUseCase(log),
		Stock:      usecase.NewStockUseCase(log),
		Performers: usecase.NewPerformerUseCase(log),
		Rooms:      usecase.NewDressingRoomUseCase(log),
		Orders:     usecase.NewOrderUseCase(log),
		Shopping:   usecase.NewShoppingUseCase(log),
		Log:        log,
	})
	shell.Run()

	log.Info().Msg("encerrando")
}
