// Package cli implementa o shell interativo que dirige os gerenciadores.
// Toda chamada mutadora passa pela borda captura-e-imprime: uma falha de
// domínio vira uma mensagem "[ERRO] ..." e o laço de menu continua — o
// núcleo nunca derruba o processo por entrada inválida.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/pkg/logger"
)

// Deps agrupa os gerenciadores que o shell dirige. Todos são construídos uma
// única vez na subida do processo e injetados aqui — não há singletons de
// pacote.
type Deps struct {
	Catalog    *usecase.CatalogUseCase
	Stock      *usecase.StockUseCase
	Performers *usecase.PerformerUseCase
	Rooms      *usecase.DressingRoomUseCase
	Orders     *usecase.OrderUseCase
	Shopping   *usecase.ShoppingUseCase
	Log        *logger.Logger
}

// Shell é o menu interativo do sistema.
type Shell struct {
	in  *bufio.Reader
	out io.Writer

	catalog    *usecase.CatalogUseCase
	stock      *usecase.StockUseCase
	performers *usecase.PerformerUseCase
	rooms      *usecase.DressingRoomUseCase
	orders     *usecase.OrderUseCase
	shopping   *usecase.ShoppingUseCase

	log *logger.Logger
}

// New constrói o shell lendo de in e escrevendo em out.
func New(in io.Reader, out io.Writer, deps Deps) *Shell {
	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		catalog:    deps.Catalog,
		stock:      deps.Stock,
		performers: deps.Performers,
		rooms:      deps.Rooms,
		orders:     deps.Orders,
		shopping:   deps.Shopping,
		log:        deps.Log,
	}
}

// Run roda o menu principal até o usuário sair (ou EOF na entrada).
func (s *Shell) Run() {
	for {
		fmt.Fprint(s.out, "\n========= GESTÃO DE CAMARIM =========\n"+
			"1. Itens (catálogo)\n"+
			"2. Estoque\n"+
			"3. Artistas\n"+
			"4. Camarins\n"+
			"5. Pedidos\n"+
			"6. Listas de Compras\n"+
			"0. Sair\n")
		switch s.readInt("Opção: ") {
		case 1:
			s.catalogMenu()
		case 2:
			s.stockMenu()
		case 3:
			s.performerMenu()
		case 4:
			s.dressingRoomMenu()
		case 5:
			s.orderMenu()
		case 6:
			s.shoppingMenu()
		case 0:
			fmt.Fprintln(s.out, "Até logo!")
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}

// report imprime a falha e devolve true quando houve erro. Esta é a borda de
// tratamento combinada com o núcleo: capturar, imprimir, continuar.
func (s *Shell) report(err error) bool {
	if err == nil {
		return false
	}
	fmt.Fprintf(s.out, "\n[ERRO] %s\n", err)
	if errors.Is(err, domain.ErrDomain) {
		s.log.Debug().Err(err).Msg("operação rejeitada pelo domínio")
	} else {
		s.log.Warn().Err(err).Msg("falha inesperada no shell")
	}
	return true
}

func (s *Shell) ok(msg string) {
	fmt.Fprintf(s.out, "\n[OK] %s\n", msg)
}
