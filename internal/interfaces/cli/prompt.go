package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/pkg/money"
)

// readLine lê uma linha já aparada. EOF devolve vazio, o que faz os menus
// voltarem/encerrarem naturalmente.
func (s *Shell) readLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// readInt insiste até receber um inteiro válido; EOF devolve zero.
func (s *Shell) readInt(prompt string) int {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			return 0
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n
		}
		fmt.Fprintln(s.out, "[ERRO] Número inválido!")
	}
}

// readMoney insiste até receber um valor monetário válido, aceitando
// vírgula ou ponto como separador decimal; EOF devolve zero.
func (s *Shell) readMoney(prompt string) decimal.Decimal {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			return decimal.Zero
		}
		v, parseErr := money.Parse(line)
		if parseErr == nil {
			return v
		}
		fmt.Fprintln(s.out, "[ERRO] Valor inválido! Use vírgula ou ponto (ex.: 12,50)")
	}
}
