// Package money formata e interpreta valores monetários no padrão brasileiro
// (vírgula como separador decimal, "R$ 1.234,56").
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formata o valor como moeda brasileira com duas casas decimais.
func BRL(v decimal.Decimal) string {
	return printer.Sprintf("R$ %v", number.Decimal(v.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Parse converte entrada do usuário aceitando vírgula ou ponto como
// separador decimal ("12,50" e "12.50" são equivalentes).
func Parse(s string) (decimal.Decimal, error) {
	normalizado := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(normalizado)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor monetário inválido: %q", s)
	}
	return d, nil
}
