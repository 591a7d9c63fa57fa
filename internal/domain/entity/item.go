package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/pkg/money"
)

// Item é um registro do catálogo de itens compráveis: identidade e preço,
// independente de qualquer contagem de estoque. Os ledgers copiam nome e
// preço por valor, então remover um item do catálogo não afeta registros
// que já o referenciam.
type Item struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

func (i Item) Display() string {
	return fmt.Sprintf("[ID: %d, Nome: %s, Preço: %s]", i.ID, i.Name, money.BRL(i.Price))
}
