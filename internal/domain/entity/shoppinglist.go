package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/internal/domain/ledger"
	"github.com/showtech/camarim/pkg/money"
)

// ShoppingList é uma lista de compras com ledger precificado: cada item
// guarda preço unitário e subtotal, somáveis num total geral.
type ShoppingList struct {
	ID          int
	Description string

	items *ledger.PricedLedger
}

// NewShoppingList cria uma lista vazia.
func NewShoppingList(id int, description string) *ShoppingList {
	return &ShoppingList{
		ID:          id,
		Description: description,
		items:       ledger.NewShopping(),
	}
}

// AddItem soma quantidade ao item (ou cria o registro); o subtotal é
// recalculado com o preço desta chamada.
func (l *ShoppingList) AddItem(itemID int, name string, quantity int, unitPrice decimal.Decimal) error {
	return l.items.Upsert(itemID, name, quantity, unitPrice)
}

// RemoveItem apaga o registro inteiro; ausência retorna false.
func (l *ShoppingList) RemoveItem(itemID int) bool {
	return l.items.Remove(itemID)
}

// UpdateQuantity substitui a quantidade e recalcula o subtotal.
func (l *ShoppingList) UpdateQuantity(itemID int, quantity int) error {
	return l.items.SetQuantity(itemID, quantity)
}

// Total soma os subtotais de todos os itens.
func (l *ShoppingList) Total() decimal.Decimal {
	return l.items.Total()
}

// Clear esvazia a lista para recomeçar do zero.
func (l *ShoppingList) Clear() {
	l.items.Clear()
}

// Items devolve uma cópia dos registros da lista.
func (l *ShoppingList) Items() []ledger.PricedEntry {
	return l.items.List()
}

// Clone devolve uma cópia profunda (ledger incluído).
func (l *ShoppingList) Clone() *ShoppingList {
	c := *l
	c.items = l.items.Clone()
	return &c
}

func (l *ShoppingList) Display() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== LISTA DE COMPRAS ===\n")
	fmt.Fprintf(&b, "ID: %d\nDescrição: %s\n\nItens:\n", l.ID, l.Description)
	itens := l.items.List()
	if len(itens) == 0 {
		b.WriteString("  Nenhum item na lista\n")
		return b.String()
	}
	for _, e := range itens {
		fmt.Fprintf(&b, "  %-5d %-30s %-6d %-12s %s\n",
			e.ItemID, e.Name, e.Quantity, money.BRL(e.UnitPrice), money.BRL(e.Subtotal))
	}
	fmt.Fprintf(&b, "\nTOTAL: %s\n", money.BRL(l.Total()))
	return b.String()
}
