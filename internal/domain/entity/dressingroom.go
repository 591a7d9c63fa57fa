package entity

import (
	"fmt"
	"strings"

	"github.com/showtech/camarim/internal/domain/ledger"
)

// DressingRoom é um camarim com seu ledger próprio de itens alocados.
// PerformerID referencia o artista ocupante; zero significa vago. O ledger
// colapsa em zero: quantidade representa presença física no camarim.
type DressingRoom struct {
	ID          int
	Name        string
	PerformerID int

	items *ledger.Ledger
}

// NewDressingRoom cria um camarim com ledger vazio.
func NewDressingRoom(id int, name string, performerID int) *DressingRoom {
	return &DressingRoom{
		ID:          id,
		Name:        name,
		PerformerID: performerID,
		items:       ledger.NewDressingRoom(),
	}
}

// AddItem aloca quantidade de um item ao camarim (soma se já presente).
func (d *DressingRoom) AddItem(itemID int, name string, quantity int) error {
	return d.items.Upsert(itemID, name, quantity)
}

// WithdrawItem retira quantidade; ao chegar a zero o registro some.
func (d *DressingRoom) WithdrawItem(itemID int, quantity int) error {
	return d.items.Withdraw(itemID, quantity)
}

// Items devolve uma cópia dos registros do camarim.
func (d *DressingRoom) Items() []ledger.Entry {
	return d.items.List()
}

// TotalQuantity soma as quantidades de todos os itens alocados.
func (d *DressingRoom) TotalQuantity() int {
	total := 0
	for _, e := range d.items.List() {
		total += e.Quantity
	}
	return total
}

// Clone devolve uma cópia profunda (ledger incluído).
func (d *DressingRoom) Clone() *DressingRoom {
	c := *d
	c.items = d.items.Clone()
	return &c
}

func (d *DressingRoom) Display() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== CAMARIM ===\n")
	fmt.Fprintf(&b, "ID: %d\nNome: %s\nArtista ID: %d\n", d.ID, d.Name, d.PerformerID)
	fmt.Fprintf(&b, "Total de itens: %d\n\nItens:\n", d.TotalQuantity())
	itens := d.items.List()
	if len(itens) == 0 {
		b.WriteString("  Nenhum item no camarim\n")
		return b.String()
	}
	for _, e := range itens {
		fmt.Fprintf(&b, "  %-5d %-30s %d\n", e.ItemID, e.Name, e.Quantity)
	}
	return b.String()
}
