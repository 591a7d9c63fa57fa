package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/internal/domain"
)

// PricedEntry é o registro da lista de compras: além da quantidade carrega o
// preço unitário e o subtotal (quantidade × preço unitário).
type PricedEntry struct {
	ItemID    int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// PricedLedger é o ledger precificado da lista de compras. Como o pedido,
// registra intenção: retém registros até remoção explícita e a quantidade
// deve permanecer positiva em atualizações.
type PricedLedger struct {
	entries map[int]PricedEntry
}

// NewShopping cria um ledger precificado vazio.
func NewShopping() *PricedLedger {
	return &PricedLedger{entries: make(map[int]PricedEntry)}
}

// Upsert soma quantidade ao registro existente ou cria um novo. O subtotal é
// sempre recalculado com o preço informado nesta chamada — vale o último
// preço conhecido, não o armazenado.
func (l *PricedLedger) Upsert(itemID int, name string, quantity int, unitPrice decimal.Decimal) error {
	if itemID < 0 {
		return domain.Errorf(domain.KindValidation, "ID do item inválido")
	}
	if name == "" {
		return domain.Errorf(domain.KindValidation, "Nome do item não pode ser vazio")
	}
	if quantity <= 0 {
		return domain.Errorf(domain.KindValidation, "Quantidade deve ser maior que zero")
	}
	if unitPrice.IsNegative() {
		return domain.Errorf(domain.KindValidation, "Preço não pode ser negativo")
	}

	e, ok := l.entries[itemID]
	if !ok {
		e = PricedEntry{ItemID: itemID, Name: name}
	}
	e.Quantity += quantity
	e.UnitPrice = unitPrice
	e.Subtotal = decimal.NewFromInt(int64(e.Quantity)).Mul(unitPrice)
	l.entries[itemID] = e
	return nil
}

// Remove apaga o registro inteiro; ausência retorna false, não é falha.
func (l *PricedLedger) Remove(itemID int) bool {
	if _, ok := l.entries[itemID]; !ok {
		return false
	}
	delete(l.entries, itemID)
	return true
}

// SetQuantity substitui a quantidade (que deve seguir positiva) e recalcula
// o subtotal com o preço unitário armazenado.
func (l *PricedLedger) SetQuantity(itemID int, quantity int) error {
	e, ok := l.entries[itemID]
	if !ok {
		return domain.Errorf(domain.KindShoppingList, "Item não encontrado na lista (ID: %d)", itemID)
	}
	if quantity <= 0 {
		return domain.Errorf(domain.KindValidation, "Quantidade deve ser maior que zero")
	}
	e.Quantity = quantity
	e.Subtotal = decimal.NewFromInt(int64(quantity)).Mul(e.UnitPrice)
	l.entries[itemID] = e
	return nil
}

// Total soma os subtotais de todos os registros.
func (l *PricedLedger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Subtotal)
	}
	return total
}

// List devolve uma cópia dos registros em ordem crescente de itemId.
func (l *PricedLedger) List() []PricedEntry {
	out := make([]PricedEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Len devolve quantos registros existem.
func (l *PricedLedger) Len() int {
	return len(l.entries)
}

// Clear esvazia a lista por completo.
func (l *PricedLedger) Clear() {
	l.entries = make(map[int]PricedEntry)
}

// Clone devolve uma cópia independente do ledger.
func (l *PricedLedger) Clone() *PricedLedger {
	c := NewShopping()
	for k, v := range l.entries {
		c.entries[k] = v
	}
	return c
}
