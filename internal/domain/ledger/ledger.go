// Package ledger implementa as coleções item-quantidade do sistema: o
// estoque central, os itens de um camarim, as linhas de um pedido e os itens
// precificados de uma lista de compras. Cada dono instancia seu ledger com a
// semântica própria (colapso em zero, categoria de erro, preço).
package ledger

import (
	"sort"

	"github.com/showtech/camarim/internal/domain"
)

// Entry é um registro item-quantidade dentro de um ledger.
type Entry struct {
	ItemID   int
	Name     string
	Quantity int
}

// Ledger mapeia itemId → Entry com semântica configurada pelo dono.
// Nos ledgers com colapso (estoque e camarim) nunca persiste registro com
// quantidade zero; no ledger de pedido o registro permanece até remoção
// explícita.
type Ledger struct {
	scope        domain.Kind // categoria de "não encontrado" do dono
	insufficient domain.Kind // categoria de saldo insuficiente
	place        string      // sufixo das mensagens ("no estoque", ...)
	allowZeroAdd bool        // entrada de quantidade zero é aceita como no-op
	collapse     bool        // quantidade zero remove o registro
	entries      map[int]Entry
}

// NewStock cria o ledger do estoque central: colapsa em zero, aceita entrada
// de quantidade zero como no-op e sinaliza falta com a especialização
// ErrStockInsufficient.
func NewStock() *Ledger {
	return &Ledger{
		scope:        domain.KindStock,
		insufficient: domain.KindStockInsufficient,
		place:        "no estoque",
		allowZeroAdd: true,
		collapse:     true,
		entries:      make(map[int]Entry),
	}
}

// NewDressingRoom cria o ledger de itens de um camarim: colapsa em zero e
// sinaliza tanto ausência quanto falta com a categoria do camarim.
func NewDressingRoom() *Ledger {
	return &Ledger{
		scope:        domain.KindDressingRoom,
		insufficient: domain.KindDressingRoom,
		place:        "no camarim",
		collapse:     true,
		entries:      make(map[int]Entry),
	}
}

// NewOrder cria o ledger de linhas de um pedido: registra intenção, portanto
// retém quantidades até remoção explícita e não colapsa em zero.
func NewOrder() *Ledger {
	return &Ledger{
		scope:        domain.KindOrder,
		insufficient: domain.KindOrder,
		place:        "no pedido",
		entries:      make(map[int]Entry),
	}
}

// Upsert soma quantidade ao registro existente ou cria um novo. Uma entrada
// de zero (quando permitida) não materializa registro novo, preservando a
// invariante de que ledgers com colapso não guardam quantidade zero.
func (l *Ledger) Upsert(itemID int, name string, quantity int) error {
	if itemID < 0 {
		return domain.Errorf(domain.KindValidation, "ID do item inválido")
	}
	if name == "" {
		return domain.Errorf(domain.KindValidation, "Nome do item não pode ser vazio")
	}
	if l.allowZeroAdd {
		if quantity < 0 {
			return domain.Errorf(domain.KindValidation, "Quantidade não pode ser negativa")
		}
	} else if quantity <= 0 {
		return domain.Errorf(domain.KindValidation, "Quantidade deve ser maior que zero")
	}

	if e, ok := l.entries[itemID]; ok {
		e.Quantity += quantity
		l.entries[itemID] = e
		return nil
	}
	if quantity == 0 {
		return nil
	}
	l.entries[itemID] = Entry{ItemID: itemID, Name: name, Quantity: quantity}
	return nil
}

// Withdraw subtrai quantidade do registro. Se o saldo chega exatamente a
// zero o registro é removido; id ausente (inclusive após um colapso
// anterior) sinaliza "não encontrado" na categoria do dono. Em caso de
// falha nada é alterado.
func (l *Ledger) Withdraw(itemID int, quantity int) error {
	e, ok := l.entries[itemID]
	if !ok {
		return domain.Errorf(l.scope, "Item não encontrado %s (ID: %d)", l.place, itemID)
	}
	if quantity < 0 {
		return domain.Errorf(domain.KindValidation, "Quantidade não pode ser negativa")
	}
	if e.Quantity < quantity {
		return domain.Errorf(l.insufficient,
			"Quantidade insuficiente. Disponível: %d, Solicitado: %d", e.Quantity, quantity)
	}
	e.Quantity -= quantity
	if e.Quantity == 0 {
		delete(l.entries, itemID)
		return nil
	}
	l.entries[itemID] = e
	return nil
}

// Remove apaga o registro inteiro, qualquer que seja a quantidade restante.
// Ausência não é falha: retorna false.
func (l *Ledger) Remove(itemID int) bool {
	if _, ok := l.entries[itemID]; !ok {
		return false
	}
	delete(l.entries, itemID)
	return true
}

// SetQuantity substitui (não soma) a quantidade armazenada. Zero só é aceito
// em ledgers com colapso, onde remove o registro.
func (l *Ledger) SetQuantity(itemID int, quantity int) error {
	e, ok := l.entries[itemID]
	if !ok {
		return domain.Errorf(l.scope, "Item não encontrado %s (ID: %d)", l.place, itemID)
	}
	if quantity < 0 {
		return domain.Errorf(domain.KindValidation, "Quantidade não pode ser negativa")
	}
	if quantity == 0 {
		if !l.collapse {
			return domain.Errorf(domain.KindValidation, "Quantidade deve ser maior que zero")
		}
		delete(l.entries, itemID)
		return nil
	}
	e.Quantity = quantity
	l.entries[itemID] = e
	return nil
}

// CheckAvailability informa se há saldo suficiente; nunca falha.
func (l *Ledger) CheckAvailability(itemID int, quantity int) bool {
	e, ok := l.entries[itemID]
	return ok && e.Quantity >= quantity
}

// Quantity devolve o saldo atual, zero quando o item não existe.
func (l *Ledger) Quantity(itemID int) int {
	return l.entries[itemID].Quantity
}

// List devolve uma cópia dos registros em ordem crescente de itemId.
func (l *Ledger) List() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Len devolve quantos registros existem.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Clone devolve uma cópia independente do ledger.
func (l *Ledger) Clone() *Ledger {
	c := *l
	c.entries = make(map[int]Entry, len(l.entries))
	for k, v := range l.entries {
		c.entries[k] = v
	}
	return &c
}
