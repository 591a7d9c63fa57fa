package entity

import (
	"fmt"
	"strings"

	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/ledger"
)

// Order é um pedido de itens para um camarim. As linhas registram intenção,
// não presença física: quantidades não são conferidas contra o estoque
// central e registros permanecem até remoção explícita. Depois de atendido
// o pedido congela: nenhuma linha pode ser adicionada ou removida.
type Order struct {
	ID             int
	DressingRoomID int
	PerformerName  string

	lines     *ledger.Ledger
	fulfilled bool
}

// NewOrder cria um pedido pendente sem linhas.
func NewOrder(id int, dressingRoomID int, performerName string) *Order {
	return &Order{
		ID:             id,
		DressingRoomID: dressingRoomID,
		PerformerName:  performerName,
		lines:          ledger.NewOrder(),
	}
}

// Fulfilled informa se o pedido já foi atendido.
func (o *Order) Fulfilled() bool {
	return o.fulfilled
}

// MarkFulfilled marca o pedido como atendido. Idempotente: chamar de novo
// não é erro. A transferência estoque → camarim, se desejada, é
// responsabilidade de quem chama, em operações separadas.
func (o *Order) MarkFulfilled() {
	o.fulfilled = true
}

// AddLine soma quantidade a uma linha (ou cria uma nova). Pedido atendido é
// imutável.
func (o *Order) AddLine(itemID int, name string, quantity int) error {
	if o.fulfilled {
		return domain.Errorf(domain.KindOrder, "Não é possível adicionar itens a um pedido já atendido")
	}
	return o.lines.Upsert(itemID, name, quantity)
}

// RemoveLine apaga a linha inteira. Ausência retorna false sem erro; pedido
// atendido é imutável e retorna erro.
func (o *Order) RemoveLine(itemID int) (bool, error) {
	if o.fulfilled {
		return false, domain.Errorf(domain.KindOrder, "Não é possível remover itens de um pedido já atendido")
	}
	return o.lines.Remove(itemID), nil
}

// Lines devolve uma cópia das linhas do pedido.
func (o *Order) Lines() []ledger.Entry {
	return o.lines.List()
}

// Clone devolve uma cópia profunda (linhas incluídas).
func (o *Order) Clone() *Order {
	c := *o
	c.lines = o.lines.Clone()
	return &c
}

func (o *Order) Display() string {
	status := "PENDENTE"
	if o.fulfilled {
		status = "ATENDIDO"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== PEDIDO ===\n")
	fmt.Fprintf(&b, "ID: %d\nCamarim ID: %d\nArtista: %s\nStatus: %s\n\nItens:\n",
		o.ID, o.DressingRoomID, o.PerformerName, status)
	linhas := o.lines.List()
	if len(linhas) == 0 {
		b.WriteString("  Nenhum item no pedido\n")
		return b.String()
	}
	for _, e := range linhas {
		fmt.Fprintf(&b, "  %-5d %-30s %d\n", e.ItemID, e.Name, e.Quantity)
	}
	return b.String()
}
