package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
)

// Conjunto fechado de implementações de Displayable.
var (
	_ entity.Displayable = entity.Item{}
	_ entity.Displayable = entity.Performer{}
	_ entity.Displayable = (*entity.DressingRoom)(nil)
	_ entity.Displayable = (*entity.Order)(nil)
	_ entity.Displayable = (*entity.ShoppingList)(nil)
)

// TestOrder_CongelaAposAtendimento: depois de atendido o pedido é imutável e
// marcar de novo é idempotente, não é erro.
func TestOrder_CongelaAposAtendimento(t *testing.T) {
	o := entity.NewOrder(1, 2, "Maria")
	require.NoError(t, o.AddLine(1, "Toalha", 3))
	require.NoError(t, o.AddLine(2, "Espelho", 1))

	o.MarkFulfilled()
	assert.True(t, o.Fulfilled())
	o.MarkFulfilled()
	assert.True(t, o.Fulfilled(), "segunda marcação segue atendido, sem falha")

	err := o.AddLine(3, "Cabide", 1)
	require.ErrorIs(t, err, domain.ErrOrder)

	_, err = o.RemoveLine(1)
	require.ErrorIs(t, err, domain.ErrOrder)

	assert.Len(t, o.Lines(), 2, "ledger permanece intacto após tentativas de mutação")
}

func TestOrder_RemoveLineAusenteRetornaFalse(t *testing.T) {
	o := entity.NewOrder(1, 2, "Maria")

	ok, err := o.RemoveLine(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDressingRoom_TotalQuantity(t *testing.T) {
	d := entity.NewDressingRoom(1, "Camarim A", 0)
	require.NoError(t, d.AddItem(1, "Toalha", 3))
	require.NoError(t, d.AddItem(2, "Espelho", 2))

	assert.Equal(t, 5, d.TotalQuantity())
}

func TestClone_CopiaProfunda(t *testing.T) {
	d := entity.NewDressingRoom(1, "Camarim A", 0)
	require.NoError(t, d.AddItem(1, "Toalha", 3))

	c := d.Clone()
	require.NoError(t, c.WithdrawItem(1, 3))

	assert.Len(t, d.Items(), 1, "alterar o clone não afeta o original")
	assert.Empty(t, c.Items())
}

func TestDisplay_Item(t *testing.T) {
	i := entity.Item{ID: 1, Name: "Toalha", Price: decimal.RequireFromString("12.50")}
	assert.Equal(t, "[ID: 1, Nome: Toalha, Preço: R$ 12,50]", i.Display())
}

func TestDisplay_PedidoMostraStatus(t *testing.T) {
	o := entity.NewOrder(1, 2, "Maria")
	assert.Contains(t, o.Display(), "PENDENTE")

	o.MarkFulfilled()
	assert.Contains(t, o.Display(), "ATENDIDO")
}
