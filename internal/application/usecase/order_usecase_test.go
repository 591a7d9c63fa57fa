package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/domain"
)

// Pedido com duas linhas, atendido, rejeita nova
// linha e mantém o ledger intacto.
func TestOrder_CongelaAposAtendido(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	id, err := uc.Create(1, "Maria")
	require.NoError(t, err)

	require.NoError(t, uc.AddLine(id, 1, "Toalha", 3))
	require.NoError(t, uc.AddLine(id, 2, "Espelho", 1))
	require.NoError(t, uc.MarkFulfilled(id))

	err = uc.AddLine(id, 3, "Cabide", 1)
	require.ErrorIs(t, err, domain.ErrOrder)

	o := uc.FindByID(id)
	assert.Len(t, o.Lines(), 2, "ledger inalterado após a tentativa")
}

// Marcar atendido é idempotente: a segunda chamada não é erro.
func TestOrder_MarkFulfilledIdempotente(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	id, _ := uc.Create(1, "Maria")

	require.NoError(t, uc.MarkFulfilled(id))
	require.NoError(t, uc.MarkFulfilled(id))
	assert.True(t, uc.FindByID(id).Fulfilled())
}

func TestOrder_AddLineSomaQuantidade(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	id, _ := uc.Create(1, "Maria")

	require.NoError(t, uc.AddLine(id, 1, "Toalha", 3))
	require.NoError(t, uc.AddLine(id, 1, "Toalha", 2))

	linhas := uc.FindByID(id).Lines()
	require.Len(t, linhas, 1)
	assert.Equal(t, 5, linhas[0].Quantity)
}

func TestOrder_RemoveLine(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	id, _ := uc.Create(1, "Maria")
	require.NoError(t, uc.AddLine(id, 1, "Toalha", 3))

	ok, err := uc.RemoveLine(id, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.RemoveLine(id, 1)
	require.NoError(t, err)
	assert.False(t, ok, "linha ausente é false, não falha")

	_, err = uc.RemoveLine(99, 1)
	assert.ErrorIs(t, err, domain.ErrOrder)
}

func TestOrder_ListPendingEPorCamarim(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	a, _ := uc.Create(1, "Maria")
	uc.Create(2, "João")
	c, _ := uc.Create(1, "Ana")

	require.NoError(t, uc.MarkFulfilled(a))

	pendentes := uc.ListPending()
	require.Len(t, pendentes, 2)
	for _, o := range pendentes {
		assert.False(t, o.Fulfilled())
	}

	doCamarim := uc.FindByDressingRoom(1)
	require.Len(t, doCamarim, 2, "todos os pedidos do camarim, não só o primeiro")
	assert.Equal(t, a, doCamarim[0].ID)
	assert.Equal(t, c, doCamarim[1].ID)
}

func TestOrder_CreateValidacoes(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())

	_, err := uc.Create(-1, "Maria")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(1, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrder_RemovePedidoInteiro(t *testing.T) {
	uc := usecase.NewOrderUseCase(nopLogger())
	id, _ := uc.Create(1, "Maria")
	require.NoError(t, uc.MarkFulfilled(id))

	assert.True(t, uc.Remove(id), "atendido também pode ser removido")
	assert.Nil(t, uc.FindByID(id))
}
