package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/domain"
)

// Cenário completo: cadastro no catálogo, entrada de estoque, saída total
// (colapso) e nova saída sinalizando ausência — não insuficiência, já que o
// registro deixou de existir.
func TestStock_CicloCompletoComColapso(t *testing.T) {
	catalogo := usecase.NewCatalogUseCase(nopLogger())
	estoque := usecase.NewStockUseCase(nopLogger())

	id, err := catalogo.Register("Toalha", decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	require.Equal(t, 1, id)

	require.NoError(t, estoque.Add(id, "Toalha", 10))
	require.NoError(t, estoque.Withdraw(id, 10))

	assert.Empty(t, estoque.List(), "retirada total não deixa registro")

	err = estoque.Withdraw(id, 1)
	require.ErrorIs(t, err, domain.ErrStock)
	assert.NotErrorIs(t, err, domain.ErrStockInsufficient)
}

func TestStock_WithdrawInsuficiente(t *testing.T) {
	estoque := usecase.NewStockUseCase(nopLogger())
	require.NoError(t, estoque.Add(1, "Toalha", 3))

	err := estoque.Withdraw(1, 4)
	require.ErrorIs(t, err, domain.ErrStockInsufficient)
	assert.Equal(t, 3, estoque.Quantity(1))
}

func TestStock_SetQuantitySubstitui(t *testing.T) {
	estoque := usecase.NewStockUseCase(nopLogger())
	require.NoError(t, estoque.Add(1, "Toalha", 10))

	require.NoError(t, estoque.SetQuantity(1, 2))
	assert.Equal(t, 2, estoque.Quantity(1))

	// zero colapsa
	require.NoError(t, estoque.SetQuantity(1, 0))
	assert.False(t, estoque.CheckAvailability(1, 1))
}

func TestStock_AddZeroEhNoOp(t *testing.T) {
	estoque := usecase.NewStockUseCase(nopLogger())

	require.NoError(t, estoque.Add(1, "Toalha", 0))
	assert.Empty(t, estoque.List())
	assert.Equal(t, 0, estoque.Quantity(1))
}
