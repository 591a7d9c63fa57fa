package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/domain"
)

// TestErrorf_Hierarquia valida os três níveis da hierarquia: toda falha casa
// com ErrDomain, a especialização de estoque casa com a própria sentinela e
// com a categoria ErrStock, e nunca com categorias alheias.
func TestErrorf_Hierarquia(t *testing.T) {
	err := domain.Errorf(domain.KindStockInsufficient, "disponível: %d, solicitado: %d", 2, 5)

	assert.True(t, errors.Is(err, domain.ErrDomain), "toda falha casa com a base")
	assert.True(t, errors.Is(err, domain.ErrStock), "especialização casa com a categoria")
	assert.True(t, errors.Is(err, domain.ErrStockInsufficient))
	assert.False(t, errors.Is(err, domain.ErrValidation))
	assert.False(t, errors.Is(err, domain.ErrOrder))
}

func TestErrorf_CategoriaSimples(t *testing.T) {
	err := domain.Errorf(domain.KindDressingRoom, "camarim com ID %d não encontrado", 7)

	assert.True(t, errors.Is(err, domain.ErrDomain))
	assert.True(t, errors.Is(err, domain.ErrDressingRoom))
	assert.False(t, errors.Is(err, domain.ErrStock), "categorias não se misturam")
}

// TestErrorf_Mensagens garante os prefixos literais do sistema original,
// inclusive o prefixo encadeado da especialização de estoque.
func TestErrorf_Mensagens(t *testing.T) {
	casos := []struct {
		kind     domain.Kind
		detail   string
		esperado string
	}{
		{domain.KindValidation, "nome vazio", "Erro de Validação: nome vazio"},
		{domain.KindPerformer, "x", "Erro com Artista: x"},
		{domain.KindItem, "x", "Erro com Item: x"},
		{domain.KindStock, "x", "Erro de Estoque: x"},
		{domain.KindStockInsufficient, "x", "Erro de Estoque: Estoque insuficiente: x"},
		{domain.KindDressingRoom, "x", "Erro com Camarim: x"},
		{domain.KindOrder, "x", "Erro com Pedido: x"},
		{domain.KindShoppingList, "x", "Erro com Lista de Compras: x"},
	}
	for _, c := range casos {
		err := domain.Errorf(c.kind, "%s", c.detail)
		require.EqualError(t, err, c.esperado)
	}
}

func TestErrorf_KindInspecionavel(t *testing.T) {
	err := domain.Errorf(domain.KindItem, "duplicado")

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.KindItem, de.Kind)
	assert.Equal(t, "duplicado", de.Detail)
}
