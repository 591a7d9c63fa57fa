package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/domain"
)

func TestPerformer_CRUD(t *testing.T) {
	uc := usecase.NewPerformerUseCase(nopLogger())

	id, err := uc.Create("Maria", 0)
	require.NoError(t, err)
	require.Equal(t, 1, id)

	p := uc.FindByID(id)
	require.NotNil(t, p)
	assert.Equal(t, "Maria", p.Name)
	assert.Equal(t, 0, p.DressingRoomID, "zero = sem camarim")

	require.NoError(t, uc.Update(id, "Maria Silva", 3))
	assert.Equal(t, "Maria Silva", uc.FindByID(id).Name)

	assert.True(t, uc.Remove(id))
	assert.Nil(t, uc.FindByID(id))
	assert.False(t, uc.Remove(id), "remoção de ausente é false, não falha")
}

func TestPerformer_CreateValidacoes(t *testing.T) {
	uc := usecase.NewPerformerUseCase(nopLogger())

	_, err := uc.Create("", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create("Maria", -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPerformer_UpdateAusenteFalha(t *testing.T) {
	uc := usecase.NewPerformerUseCase(nopLogger())

	err := uc.Update(999, "X", 1)
	require.ErrorIs(t, err, domain.ErrPerformer)
	require.ErrorIs(t, err, domain.ErrDomain)
}

// FindAllByDressingRoom devolve TODOS os artistas do camarim, não só o
// primeiro.
func TestPerformer_FindAllByDressingRoom(t *testing.T) {
	uc := usecase.NewPerformerUseCase(nopLogger())
	uc.Create("Maria", 2)
	uc.Create("João", 1)
	uc.Create("Ana", 2)

	doCamarim := uc.FindAllByDressingRoom(2)
	require.Len(t, doCamarim, 2)
	assert.Equal(t, "Maria", doCamarim[0].Name)
	assert.Equal(t, "Ana", doCamarim[1].Name)

	assert.Empty(t, uc.FindAllByDressingRoom(9))
}
