package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtech/camarim/internal/application/usecase"
	"github.com/showtech/camarim/internal/domain"
)

func TestDressingRoom_CRUD(t *testing.T) {
	uc := usecase.NewDressingRoomUseCase(nopLogger())

	id, err := uc.Create("Camarim Principal", 0)
	require.NoError(t, err)
	require.Equal(t, 1, id)

	d := uc.FindByID(id)
	require.NotNil(t, d)
	assert.Equal(t, "Camarim Principal", d.Name)

	require.NoError(t, uc.Update(id, "Camarim A", 7))
	assert.Equal(t, 7, uc.FindByID(id).PerformerID)

	assert.True(t, uc.Remove(id))
	assert.Nil(t, uc.FindByID(id))
}

// Atualizar camarim inexistente é falha da
// categoria do camarim, não um boolean false.
func TestDressingRoom_UpdateAusenteFalha(t *testing.T) {
	uc := usecase.NewDressingRoomUseCase(nopLogger())

	err := uc.Update(999, "X", 1)
	require.ErrorIs(t, err, domain.ErrDressingRoom)
	require.ErrorIs(t, err, domain.ErrDomain)
	assert.EqualError(t, err, "Erro com Camarim: Camarim com ID 999 não encontrado")
}

func TestDressingRoom_FindByPerformerPrimeiro(t *testing.T) {
	uc := usecase.NewDressingRoomUseCase(nopLogger())
	uc.Create("A", 5)
	uc.Create("B", 5)

	d := uc.FindByPerformer(5)
	require.NotNil(t, d)
	assert.Equal(t, "A", d.Name, "devolve o primeiro associado")
	assert.Nil(t, uc.FindByPerformer(9))
}

// O ponteiro de FindByID é o objeto vivo: itens alocados por ele valem no
// gerenciador. O ledger do camarim segue as regras de colapso.
func TestDressingRoom_LedgerViaPonteiro(t *testing.T) {
	uc := usecase.NewDressingRoomUseCase(nopLogger())
	id, _ := uc.Create("Camarim A", 0)

	d := uc.FindByID(id)
	require.NoError(t, d.AddItem(1, "Toalha", 2))
	require.NoError(t, d.WithdrawItem(1, 2))

	assert.Empty(t, uc.FindByID(id).Items(), "retirada total colapsa o registro")

	err := d.WithdrawItem(1, 1)
	assert.ErrorIs(t, err, domain.ErrDressingRoom)
}

// List devolve cópias profundas: mutar o snapshot não toca o estado real.
func TestDressingRoom_ListEhSnapshot(t *testing.T) {
	uc := usecase.NewDressingRoomUseCase(nopLogger())
	id, _ := uc.Create("Camarim A", 0)
	require.NoError(t, uc.FindByID(id).AddItem(1, "Toalha", 2))

	snapshot := uc.List()
	require.Len(t, snapshot, 1)
	require.NoError(t, snapshot[0].WithdrawItem(1, 2))

	assert.Len(t, uc.FindByID(id).Items(), 1, "o gerenciador não foi afetado")
}
