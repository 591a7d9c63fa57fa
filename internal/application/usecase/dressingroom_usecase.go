package usecase

import (
	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
	"github.com/showtech/camarim/pkg/logger"
)

// DressingRoomUseCase gerencia os camarins e, por consequência, o ledger de
// itens de cada um (acessado via FindByID, com semântica de ponteiro).
type DressingRoomUseCase struct {
	rooms  []*entity.DressingRoom
	nextID int
	log    *logger.Logger
}

// NewDressingRoomUseCase constrói o gerenciador vazio.
func NewDressingRoomUseCase(log *logger.Logger) *DressingRoomUseCase {
	return &DressingRoomUseCase{nextID: 1, log: log}
}

// Create cadastra um camarim. performerID zero significa vago.
func (uc *DressingRoomUseCase) Create(name string, performerID int) (int, error) {
	if name == "" {
		return 0, domain.Errorf(domain.KindValidation, "Nome do camarim não pode ser vazio")
	}
	if performerID < 0 {
		return 0, domain.Errorf(domain.KindValidation, "ID do artista inválido")
	}

	d := entity.NewDressingRoom(uc.nextID, name, performerID)
	uc.rooms = append(uc.rooms, d)
	uc.nextID++

	uc.log.Info().Int("camarim_id", d.ID).Str("nome", name).Msg("camarim cadastrado")
	return d.ID, nil
}

// FindByID busca linear; devolve nil quando ausente. O ponteiro devolvido é
// o objeto vivo: operações de ledger feitas nele valem no gerenciador.
func (uc *DressingRoomUseCase) FindByID(id int) *entity.DressingRoom {
	for _, d := range uc.rooms {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// FindByPerformer devolve o primeiro camarim associado ao artista, ou nil.
func (uc *DressingRoomUseCase) FindByPerformer(performerID int) *entity.DressingRoom {
	for _, d := range uc.rooms {
		if d.PerformerID == performerID {
			return d
		}
	}
	return nil
}

// Remove apaga o camarim e descarta o ledger dele; artistas e pedidos que o
// referenciam não são tocados (sem cascata).
func (uc *DressingRoomUseCase) Remove(id int) bool {
	for i, d := range uc.rooms {
		if d.ID == id {
			uc.rooms = append(uc.rooms[:i], uc.rooms[i+1:]...)
			uc.log.Info().Int("camarim_id", id).Msg("camarim removido")
			return true
		}
	}
	return false
}

// Update sobrescreve nome e artista; id ausente é falha.
func (uc *DressingRoomUseCase) Update(id int, name string, performerID int) error {
	d := uc.FindByID(id)
	if d == nil {
		return domain.Errorf(domain.KindDressingRoom, "Camarim com ID %d não encontrado", id)
	}
	if name == "" {
		return domain.Errorf(domain.KindValidation, "Nome do camarim não pode ser vazio")
	}
	if performerID < 0 {
		return domain.Errorf(domain.KindValidation, "ID do artista inválido")
	}

	d.Name = name
	d.PerformerID = performerID
	return nil
}

// List devolve cópias profundas de todos os camarins na ordem de cadastro.
func (uc *DressingRoomUseCase) List() []*entity.DressingRoom {
	out := make([]*entity.DressingRoom, 0, len(uc.rooms))
	for _, d := range uc.rooms {
		out = append(out, d.Clone())
	}
	return out
}
