package usecase

import (
	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
	"github.com/showtech/camarim/pkg/logger"
)

// PerformerUseCase gerencia o cadastro de artistas.
type PerformerUseCase struct {
	performers []*entity.Performer
	nextID     int
	log        *logger.Logger
}

// NewPerformerUseCase constrói o gerenciador vazio.
func NewPerformerUseCase(log *logger.Logger) *PerformerUseCase {
	return &PerformerUseCase{nextID: 1, log: log}
}

// Create cadastra um artista. dressingRoomID zero significa sem camarim.
func (uc *PerformerUseCase) Create(name string, dressingRoomID int) (int, error) {
	if name == "" {
		return 0, domain.Errorf(domain.KindValidation, "Nome do artista não pode ser vazio")
	}
	if dressingRoomID < 0 {
		return 0, domain.Errorf(domain.KindValidation, "ID do camarim inválido")
	}

	p := &entity.Performer{ID: uc.nextID, Name: name, DressingRoomID: dressingRoomID}
	uc.performers = append(uc.performers, p)
	uc.nextID++

	uc.log.Info().Int("artista_id", p.ID).Str("nome", name).Msg("artista cadastrado")
	return p.ID, nil
}

// FindByID busca linear; devolve nil quando ausente.
func (uc *PerformerUseCase) FindByID(id int) *entity.Performer {
	for _, p := range uc.performers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindAllByDressingRoom devolve todos os artistas associados ao camarim.
func (uc *PerformerUseCase) FindAllByDressingRoom(dressingRoomID int) []entity.Performer {
	var out []entity.Performer
	for _, p := range uc.performers {
		if p.DressingRoomID == dressingRoomID {
			out = append(out, *p)
		}
	}
	return out
}

// Remove apaga o artista; não há cascata sobre o camarim associado.
func (uc *PerformerUseCase) Remove(id int) bool {
	for i, p := range uc.performers {
		if p.ID == id {
			uc.performers = append(uc.performers[:i], uc.performers[i+1:]...)
			uc.log.Info().Int("artista_id", id).Msg("artista removido")
			return true
		}
	}
	return false
}

// Update sobrescreve nome e camarim; id ausente é falha.
func (uc *PerformerUseCase) Update(id int, name string, dressingRoomID int) error {
	p := uc.FindByID(id)
	if p == nil {
		return domain.Errorf(domain.KindPerformer, "Artista com ID %d não encontrado", id)
	}
	if name == "" {
		return domain.Errorf(domain.KindValidation, "Nome do artista não pode ser vazio")
	}
	if dressingRoomID < 0 {
		return domain.Errorf(domain.KindValidation, "ID do camarim inválido")
	}

	p.Name = name
	p.DressingRoomID = dressingRoomID
	return nil
}

// List devolve uma cópia de todos os artistas na ordem de cadastro.
func (uc *PerformerUseCase) List() []entity.Performer {
	out := make([]entity.Performer, 0, len(uc.performers))
	for _, p := range uc.performers {
		out = append(out, *p)
	}
	return out
}
