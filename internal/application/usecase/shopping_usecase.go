package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
	"github.com/showtech/camarim/pkg/logger"
)

// ShoppingUseCase gerencia as listas de compras e seus ledgers precificados.
type ShoppingUseCase struct {
	lists  []*entity.ShoppingList
	nextID int
	log    *logger.Logger
}

// NewShoppingUseCase constrói o gerenciador vazio.
func NewShoppingUseCase(log *logger.Logger) *ShoppingUseCase {
	return &ShoppingUseCase{nextID: 1, log: log}
}

// Create abre uma lista vazia com a descrição dada.
func (uc *ShoppingUseCase) Create(description string) (int, error) {
	if description == "" {
		return 0, domain.Errorf(domain.KindValidation, "Descrição não pode ser vazia")
	}

	l := entity.NewShoppingList(uc.nextID, description)
	uc.lists = append(uc.lists, l)
	uc.nextID++

	uc.log.Info().Int("lista_id", l.ID).Str("descricao", description).Msg("lista de compras criada")
	return l.ID, nil
}

// FindByID busca linear; devolve nil quando ausente.
func (uc *ShoppingUseCase) FindByID(id int) *entity.ShoppingList {
	for _, l := range uc.lists {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Remove apaga a lista inteira com todos os itens.
func (uc *ShoppingUseCase) Remove(id int) bool {
	for i, l := range uc.lists {
		if l.ID == id {
			uc.lists = append(uc.lists[:i], uc.lists[i+1:]...)
			uc.log.Info().Int("lista_id", id).Msg("lista de compras removida")
			return true
		}
	}
	return false
}

// Update sobrescreve a descrição; id ausente é falha.
func (uc *ShoppingUseCase) Update(id int, description string) error {
	l := uc.FindByID(id)
	if l == nil {
		return domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", id)
	}
	if description == "" {
		return domain.Errorf(domain.KindValidation, "Descrição não pode ser vazia")
	}

	l.Description = description
	return nil
}

// AddItem soma quantidade ao item da lista; o subtotal usa o preço desta
// chamada.
func (uc *ShoppingUseCase) AddItem(listID int, itemID int, name string, quantity int, unitPrice decimal.Decimal) error {
	l := uc.FindByID(listID)
	if l == nil {
		return domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", listID)
	}
	return l.AddItem(itemID, name, quantity, unitPrice)
}

// RemoveItem apaga o registro do item; ausência devolve false sem erro.
func (uc *ShoppingUseCase) RemoveItem(listID int, itemID int) (bool, error) {
	l := uc.FindByID(listID)
	if l == nil {
		return false, domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", listID)
	}
	return l.RemoveItem(itemID), nil
}

// UpdateQuantity substitui a quantidade (que deve seguir positiva) e
// recalcula o subtotal.
func (uc *ShoppingUseCase) UpdateQuantity(listID int, itemID int, quantity int) error {
	l := uc.FindByID(listID)
	if l == nil {
		return domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", listID)
	}
	return l.UpdateQuantity(itemID, quantity)
}

// Total soma os subtotais da lista.
func (uc *ShoppingUseCase) Total(listID int) (decimal.Decimal, error) {
	l := uc.FindByID(listID)
	if l == nil {
		return decimal.Zero, domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", listID)
	}
	return l.Total(), nil
}

// Clear esvazia a lista sem removê-la.
func (uc *ShoppingUseCase) Clear(listID int) error {
	l := uc.FindByID(listID)
	if l == nil {
		return domain.Errorf(domain.KindShoppingList, "Lista com ID %d não encontrada", listID)
	}
	l.Clear()
	return nil
}

// List devolve cópias profundas de todas as listas na ordem de criação.
func (uc *ShoppingUseCase) List() []*entity.ShoppingList {
	out := make([]*entity.ShoppingList, 0, len(uc.lists))
	for _, l := range uc.lists {
		out = append(out, l.Clone())
	}
	return out
}
