// Package usecase contém os gerenciadores do sistema: um por domínio, cada
// um dono exclusivo da sua coleção em memória e do contador de ids. Nada
// persiste entre execuções; cada processo parte de coleções vazias com os
// contadores em 1.
package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
	"github.com/showtech/camarim/pkg/logger"
)

// CatalogUseCase gerencia o catálogo de itens compráveis. O nome é único
// (comparação exata, sensível a maiúsculas); o id é atribuído em sequência
// e nunca reaproveitado.
type CatalogUseCase struct {
	items  []*entity.Item
	nextID int
	log    *logger.Logger
}

// NewCatalogUseCase constrói o gerenciador vazio.
func NewCatalogUseCase(log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{nextID: 1, log: log}
}

// Register valida, garante unicidade de nome e cadastra, devolvendo o id.
func (uc *CatalogUseCase) Register(name string, price decimal.Decimal) (int, error) {
	if name == "" {
		return 0, domain.Errorf(domain.KindValidation, "Nome do item não pode ser vazio")
	}
	if price.IsNegative() {
		return 0, domain.Errorf(domain.KindValidation, "Preço do item não pode ser negativo")
	}
	if uc.FindByName(name) != nil {
		return 0, domain.Errorf(domain.KindItem, "Item já existe com este nome: %s", name)
	}

	it := &entity.Item{ID: uc.nextID, Name: name, Price: price}
	uc.items = append(uc.items, it)
	uc.nextID++

	uc.log.Info().Int("item_id", it.ID).Str("nome", name).Msg("item cadastrado no catálogo")
	return it.ID, nil
}

// FindByID busca linear por id. Ausência é resultado válido: devolve nil,
// nunca falha.
func (uc *CatalogUseCase) FindByID(id int) *entity.Item {
	for _, it := range uc.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// FindByName busca linear pelo nome exato.
func (uc *CatalogUseCase) FindByName(name string) *entity.Item {
	for _, it := range uc.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Remove apaga o item do catálogo. Registros de ledger que copiaram nome e
// preço por valor não são afetados (sem cascata).
func (uc *CatalogUseCase) Remove(id int) bool {
	for i, it := range uc.items {
		if it.ID == id {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			uc.log.Info().Int("item_id", id).Msg("item removido do catálogo")
			return true
		}
	}
	return false
}

// Update sobrescreve nome e preço. Id ausente é falha (diferente de Remove,
// que devolve bool); o novo nome não pode colidir com um item de outro id.
func (uc *CatalogUseCase) Update(id int, name string, price decimal.Decimal) error {
	it := uc.FindByID(id)
	if it == nil {
		return domain.Errorf(domain.KindItem, "Item com ID %d não encontrado", id)
	}
	if outro := uc.FindByName(name); outro != nil && outro.ID != id {
		return domain.Errorf(domain.KindItem, "Já existe outro item com este nome: %s", name)
	}
	if name == "" {
		return domain.Errorf(domain.KindValidation, "Nome do item não pode ser vazio")
	}
	if price.IsNegative() {
		return domain.Errorf(domain.KindValidation, "Preço do item não pode ser negativo")
	}

	it.Name = name
	it.Price = price
	return nil
}

// List devolve uma cópia de todos os itens na ordem de cadastro.
func (uc *CatalogUseCase) List() []entity.Item {
	out := make([]entity.Item, 0, len(uc.items))
	for _, it := range uc.items {
		out = append(out, *it)
	}
	return out
}
