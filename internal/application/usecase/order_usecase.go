package usecase

import (
	"github.com/showtech/camarim/internal/domain"
	"github.com/showtech/camarim/internal/domain/entity"
	"github.com/showtech/camarim/pkg/logger"
)

// OrderUseCase gerencia os pedidos de itens para camarins. As linhas de um
// pedido são uma visão contábil independente: nada aqui confere nem debita
// o estoque central — a transferência física, se desejada, é composta por
// quem chama (saída do estoque + entrada no camarim).
type OrderUseCase struct {
	orders []*entity.Order
	nextID int
	log    *logger.Logger
}

// NewOrderUseCase constrói o gerenciador vazio.
func NewOrderUseCase(log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{nextID: 1, log: log}
}

// Create abre um pedido pendente, ainda sem linhas.
func (uc *OrderUseCase) Create(dressingRoomID int, performerName string) (int, error) {
	if dressingRoomID < 0 {
		return 0, domain.Errorf(domain.KindValidation, "ID do camarim inválido")
	}
	if performerName == "" {
		return 0, domain.Errorf(domain.KindValidation, "Nome do artista não pode ser vazio")
	}

	o := entity.NewOrder(uc.nextID, dressingRoomID, performerName)
	uc.orders = append(uc.orders, o)
	uc.nextID++

	uc.log.Info().Int("pedido_id", o.ID).Int("camarim_id", dressingRoomID).Msg("pedido criado")
	return o.ID, nil
}

// FindByID busca linear; devolve nil quando ausente.
func (uc *OrderUseCase) FindByID(id int) *entity.Order {
	for _, o := range uc.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindByDressingRoom devolve cópias de todos os pedidos do camarim.
func (uc *OrderUseCase) FindByDressingRoom(dressingRoomID int) []*entity.Order {
	var out []*entity.Order
	for _, o := range uc.orders {
		if o.DressingRoomID == dressingRoomID {
			out = append(out, o.Clone())
		}
	}
	return out
}

// ListPending devolve cópias dos pedidos ainda não atendidos.
func (uc *OrderUseCase) ListPending() []*entity.Order {
	var out []*entity.Order
	for _, o := range uc.orders {
		if !o.Fulfilled() {
			out = append(out, o.Clone())
		}
	}
	return out
}

// AddLine soma quantidade a uma linha do pedido (pedido atendido é imutável).
func (uc *OrderUseCase) AddLine(orderID int, itemID int, name string, quantity int) error {
	o := uc.FindByID(orderID)
	if o == nil {
		return domain.Errorf(domain.KindOrder, "Pedido com ID %d não encontrado", orderID)
	}
	return o.AddLine(itemID, name, quantity)
}

// RemoveLine apaga uma linha inteira; linha ausente devolve false sem erro.
func (uc *OrderUseCase) RemoveLine(orderID int, itemID int) (bool, error) {
	o := uc.FindByID(orderID)
	if o == nil {
		return false, domain.Errorf(domain.KindOrder, "Pedido com ID %d não encontrado", orderID)
	}
	return o.RemoveLine(itemID)
}

// MarkFulfilled marca o pedido como atendido (idempotente). Não debita o
// estoque nem movimenta o camarim.
func (uc *OrderUseCase) MarkFulfilled(orderID int) error {
	o := uc.FindByID(orderID)
	if o == nil {
		return domain.Errorf(domain.KindOrder, "Pedido com ID %d não encontrado", orderID)
	}
	o.MarkFulfilled()
	uc.log.Info().Int("pedido_id", orderID).Msg("pedido marcado como atendido")
	return nil
}

// Remove apaga o pedido inteiro, atendido ou não.
func (uc *OrderUseCase) Remove(id int) bool {
	for i, o := range uc.orders {
		if o.ID == id {
			uc.orders = append(uc.orders[:i], uc.orders[i+1:]...)
			uc.log.Info().Int("pedido_id", id).Msg("pedido removido")
			return true
		}
	}
	return false
}

// List devolve cópias de todos os pedidos na ordem de criação.
func (uc *OrderUseCase) List() []*entity.Order {
	out := make([]*entity.Order, 0, len(uc.orders))
	for _, o := range uc.orders {
		out = append(out, o.Clone())
	}
	return out
}
