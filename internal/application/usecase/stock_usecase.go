package usecase

import (
	"github.com/showtech/camarim/internal/domain/ledger"
	"github.com/showtech/camarim/pkg/logger"
)

// StockUseCase gerencia o estoque central — o único ledger do sistema que
// não pertence a uma entidade. Quantidade representa presença física:
// registros colapsam ao chegar a zero.
type StockUseCase struct {
	stock *ledger.Ledger
	log   *logger.Logger
}

// NewStockUseCase constrói o gerenciador com estoque vazio.
func NewStockUseCase(log *logger.Logger) *StockUseCase {
	return &StockUseCase{stock: ledger.NewStock(), log: log}
}

// Add dá entrada de quantidade (soma se o item já existe). Entrada de zero é
// aceita como no-op.
func (uc *StockUseCase) Add(itemID int, name string, quantity int) error {
	if err := uc.stock.Upsert(itemID, name, quantity); err != nil {
		return err
	}
	uc.log.Debug().Int("item_id", itemID).Int("quantidade", quantity).Msg("entrada de estoque")
	return nil
}

// Withdraw dá saída de quantidade; saldo que chega a zero remove o registro.
func (uc *StockUseCase) Withdraw(itemID int, quantity int) error {
	if err := uc.stock.Withdraw(itemID, quantity); err != nil {
		return err
	}
	uc.log.Debug().Int("item_id", itemID).Int("quantidade", quantity).Msg("saída de estoque")
	return nil
}

// SetQuantity substitui o saldo (zero colapsa o registro).
func (uc *StockUseCase) SetQuantity(itemID int, quantity int) error {
	return uc.stock.SetQuantity(itemID, quantity)
}

// CheckAvailability informa se há saldo suficiente; nunca falha.
func (uc *StockUseCase) CheckAvailability(itemID int, quantity int) bool {
	return uc.stock.CheckAvailability(itemID, quantity)
}

// Quantity devolve o saldo atual (zero quando ausente).
func (uc *StockUseCase) Quantity(itemID int) int {
	return uc.stock.Quantity(itemID)
}

// List devolve uma cópia dos registros em ordem de itemId.
func (uc *StockUseCase) List() []ledger.Entry {
	return uc.stock.List()
}
