package domain

import (
	"errors"
	"fmt"
)

// Kind identifica a categoria de uma falha de domínio. A hierarquia tem três
// níveis: ErrDomain (qualquer falha) → categoria (ErrStock, ErrOrder, ...) →
// especialização (ErrStockInsufficient). A comparação é feita com errors.Is
// em qualquer um dos níveis.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindPerformer
	KindItem
	KindStock
	KindStockInsufficient
	KindDressingRoom
	KindOrder
	KindShoppingList
)

// Sentinelas para errors.Is. ErrDomain casa com toda falha de domínio;
// ErrStock casa também com ErrStockInsufficient (especialização).
var (
	ErrDomain            = errors.New("falha de domínio")
	ErrValidation        = errors.New("erro de validação")
	ErrPerformer         = errors.New("erro com artista")
	ErrItem              = errors.New("erro com item")
	ErrStock             = errors.New("erro de estoque")
	ErrStockInsufficient = errors.New("estoque insuficiente")
	ErrDressingRoom      = errors.New("erro com camarim")
	ErrOrder             = errors.New("erro com pedido")
	ErrShoppingList      = errors.New("erro com lista de compras")
)

// Prefixos fixos das mensagens, preservados do sistema original.
// A especialização de estoque encadeia o prefixo da categoria.
var prefixes = map[Kind]string{
	KindValidation:        "Erro de Validação: ",
	KindPerformer:         "Erro com Artista: ",
	KindItem:              "Erro com Item: ",
	KindStock:             "Erro de Estoque: ",
	KindStockInsufficient: "Erro de Estoque: Estoque insuficiente: ",
	KindDressingRoom:      "Erro com Camarim: ",
	KindOrder:             "Erro com Pedido: ",
	KindShoppingList:      "Erro com Lista de Compras: ",
}

var sentinels = map[Kind]error{
	KindValidation:        ErrValidation,
	KindPerformer:         ErrPerformer,
	KindItem:              ErrItem,
	KindStock:             ErrStock,
	KindStockInsufficient: ErrStockInsufficient,
	KindDressingRoom:      ErrDressingRoom,
	KindOrder:             ErrOrder,
	KindShoppingList:      ErrShoppingList,
}

// Error é uma falha de domínio com categoria inspecionável. A mensagem
// visível ao usuário leva o prefixo fixo da categoria; quem precisa reagir
// à categoria usa errors.Is, nunca a string.
type Error struct {
	Kind   Kind
	Detail string
}

// Errorf constrói uma falha de domínio da categoria dada.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return prefixes[e.Kind] + e.Detail
}

// Is permite casar a falha em qualquer nível da hierarquia.
func (e *Error) Is(target error) bool {
	if target == ErrDomain || target == sentinels[e.Kind] {
		return true
	}
	// a especialização também casa com a sua categoria
	return e.Kind == KindStockInsufficient && target == ErrStock
}
