package entity

// Displayable é a capacidade de uma entidade de se apresentar como texto
// formatado para o shell interativo. O conjunto de implementações é fechado:
// Item, Performer, DressingRoom, Order e ShoppingList.
type Displayable interface {
	Display() string
}
