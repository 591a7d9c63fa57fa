package entity

import "fmt"

// Performer é um artista cadastrado. DressingRoomID referencia o camarim
// associado; zero significa sem camarim.
type Performer struct {
	ID             int
	Name           string
	DressingRoomID int
}

func (p Performer) Display() string {
	camarim := "nenhum"
	if p.DressingRoomID > 0 {
		camarim = fmt.Sprintf("%d", p.DressingRoomID)
	}
	return fmt.Sprintf("[ID: %d, Nome: %s, Camarim: %s]", p.ID, p.Name, camarim)
}
