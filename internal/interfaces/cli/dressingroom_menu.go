package cli

import "fmt"

func (s *Shell) dressingRoomMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Camarins ---\n"+
			"1. Cadastrar camarim\n"+
			"2. Listar camarins\n"+
			"3. Buscar por ID\n"+
			"4. Buscar por artista\n"+
			"5. Atualizar camarim\n"+
			"6. Remover camarim\n"+
			"7. Adicionar item ao camarim\n"+
			"8. Remover item do camarim\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			nome := s.readLine("Nome do camarim: ")
			artistaID := s.readInt("ID do artista (0 = nenhum): ")
			id, err := s.rooms.Create(nome, artistaID)
			if !s.report(err) {
				s.ok(fmt.Sprintf("Camarim cadastrado com ID %d!", id))
			}
		case 2:
			camarins := s.rooms.List()
			if len(camarins) == 0 {
				fmt.Fprintln(s.out, "\nNenhum camarim cadastrado.")
				continue
			}
			for _, d := range camarins {
				fmt.Fprintln(s.out, d.Display())
			}
		case 3:
			d := s.rooms.FindByID(s.readInt("ID do camarim: "))
			if d == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Camarim não encontrado!")
				continue
			}
			fmt.Fprintln(s.out, d.Display())
		case 4:
			d := s.rooms.FindByPerformer(s.readInt("ID do artista: "))
			if d == nil {
				fmt.Fprintln(s.out, "\nArtista não tem camarim associado.")
				continue
			}
			fmt.Fprintln(s.out, d.Display())
		case 5:
			id := s.readInt("ID do camarim: ")
			nome := s.readLine("Novo nome: ")
			artistaID := s.readInt("Novo artista (0 = nenhum): ")
			if !s.report(s.rooms.Update(id, nome, artistaID)) {
				s.ok("Camarim atualizado!")
			}
		case 6:
			if s.rooms.Remove(s.readInt("ID do camarim: ")) {
				s.ok("Camarim removido!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Camarim não encontrado!")
			}
		case 7:
			d := s.rooms.FindByID(s.readInt("ID do camarim: "))
			if d == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Camarim não encontrado!")
				continue
			}
			it := s.catalog.FindByID(s.readInt("ID do item (do catálogo): "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado no catálogo!")
				fmt.Fprintln(s.out, "Dica: cadastre o item no catálogo primeiro (Menu Itens).")
				continue
			}
			fmt.Fprintf(s.out, "Item selecionado: %s\n", it.Name)
			qtd := s.readInt("Quantidade: ")
			if !s.report(d.AddItem(it.ID, it.Name, qtd)) {
				s.ok("Item adicionado ao camarim!")
			}
		case 8:
			d := s.rooms.FindByID(s.readInt("ID do camarim: "))
			if d == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Camarim não encontrado!")
				continue
			}
			itemID := s.readInt("ID do item: ")
			qtd := s.readInt("Quantidade a remover: ")
			if !s.report(d.WithdrawItem(itemID, qtd)) {
				s.ok("Item removido do camarim!")
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}
