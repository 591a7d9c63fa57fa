package cli

import "fmt"

func (s *Shell) performerMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Artistas ---\n"+
			"1. Cadastrar artista\n"+
			"2. Listar artistas\n"+
			"3. Buscar por ID\n"+
			"4. Buscar por camarim\n"+
			"5. Atualizar artista\n"+
			"6. Remover artista\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			nome := s.readLine("Nome do artista: ")
			camarimID := s.readInt("ID do camarim (0 = nenhum): ")
			id, err := s.performers.Create(nome, camarimID)
			if !s.report(err) {
				s.ok(fmt.Sprintf("Artista cadastrado com ID %d!", id))
			}
		case 2:
			artistas := s.performers.List()
			if len(artistas) == 0 {
				fmt.Fprintln(s.out, "\nNenhum artista cadastrado.")
				continue
			}
			fmt.Fprintln(s.out, "\n=== ARTISTAS ===")
			for _, p := range artistas {
				fmt.Fprintln(s.out, p.Display())
			}
		case 3:
			p := s.performers.FindByID(s.readInt("ID do artista: "))
			if p == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Artista não encontrado!")
				continue
			}
			fmt.Fprintln(s.out, p.Display())
		case 4:
			artistas := s.performers.FindAllByDressingRoom(s.readInt("ID do camarim: "))
			if len(artistas) == 0 {
				fmt.Fprintln(s.out, "\nNenhum artista neste camarim.")
				continue
			}
			for _, p := range artistas {
				fmt.Fprintln(s.out, p.Display())
			}
		case 5:
			id := s.readInt("ID do artista: ")
			nome := s.readLine("Novo nome: ")
			camarimID := s.readInt("Novo camarim (0 = nenhum): ")
			if !s.report(s.performers.Update(id, nome, camarimID)) {
				s.ok("Artista atualizado!")
			}
		case 6:
			if s.performers.Remove(s.readInt("ID do artista: ")) {
				s.ok("Artista removido!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Artista não encontrado!")
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}
