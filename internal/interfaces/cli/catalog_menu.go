package cli

import "fmt"

func (s *Shell) catalogMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Itens (catálogo) ---\n"+
			"1. Cadastrar item\n"+
			"2. Listar itens\n"+
			"3. Buscar por ID\n"+
			"4. Buscar por nome\n"+
			"5. Atualizar item\n"+
			"6. Remover item\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			nome := s.readLine("Nome do item: ")
			preco := s.readMoney("Preço (ex.: 12,50): ")
			id, err := s.catalog.Register(nome, preco)
			if !s.report(err) {
				s.ok(fmt.Sprintf("Item cadastrado com ID %d!", id))
			}
		case 2:
			itens := s.catalog.List()
			if len(itens) == 0 {
				fmt.Fprintln(s.out, "\nNenhum item cadastrado.")
				continue
			}
			fmt.Fprintln(s.out, "\n=== CATÁLOGO ===")
			for _, it := range itens {
				fmt.Fprintln(s.out, it.Display())
			}
		case 3:
			it := s.catalog.FindByID(s.readInt("ID do item: "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado!")
				continue
			}
			fmt.Fprintln(s.out, it.Display())
		case 4:
			it := s.catalog.FindByName(s.readLine("Nome do item: "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado!")
				continue
			}
			fmt.Fprintln(s.out, it.Display())
		case 5:
			id := s.readInt("ID do item: ")
			nome := s.readLine("Novo nome: ")
			preco := s.readMoney("Novo preço: ")
			if !s.report(s.catalog.Update(id, nome, preco)) {
				s.ok("Item atualizado!")
			}
		case 6:
			if s.catalog.Remove(s.readInt("ID do item: ")) {
				s.ok("Item removido!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado!")
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}
