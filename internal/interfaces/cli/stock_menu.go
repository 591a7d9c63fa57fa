package cli

import "fmt"

func (s *Shell) stockMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Estoque ---\n"+
			"1. Entrada de item\n"+
			"2. Saída de item\n"+
			"3. Listar estoque\n"+
			"4. Atualizar quantidade\n"+
			"5. Verificar disponibilidade\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			// a entrada referencia o catálogo para copiar o nome por valor
			it := s.catalog.FindByID(s.readInt("ID do item (do catálogo): "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado no catálogo!")
				fmt.Fprintln(s.out, "Dica: cadastre o item no catálogo primeiro (Menu Itens).")
				continue
			}
			fmt.Fprintf(s.out, "Item selecionado: %s\n", it.Name)
			qtd := s.readInt("Quantidade: ")
			if !s.report(s.stock.Add(it.ID, it.Name, qtd)) {
				s.ok("Entrada registrada!")
			}
		case 2:
			id := s.readInt("ID do item: ")
			qtd := s.readInt("Quantidade: ")
			if !s.report(s.stock.Withdraw(id, qtd)) {
				s.ok("Saída registrada!")
			}
		case 3:
			registros := s.stock.List()
			if len(registros) == 0 {
				fmt.Fprintln(s.out, "\nEstoque vazio.")
				continue
			}
			fmt.Fprintln(s.out, "\n=== ESTOQUE ===")
			fmt.Fprintf(s.out, "%-5s %-30s %s\n", "ID", "Nome", "Quantidade")
			for _, e := range registros {
				fmt.Fprintf(s.out, "%-5d %-30s %d\n", e.ItemID, e.Name, e.Quantity)
			}
		case 4:
			id := s.readInt("ID do item: ")
			qtd := s.readInt("Nova quantidade (0 remove o registro): ")
			if !s.report(s.stock.SetQuantity(id, qtd)) {
				s.ok("Quantidade atualizada!")
			}
		case 5:
			id := s.readInt("ID do item: ")
			qtd := s.readInt("Quantidade desejada: ")
			if s.stock.CheckAvailability(id, qtd) {
				fmt.Fprintf(s.out, "\nDisponível (saldo atual: %d)\n", s.stock.Quantity(id))
			} else {
				fmt.Fprintf(s.out, "\nIndisponível (saldo atual: %d)\n", s.stock.Quantity(id))
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}
