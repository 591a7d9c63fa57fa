package cli

import (
	"fmt"

	"github.com/showtech/camarim/pkg/money"
)

func (s *Shell) shoppingMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Listas de Compras ---\n"+
			"1. Criar lista\n"+
			"2. Listar listas\n"+
			"3. Buscar por ID\n"+
			"4. Atualizar descrição\n"+
			"5. Adicionar item à lista\n"+
			"6. Remover item da lista\n"+
			"7. Atualizar quantidade de item\n"+
			"8. Total da lista\n"+
			"9. Limpar lista\n"+
			"10. Remover lista\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			descricao := s.readLine("Descrição da lista: ")
			id, err := s.shopping.Create(descricao)
			if !s.report(err) {
				s.ok(fmt.Sprintf("Lista criada com ID %d!", id))
			}
		case 2:
			listas := s.shopping.List()
			if len(listas) == 0 {
				fmt.Fprintln(s.out, "\nNenhuma lista cadastrada.")
				continue
			}
			for _, l := range listas {
				fmt.Fprintln(s.out, l.Display())
			}
		case 3:
			l := s.shopping.FindByID(s.readInt("ID da lista: "))
			if l == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Lista não encontrada!")
				continue
			}
			fmt.Fprintln(s.out, l.Display())
		case 4:
			id := s.readInt("ID da lista: ")
			descricao := s.readLine("Nova descrição: ")
			if !s.report(s.shopping.Update(id, descricao)) {
				s.ok("Descrição atualizada!")
			}
		case 5:
			listaID := s.readInt("ID da lista: ")
			it := s.catalog.FindByID(s.readInt("ID do item (do catálogo): "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado no catálogo!")
				fmt.Fprintln(s.out, "Dica: cadastre o item no catálogo primeiro (Menu Itens).")
				continue
			}
			fmt.Fprintf(s.out, "Item selecionado: %s (preço no catálogo: %s)\n", it.Name, money.BRL(it.Price))
			qtd := s.readInt("Quantidade: ")
			preco := s.readMoney("Preço unitário de compra: ")
			if !s.report(s.shopping.AddItem(listaID, it.ID, it.Name, qtd, preco)) {
				s.ok("Item adicionado à lista!")
			}
		case 6:
			listaID := s.readInt("ID da lista: ")
			itemID := s.readInt("ID do item: ")
			removido, err := s.shopping.RemoveItem(listaID, itemID)
			if s.report(err) {
				continue
			}
			if removido {
				s.ok("Item removido da lista!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Item não está na lista!")
			}
		case 7:
			listaID := s.readInt("ID da lista: ")
			itemID := s.readInt("ID do item: ")
			qtd := s.readInt("Nova quantidade: ")
			if !s.report(s.shopping.UpdateQuantity(listaID, itemID, qtd)) {
				s.ok("Quantidade atualizada!")
			}
		case 8:
			total, err := s.shopping.Total(s.readInt("ID da lista: "))
			if !s.report(err) {
				fmt.Fprintf(s.out, "\nTotal da lista: %s\n", money.BRL(total))
			}
		case 9:
			if !s.report(s.shopping.Clear(s.readInt("ID da lista: "))) {
				s.ok("Lista esvaziada!")
			}
		case 10:
			if s.shopping.Remove(s.readInt("ID da lista: ")) {
				s.ok("Lista removida!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Lista não encontrada!")
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}
