package cli

import "fmt"

func (s *Shell) orderMenu() {
	for {
		fmt.Fprint(s.out, "\n--- Pedidos ---\n"+
			"1. Criar pedido\n"+
			"2. Listar pedidos\n"+
			"3. Listar pedidos pendentes\n"+
			"4. Buscar por camarim\n"+
			"5. Adicionar item ao pedido\n"+
			"6. Remover item do pedido\n"+
			"7. Marcar pedido como atendido\n"+
			"8. Entregar itens do pedido\n"+
			"9. Remover pedido\n"+
			"0. Voltar\n")
		switch s.readInt("Opção: ") {
		case 1:
			camarimID := s.readInt("ID do camarim: ")
			artista := s.readLine("Nome do artista: ")
			id, err := s.orders.Create(camarimID, artista)
			if !s.report(err) {
				s.ok(fmt.Sprintf("Pedido criado com ID %d!", id))
			}
		case 2:
			pedidos := s.orders.List()
			if len(pedidos) == 0 {
				fmt.Fprintln(s.out, "\nNenhum pedido cadastrado.")
				continue
			}
			for _, o := range pedidos {
				fmt.Fprintln(s.out, o.Display())
			}
		case 3:
			pendentes := s.orders.ListPending()
			if len(pendentes) == 0 {
				fmt.Fprintln(s.out, "\nNenhum pedido pendente.")
				continue
			}
			for _, o := range pendentes {
				fmt.Fprintln(s.out, o.Display())
			}
		case 4:
			pedidos := s.orders.FindByDressingRoom(s.readInt("ID do camarim: "))
			if len(pedidos) == 0 {
				fmt.Fprintln(s.out, "\nNenhum pedido para este camarim.")
				continue
			}
			for _, o := range pedidos {
				fmt.Fprintln(s.out, o.Display())
			}
		case 5:
			pedidoID := s.readInt("ID do pedido: ")
			it := s.catalog.FindByID(s.readInt("ID do item (do catálogo): "))
			if it == nil {
				fmt.Fprintln(s.out, "\n[ERRO] Item não encontrado no catálogo!")
				fmt.Fprintln(s.out, "Dica: cadastre o item no catálogo primeiro (Menu Itens).")
				continue
			}
			fmt.Fprintf(s.out, "Item selecionado: %s\n", it.Name)
			qtd := s.readInt("Quantidade: ")
			if !s.report(s.orders.AddLine(pedidoID, it.ID, it.Name, qtd)) {
				s.ok("Item adicionado ao pedido!")
			}
		case 6:
			pedidoID := s.readInt("ID do pedido: ")
			itemID := s.readInt("ID do item: ")
			removido, err := s.orders.RemoveLine(pedidoID, itemID)
			if s.report(err) {
				continue
			}
			if removido {
				s.ok("Item removido do pedido!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Item não está no pedido!")
			}
		case 7:
			if !s.report(s.orders.MarkFulfilled(s.readInt("ID do pedido: "))) {
				s.ok("Pedido marcado como atendido!")
			}
		case 8:
			s.deliverOrder()
		case 9:
			if s.orders.Remove(s.readInt("ID do pedido: ")) {
				s.ok("Pedido removido!")
			} else {
				fmt.Fprintln(s.out, "\n[ERRO] Pedido não encontrado!")
			}
		case 0:
			return
		default:
			fmt.Fprintln(s.out, "[ERRO] Opção inválida!")
		}
	}
}

// deliverOrder compõe o fluxo físico que o gerenciador de pedidos não faz por
// conta própria: confere o saldo de todas as linhas, debita o estoque central,
// credita o camarim do pedido e só então marca o pedido como atendido. A
// conferência prévia evita entregas parciais quando uma linha não tem saldo.
func (s *Shell) deliverOrder() {
	pedido := s.orders.FindByID(s.readInt("ID do pedido: "))
	if pedido == nil {
		fmt.Fprintln(s.out, "\n[ERRO] Pedido não encontrado!")
		return
	}
	if pedido.Fulfilled() {
		fmt.Fprintln(s.out, "\n[ERRO] Pedido já foi atendido!")
		return
	}
	camarim := s.rooms.FindByID(pedido.DressingRoomID)
	if camarim == nil {
		fmt.Fprintln(s.out, "\n[ERRO] Camarim do pedido não encontrado!")
		return
	}
	linhas := pedido.Lines()
	if len(linhas) == 0 {
		fmt.Fprintln(s.out, "\n[ERRO] Pedido não tem itens!")
		return
	}

	for _, l := range linhas {
		if !s.stock.CheckAvailability(l.ItemID, l.Quantity) {
			fmt.Fprintf(s.out, "\n[ERRO] Estoque insuficiente para %s (ID: %d). Disponível: %d, Solicitado: %d\n",
				l.Name, l.ItemID, s.stock.Quantity(l.ItemID), l.Quantity)
			return
		}
	}

	for _, l := range linhas {
		if s.report(s.stock.Withdraw(l.ItemID, l.Quantity)) {
			return
		}
		if s.report(camarim.AddItem(l.ItemID, l.Name, l.Quantity)) {
			return
		}
		fmt.Fprintf(s.out, "  Entregue: %s x%d\n", l.Name, l.Quantity)
	}
	if s.report(s.orders.MarkFulfilled(pedido.ID)) {
		return
	}
	s.ok("Pedido entregue e marcado como atendido!")
}
