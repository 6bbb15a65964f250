package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English text doubles as the key; English output is the key
// itself, other languages are looked up in the catalog.
const (
	msgBanner        = "=== NEXT PIECE MANAGER ==="
	msgFilling       = "Filling the queue with %d pieces..."
	msgMenuRule      = "------------------------------"
	msgMenuPlay      = "1 | Play the front piece"
	msgMenuReserve   = "2 | Reserve the front piece"
	msgMenuUse       = "3 | Use the reserved piece"
	msgMenuSwapTop   = "4 | Swap the front piece with the reserve top"
	msgMenuSwapBlock = "5 | Swap the first %d queue pieces with the %d reserve pieces"
	msgMenuQuit      = "0 | Quit"
	msgPrompt        = "Choice: "
	msgNewState      = "NEW STATE:"
	msgQuit          = "Quitting. Bye!"

	msgQueue   = "Queue (%d/%d): "
	msgReserve = "Reserve (top -> bottom) (%d/%d): "
	msgEmpty   = "[EMPTY]"

	msgPlayed    = "Played %s."
	msgReserved  = "Reserved %s (queue front -> reserve top)."
	msgUsed      = "Used reserved piece %s."
	msgSwapped   = "Swapped %s (queue) with %s (reserve)."
	msgBlock     = "Block swap of %d pieces done."
	msgGenerated = "Generated %s at the back of the queue."

	msgErrQueueEmpty      = "ERROR: the queue is empty."
	msgErrReserveEmpty    = "ERROR: the reserve is empty."
	msgErrReserveFull     = "ERROR: the reserve is full (%d/%d)."
	msgErrReserveNotFull  = "ERROR: the reserve must be full (%d pieces) for a block swap."
	msgErrQueueShort      = "ERROR: the queue needs at least %d pieces for a block swap (has %d)."
	msgErrInvalidSelected = "INVALID OPTION! Please pick an option from the menu."
)

// portuguese holds the Brazilian Portuguese catalog entries.
var portuguese = map[string]string{
	msgBanner:        "=== GERENCIADOR DE PEÇAS ===",
	msgFilling:       "Preenchendo a fila com %d peças...",
	msgMenuPlay:      "1 | Jogar peça da frente da fila",
	msgMenuReserve:   "2 | Enviar peça da fila para a pilha de reserva",
	msgMenuUse:       "3 | Usar peça da pilha de reserva",
	msgMenuSwapTop:   "4 | Trocar peça da frente da fila com o topo da pilha",
	msgMenuSwapBlock: "5 | Trocar os %d primeiros da fila com as %d peças da pilha",
	msgMenuQuit:      "0 | Sair",
	msgPrompt:        "Opção escolhida: ",
	msgNewState:      "NOVO ESTADO:",
	msgQuit:          "Saindo. Até logo!",

	msgQueue:   "Fila de peças (%d/%d): ",
	msgReserve: "Pilha de reserva (Topo -> Base) (%d/%d): ",
	msgEmpty:   "[VAZIA]",

	msgPlayed:    "Peça jogada: %s.",
	msgReserved:  "Peça %s movida da fila para o topo da pilha.",
	msgUsed:      "Peça %s usada (removida do topo da pilha).",
	msgSwapped:   "Troca realizada: %s (fila) com %s (pilha).",
	msgBlock:     "Troca em bloco de %d peças realizada.",
	msgGenerated: "Peça gerada: %s inserida no final da fila.",

	msgErrQueueEmpty:      "ERRO: a fila está vazia.",
	msgErrReserveEmpty:    "ERRO: a pilha de reserva está vazia.",
	msgErrReserveFull:     "ERRO: a pilha de reserva está cheia (%d/%d).",
	msgErrReserveNotFull:  "ERRO: a pilha de reserva deve estar cheia (%d peças) para a troca em bloco.",
	msgErrQueueShort:      "ERRO: a fila deve ter pelo menos %d peças para a troca em bloco (atualmente: %d).",
	msgErrInvalidSelected: "OPÇÃO INVÁLIDA! Escolha uma opção do menu.",
}

// messages is the shared catalog for every supported language.
var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range portuguese {
		if err := b.SetString(language.BrazilianPortuguese, key, msg); err != nil {
			panic("console: invalid catalog entry " + key + ": " + err.Error())
		}
	}
	return b
}

// NewPrinter returns a printer for tag backed by the console catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
