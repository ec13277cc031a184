package response

import "gestao_servicos/internal/domain/entities"

// ReceiptShareResponse is the link-based sharing payload: the share text and
// the deep link that opens it. Clients that cannot open the link share the
// text as-is.
type ReceiptShareResponse struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// ReceiptDisplayResponse exposes the display model for the visual receipt.
// Fields arrive pre-formatted; the client only lays them out.
type ReceiptDisplayResponse struct {
	Display entities.ReceiptDisplay `json:"display"`
}

func FromReceiptDisplay(d entities.ReceiptDisplay) ReceiptDisplayResponse {
	return ReceiptDisplayResponse{Display: d}
}
