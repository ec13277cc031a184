package share

import (
	"net/url"

	"gestao_servicos/internal/usecase/interfaces"
)

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppChannel builds wa.me deep links that open WhatsApp with the text
// pre-filled. No recipient is set; the user picks the contact.

type WhatsAppChannel struct{}

var _ interfaces.IShareChannel = (*WhatsAppChannel)(nil)

func NewWhatsAppChannel() *WhatsAppChannel {
	return &WhatsAppChannel{}
}

func (c *WhatsAppChannel) Link(text string) string {
	return whatsAppBaseURL + "?text=" + url.QueryEscape(text)
}
