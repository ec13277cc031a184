package share

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppChannel_Link(t *testing.T) {
	channel := NewWhatsAppChannel()

	t.Run("escapes text", func(t *testing.T) {
		link := channel.Link("🔧 *COMPROVANTE DE SERVIÇO*\nCliente: Maria & João")
		if !strings.HasPrefix(link, "https://wa.me/?text=") {
			t.Fatalf("unexpected link prefix %q", link)
		}
		if strings.ContainsAny(link, " \n") {
			t.Fatalf("link not escaped: %q", link)
		}

		parsed, err := url.Parse(link)
		if err != nil {
			t.Fatalf("parse link: %v", err)
		}
		got := parsed.Query().Get("text")
		if got != "🔧 *COMPROVANTE DE SERVIÇO*\nCliente: Maria & João" {
			t.Fatalf("round-trip mismatch: %q", got)
		}
	})

	t.Run("empty text still yields a valid link", func(t *testing.T) {
		if link := channel.Link(""); link != "https://wa.me/?text=" {
			t.Fatalf("unexpected link %q", link)
		}
	})
}
