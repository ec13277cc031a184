package interfaces

// IShareChannel turns a receipt share text into a link the client device can
// open (a wa.me deep link in production). Building the link never fails; a
// device that cannot open it falls back to sharing the plain text.
type IShareChannel interface {
	Link(text string) string
}
