package mail

import "gopkg.in/gomail.v2"

type DraftEmailData struct {
	Name      string
	Body      string
	Signature string
}

// MessageDialer é satisfeito por *gomail.Dialer.
type MessageDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type DraftSender struct {
	From      string
	Signature string
	Dialer    MessageDialer
}
