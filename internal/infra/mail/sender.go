package mail

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"
)

const defaultSubject = "Following up"

var draftTemplate = template.Must(template.New("draft").Parse(
	`{{.Body}}
{{if .Signature}}
--
{{.Signature}}
{{end}}`))

func NewDraftSender(host string, port int, user, password, from string) *DraftSender {
	return &DraftSender{
		From:   from,
		Dialer: gomail.NewDialer(host, port, user, password),
	}
}

// SendDraft envia o rascunho gerado pela IA. A primeira linha "Subject: ..."
// vira o assunto; o resto é o corpo.
func (s *DraftSender) SendDraft(ctx context.Context, to, name, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("lead %q has no e-mail address", name)
	}

	subject, body := SplitSubject(text)

	var rendered bytes.Buffer
	if err := draftTemplate.Execute(&rendered, DraftEmailData{
		Name:      name,
		Body:      body,
		Signature: s.Signature,
	}); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	if name != "" {
		m.SetAddressHeader("To", to, name)
	} else {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", rendered.String())

	if err := s.Dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

// SplitSubject separa a linha "Subject:" do corpo do rascunho.
func SplitSubject(text string) (string, string) {
	text = strings.TrimLeft(text, "\r\n")
	first, rest, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)

	const prefix = "subject:"
	if len(first) < len(prefix) || !strings.EqualFold(first[:len(prefix)], prefix) {
		return defaultSubject, text
	}

	subject := strings.TrimSpace(first[len(prefix):])
	if subject == "" {
		subject = defaultSubject
	}
	return subject, strings.TrimLeft(rest, "\r\n")
}
