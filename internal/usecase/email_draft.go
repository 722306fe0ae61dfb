package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

var ErrDraftNotReady = errors.New("no draft ready")

type DraftPhase string

const (
	DraftIdle       DraftPhase = "idle"
	DraftRequesting DraftPhase = "requesting"
	DraftReady      DraftPhase = "ready"
	DraftFailed     DraftPhase = "failed"
)

const (
	DraftPlaceholder      = "Generating AI draft..."
	DraftErrorPlaceholder = "Error generating email."
)

// DraftGenerator é o serviço que redige o e-mail (GET /leads/{id}/email).
type DraftGenerator interface {
	GenerateEmail(ctx context.Context, leadID string) (string, error)
}

type Clipboard interface {
	Copy(text string) error
}

type DraftMailer interface {
	SendDraft(ctx context.Context, to, name, text string) error
}

// DraftState é o que a camada de apresentação renderiza.
type DraftState struct {
	Phase     DraftPhase `json:"phase"`
	LeadID    string     `json:"lead_id,omitempty"`
	LeadName  string     `json:"lead_name,omitempty"`
	LeadEmail string     `json:"lead_email,omitempty"`
	Text      string     `json:"text,omitempty"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EmailDraftOrchestrator conduz um único ciclo de rascunho por vez.
// A última requisição vence: respostas de ciclos substituídos ou
// descartados são ignoradas.
type EmailDraftOrchestrator struct {
	Generator DraftGenerator
	OnSettle  func(DraftState)

	mu         sync.Mutex
	state      DraftState
	generation uint64
}

func NewEmailDraftOrchestrator(generator DraftGenerator) *EmailDraftOrchestrator {
	return &EmailDraftOrchestrator{
		Generator: generator,
		state:     DraftState{Phase: DraftIdle, UpdatedAt: time.Now()},
	}
}

// Request entra em Requesting na hora, com o placeholder, e dispara a
// geração em background. Devolve o estado instalado e um canal que fecha
// quando o resultado foi aplicado ou descartado. A chamada de rede nunca é
// cancelada aqui.
func (o *EmailDraftOrchestrator) Request(ctx context.Context, lead entity.Lead) (DraftState, <-chan struct{}) {
	o.mu.Lock()
	o.generation++
	gen := o.generation
	o.state = DraftState{
		Phase:     DraftRequesting,
		LeadID:    lead.ID,
		LeadName:  lead.Name,
		LeadEmail: lead.Email,
		Text:      DraftPlaceholder,
		UpdatedAt: time.Now(),
	}
	installed := o.state
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		text, err := o.Generator.GenerateEmail(ctx, lead.ID)
		o.settle(gen, lead, text, err)
	}()
	return installed, done
}

func (o *EmailDraftOrchestrator) settle(gen uint64, lead entity.Lead, text string, err error) {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		log.Printf("Draft: resposta atrasada do lead %s descartada", lead.ID)
		return
	}

	next := DraftState{
		LeadID:    lead.ID,
		LeadName:  lead.Name,
		LeadEmail: lead.Email,
		UpdatedAt: time.Now(),
	}
	if err != nil {
		log.Printf("❌ Draft: falha ao gerar e-mail para o lead %s: %v", lead.ID, err)
		next.Phase = DraftFailed
		next.Text = DraftErrorPlaceholder
		next.Error = err.Error()
	} else {
		next.Phase = DraftReady
		next.Text = text
	}
	o.state = next
	hook := o.OnSettle
	o.mu.Unlock()

	if hook != nil {
		hook(next)
	}
}

// Dismiss volta para Idle. Um pedido em andamento continua, mas o resultado
// dele não é mais aplicado.
func (o *EmailDraftOrchestrator) Dismiss() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.generation++
	o.state = DraftState{Phase: DraftIdle, UpdatedAt: time.Now()}
}

func (o *EmailDraftOrchestrator) State() DraftState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// CopyDraft copia o texto pronto para o clipboard. Sem transição de estado.
func (o *EmailDraftOrchestrator) CopyDraft(clipboard Clipboard) error {
	st, err := o.readyState()
	if err != nil {
		return err
	}
	if err := clipboard.Copy(st.Text); err != nil {
		return &TechnicalError{Code: "CLIPBOARD_ERROR", Message: "failed to copy draft", Err: err}
	}
	return nil
}

// SendDraft envia o rascunho pronto para o e-mail do lead. Sem transição de estado.
func (o *EmailDraftOrchestrator) SendDraft(ctx context.Context, mailer DraftMailer) error {
	st, err := o.readyState()
	if err != nil {
		return err
	}
	if err := mailer.SendDraft(ctx, st.LeadEmail, st.LeadName, st.Text); err != nil {
		return &TechnicalError{Code: "MAIL_ERROR", Message: "failed to send draft", Err: err}
	}
	log.Printf("✅ Draft: rascunho enviado para %s", st.LeadEmail)
	return nil
}

func (o *EmailDraftOrchestrator) readyState() (DraftState, error) {
	st := o.State()
	if st.Phase != DraftReady {
		return st, &DomainError{
			Code:    CodeDraftNotReady,
			Message: fmt.Sprintf("draft is %s, not ready", st.Phase),
			Err:     ErrDraftNotReady,
		}
	}
	return st, nil
}
