package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

// LeadEventPublisher recebe um evento depois de cada mutação confirmada.
type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, event entity.Activity) error
}

// LeadStore é a única fonte de verdade dos leads no cliente.
// Toda mutação passa pelo backend e, se der certo, recarrega o snapshot inteiro.
type LeadStore struct {
	Backend   entity.LeadBackend
	Publisher LeadEventPublisher

	mu       sync.RWMutex
	leads    []entity.Lead
	lastErr  error
	syncedAt time.Time

	// issued conta os ListLeads disparados; applied é o último instalado.
	issued  uint64
	applied uint64
}

func NewLeadStore(backend entity.LeadBackend, publisher LeadEventPublisher) *LeadStore {
	return &LeadStore{
		Backend:   backend,
		Publisher: publisher,
		leads:     []entity.Lead{},
	}
}

// Refresh busca a coleção completa e troca o snapshot. Em caso de falha o
// snapshot anterior fica intacto e o erro fica disponível em LastError.
// Uma resposta que chega depois de outra disparada mais tarde é descartada.
func (s *LeadStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	leads, err := s.Backend.ListLeads(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		log.Printf("Store: resposta de sincronização #%d descartada (já aplicada #%d)", seq, s.applied)
		return err
	}
	s.applied = seq

	if err != nil {
		s.lastErr = err
		log.Printf("❌ Store: falha ao sincronizar leads: %v", err)
		return err
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	s.leads = leads
	s.lastErr = nil
	s.syncedAt = time.Now()
	return nil
}

// Create valida o rascunho, pede a criação ao backend e recarrega.
func (s *LeadStore) Create(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	if validationErrors := ValidateLeadDraft(draft); len(validationErrors) > 0 {
		return nil, validationFailure(validationErrors)
	}

	created, err := s.Backend.CreateLead(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	if created == nil {
		return nil, &TechnicalError{
			Code:    CodeMalformedResponse,
			Message: "backend returned no lead for create",
		}
	}

	s.publish(ctx, entity.ActivityLeadCreated, created.ID, created.Name, created.Status)
	s.resync(ctx)
	return created, nil
}

// Remove pede a exclusão. Id inexistente volta como erro do backend.
func (s *LeadStore) Remove(ctx context.Context, id string) error {
	name := ""
	if l, ok := s.Find(id); ok {
		name = l.Name
	}

	if err := s.Backend.DeleteLead(ctx, id); err != nil {
		return fmt.Errorf("delete lead %s: %w", id, err)
	}

	s.publish(ctx, entity.ActivityLeadDeleted, id, name, "")
	s.resync(ctx)
	return nil
}

// SetStatus envia o novo status tal como recebido e recarrega.
func (s *LeadStore) SetStatus(ctx context.Context, id string, status entity.Stage) (*entity.Lead, error) {
	updated, err := s.Backend.UpdateLeadStatus(ctx, id, string(status))
	if err != nil {
		return nil, fmt.Errorf("update status of lead %s: %w", id, err)
	}

	if updated == nil {
		updated = &entity.Lead{ID: id, Status: string(status)}
	}

	s.publish(ctx, entity.ActivityLeadStatusChanged, id, updated.Name, string(status))
	s.resync(ctx)
	return updated, nil
}

// Advance move o lead para a etapa seguinte (Closed fica em Closed).
func (s *LeadStore) Advance(ctx context.Context, id string) (*entity.Lead, error) {
	return s.transition(ctx, id, entity.NextStage)
}

// Revert move o lead para a etapa anterior (New fica em New).
func (s *LeadStore) Revert(ctx context.Context, id string) (*entity.Lead, error) {
	return s.transition(ctx, id, entity.PreviousStage)
}

// Toggle alterna New <-> Contacted.
func (s *LeadStore) Toggle(ctx context.Context, id string) (*entity.Lead, error) {
	return s.transition(ctx, id, entity.ToggleStage)
}

func (s *LeadStore) transition(ctx context.Context, id string, next func(entity.Stage) entity.Stage) (*entity.Lead, error) {
	lead, ok := s.Find(id)
	if !ok {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: fmt.Sprintf("lead %s is not in the current snapshot", id),
			Err:     entity.ErrLeadNotFound,
		}
	}
	return s.SetStatus(ctx, id, next(lead.Stage()))
}

// Snapshot devolve uma cópia dos leads na ordem do backend.
func (s *LeadStore) Snapshot() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *LeadStore) Find(id string) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// LastError devolve o erro do último Refresh que falhou, ou nil.
func (s *LeadStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *LeadStore) SyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncedAt
}

// resync recarrega após uma mutação confirmada. Uma falha aqui não desfaz a
// mutação: fica registrada em LastError como erro transitório.
func (s *LeadStore) resync(ctx context.Context) {
	_ = s.Refresh(ctx)
}

// publish never fails the mutation; the backend already applied it.
func (s *LeadStore) publish(ctx context.Context, kind, leadID, name, status string) {
	if s.Publisher == nil {
		return
	}

	event := entity.Activity{
		EventID:    uuid.New().String(),
		Kind:       kind,
		LeadID:     leadID,
		LeadName:   name,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Publisher.PublishLeadEvent(ctx, event); err != nil {
		log.Printf("⚠️ Store: evento %s do lead %s não publicado: %v", kind, leadID, err)
	}
}
