package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

// fakeBackend é um backend de leads em memória, com ids sequenciais.
type fakeBackend struct {
	mu      sync.Mutex
	leads   []entity.Lead
	nextID  int
	listErr error

	emailText string
	emailErr  error

	updates []string
}

func newFakeBackend(leads ...entity.Lead) *fakeBackend {
	return &fakeBackend{leads: leads, nextID: 100}
}

func (f *fakeBackend) ListLeads(context.Context) ([]entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Lead, len(f.leads))
	copy(out, f.leads)
	return out, nil
}

func (f *fakeBackend) CreateLead(_ context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	lead := entity.Lead{
		ID:         strconv.Itoa(f.nextID),
		Name:       draft.Name,
		Company:    draft.Company,
		Email:      draft.Email,
		Notes:      draft.Notes,
		Status:     string(entity.StageNew),
		AIScore:    50,
		AICategory: "Warm Lead",
	}
	f.leads = append(f.leads, lead)
	return &lead, nil
}

func (f *fakeBackend) DeleteLead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.leads {
		if l.ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeBackend) UpdateLeadStatus(_ context.Context, id string, status string) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id+"="+status)
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].Status = status
			l := f.leads[i]
			return &l, nil
		}
	}
	return nil, notFound()
}

func (f *fakeBackend) GenerateEmail(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.emailText, f.emailErr
}

func notFound() error {
	return &usecase.DomainError{Code: usecase.CodeLeadNotFound, Message: "lead not found", Err: entity.ErrLeadNotFound}
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeMailer) SendDraft(_ context.Context, to, _, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+text)
	return nil
}

type fakeActivityRepo struct {
	items []entity.Activity
	err   error
	limit int
	kinds []string
}

func (f *fakeActivityRepo) Record(context.Context, *entity.Activity) error { return nil }

func (f *fakeActivityRepo) Recent(_ context.Context, limit int, kinds ...string) ([]entity.Activity, error) {
	f.limit = limit
	f.kinds = kinds
	return f.items, f.err
}

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "1", Name: "Ana Souza", Company: "Acme", Email: "ana@acme.com", Notes: "budget approved", AIScore: 92, AICategory: "Hot Lead", Status: "New"},
		{ID: "2", Name: "Bruno Lima", Company: "Globex", Email: "bruno@globex.com", Notes: "just browsing", AIScore: 30, AICategory: "Cold Lead", Status: "Contacted"},
		{ID: "3", Name: "Carla Dias", Company: "Initech, Inc", Email: "carla@initech.com", Notes: "needs demo", AIScore: 65, AICategory: "Warm Lead", Status: "Closed"},
	}
}

// syncedStore devolve um LeadStore já sincronizado com o backend fake.
func syncedStore(backend *fakeBackend) *usecase.LeadStore {
	store := usecase.NewLeadStore(backend, nil)
	_ = store.Refresh(context.Background())
	return store
}

// withURLParam injeta o {id} do chi sem montar o router inteiro.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
