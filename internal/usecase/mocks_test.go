package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

type MockLeadBackend struct {
	mock.Mock
}

func (m *MockLeadBackend) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadBackend) CreateLead(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadBackend) DeleteLead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadBackend) UpdateLeadStatus(ctx context.Context, id string, status string) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLeadEvent(ctx context.Context, event entity.Activity) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) Copy(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

type MockDraftMailer struct {
	mock.Mock
}

func (m *MockDraftMailer) SendDraft(ctx context.Context, to, name, text string) error {
	args := m.Called(ctx, to, name, text)
	return args.Error(0)
}

// gatedGenerator segura cada resposta até o teste liberar o lead.
type gatedGenerator struct {
	gates map[string]chan generatorResult
}

type generatorResult struct {
	text string
	err  error
}

func newGatedGenerator(leadIDs ...string) *gatedGenerator {
	g := &gatedGenerator{gates: make(map[string]chan generatorResult)}
	for _, id := range leadIDs {
		g.gates[id] = make(chan generatorResult, 1)
	}
	return g
}

func (g *gatedGenerator) GenerateEmail(ctx context.Context, leadID string) (string, error) {
	res := <-g.gates[leadID]
	return res.text, res.err
}

func (g *gatedGenerator) release(leadID, text string, err error) {
	g.gates[leadID] <- generatorResult{text: text, err: err}
}
