package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "1", Name: "Ana Souza", Company: "Acme"},
		{ID: "2", Name: "Bruno", Company: "Globex"},
		{ID: "3", Name: "Carla", Company: "ACME Labs"},
	}
}

func TestFilterLeadsEmptyQueryReturnsAll(t *testing.T) {
	leads := sampleLeads()

	got := FilterLeads(leads, "")

	assert.Equal(t, leads, got)
}

func TestFilterLeadsIsCaseInsensitive(t *testing.T) {
	got := FilterLeads(sampleLeads(), "acme")

	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	}
}

func TestFilterLeadsMatchesNameOrCompany(t *testing.T) {
	assert.Len(t, FilterLeads(sampleLeads(), "BRU"), 1)
	assert.Len(t, FilterLeads(sampleLeads(), "glob"), 1)
	assert.Empty(t, FilterLeads(sampleLeads(), "initech"))
}

func TestFilterLeadsDoesNotMutateInput(t *testing.T) {
	leads := sampleLeads()
	before := sampleLeads()

	first := FilterLeads(leads, "a")
	second := FilterLeads(leads, "a")

	assert.Equal(t, before, leads)
	assert.Equal(t, first, second)
}

func TestMatchesQueryIgnoresEmailAndNotes(t *testing.T) {
	lead := entity.Lead{Name: "Ana", Company: "Acme", Email: "zed@x.com", Notes: "urgent"}

	assert.True(t, MatchesQuery(lead, "ANA"))
	assert.False(t, MatchesQuery(lead, "zed"))
	assert.False(t, MatchesQuery(lead, "urgent"))
}
