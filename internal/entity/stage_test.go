package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStageAdvancesAndClampsAtClosed(t *testing.T) {
	assert.Equal(t, StageContacted, NextStage(StageNew))
	assert.Equal(t, StageNegotiation, NextStage(StageContacted))
	assert.Equal(t, StageClosed, NextStage(StageNegotiation))
	assert.Equal(t, StageClosed, NextStage(StageClosed))

	assert.Equal(t, StageClosed, NextStage(NextStage(NextStage(NextStage(StageNew)))))
}

func TestNextStageTreatsUnknownAsNew(t *testing.T) {
	assert.Equal(t, StageContacted, NextStage(""))
	assert.Equal(t, StageContacted, NextStage("Archived"))
	assert.Equal(t, StageContacted, NextStage("new"))
}

func TestPreviousStageClampsAtNew(t *testing.T) {
	assert.Equal(t, StageNew, PreviousStage(StageNew))
	assert.Equal(t, StageNew, PreviousStage(StageContacted))
	assert.Equal(t, StageContacted, PreviousStage(StageNegotiation))
	assert.Equal(t, StageNegotiation, PreviousStage(StageClosed))
	assert.Equal(t, StageNew, PreviousStage("garbage"))
}

func TestNextStageIsMonotonic(t *testing.T) {
	order := map[Stage]int{}
	for i, s := range Stages() {
		order[s] = i
	}
	for _, s := range Stages() {
		assert.GreaterOrEqual(t, order[NextStage(s)], order[s])
		assert.LessOrEqual(t, order[PreviousStage(s)], order[s])
	}
}

func TestToggleStage(t *testing.T) {
	assert.Equal(t, StageContacted, ToggleStage(StageNew))
	assert.Equal(t, StageContacted, ToggleStage(""))
	assert.Equal(t, StageNew, ToggleStage(StageContacted))
	assert.Equal(t, StageNew, ToggleStage(StageNegotiation))
	assert.Equal(t, StageNew, ToggleStage(StageClosed))
	assert.Equal(t, StageNew, ToggleStage("Lost"))
}

func TestParseStage(t *testing.T) {
	st, ok := ParseStage("Negotiation")
	assert.True(t, ok)
	assert.Equal(t, StageNegotiation, st)

	_, ok = ParseStage("negotiation")
	assert.False(t, ok)
	_, ok = ParseStage("")
	assert.False(t, ok)
}

func TestStagesReturnsCopy(t *testing.T) {
	s := Stages()
	s[0] = "Mutated"
	assert.Equal(t, StageNew, Stages()[0])
	assert.Equal(t, []Stage{StageNew, StageContacted, StageNegotiation, StageClosed}, Stages())
}
