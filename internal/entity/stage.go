package entity

type Stage string

const (
	StageNew         Stage = "New"
	StageContacted   Stage = "Contacted"
	StageNegotiation Stage = "Negotiation"
	StageClosed      Stage = "Closed"
)

var pipelineStages = []Stage{StageNew, StageContacted, StageNegotiation, StageClosed}

// Stages devolve as etapas na ordem do pipeline.
func Stages() []Stage {
	out := make([]Stage, len(pipelineStages))
	copy(out, pipelineStages)
	return out
}

// ParseStage reports whether s is one of the known pipeline stages.
func ParseStage(s string) (Stage, bool) {
	for _, st := range pipelineStages {
		if string(st) == s {
			return st, true
		}
	}
	return StageNew, false
}

// stageIndex maps absent or unknown statuses to New.
func stageIndex(s Stage) int {
	for i, st := range pipelineStages {
		if st == s {
			return i
		}
	}
	return 0
}

// NextStage avança uma etapa; Closed permanece Closed.
func NextStage(s Stage) Stage {
	i := stageIndex(s) + 1
	if i >= len(pipelineStages) {
		i = len(pipelineStages) - 1
	}
	return pipelineStages[i]
}

// PreviousStage recua uma etapa; New permanece New.
func PreviousStage(s Stage) Stage {
	i := stageIndex(s) - 1
	if i < 0 {
		i = 0
	}
	return pipelineStages[i]
}

// ToggleStage é o atalho New <-> Contacted do card; não segue NextStage.
func ToggleStage(s Stage) Stage {
	if s == StageNew || s == "" {
		return StageContacted
	}
	return StageNew
}
