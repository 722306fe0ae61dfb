package usecase

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

// Limiares de score e multiplicador de valor. Ajuste só aqui.
const (
	HotScoreThreshold       = 80
	WarmScoreThreshold      = 50
	PipelineValueMultiplier = 150
)

const (
	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"
)

type Metrics struct {
	TotalLeads           int    `json:"total_leads"`
	HotLeads             int    `json:"hot_leads"`
	WarmLeads            int    `json:"warm_leads"`
	ColdLeads            int    `json:"cold_leads"`
	ContactedRate        int    `json:"contacted_rate"`
	ConversionRate       int    `json:"conversion_rate"`
	PipelineValue        int64  `json:"pipeline_value"`
	PipelineValueDisplay string `json:"pipeline_value_display"`
}

var currencyPrinter = message.NewPrinter(language.English)

// ScoreTier classifica o score: > 80 hot, > 50 warm, resto cold.
func ScoreTier(score int) string {
	switch {
	case score > HotScoreThreshold:
		return TierHot
	case score > WarmScoreThreshold:
		return TierWarm
	default:
		return TierCold
	}
}

// ComputeMetrics deriva os indicadores do dashboard a partir do snapshot.
// Não guarda estado: pode ser chamada a qualquer momento.
func ComputeMetrics(leads []entity.Lead) Metrics {
	m := Metrics{TotalLeads: len(leads)}

	var contacted, closed int
	for _, l := range leads {
		switch ScoreTier(l.AIScore) {
		case TierHot:
			m.HotLeads++
		case TierWarm:
			m.WarmLeads++
		default:
			m.ColdLeads++
		}

		switch entity.Stage(l.Status) {
		case entity.StageContacted:
			contacted++
		case entity.StageClosed:
			closed++
		}

		m.PipelineValue += int64(l.AIScore) * PipelineValueMultiplier
	}

	m.ContactedRate = percentOf(contacted, m.TotalLeads)
	m.ConversionRate = percentOf(closed, m.TotalLeads)
	m.PipelineValueDisplay = FormatCurrency(m.PipelineValue)
	return m
}

func percentOf(matching, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matching) * 100 / float64(total)))
}

// FormatCurrency formata um valor inteiro em dólares: 27000 -> "$27,000".
func FormatCurrency(value int64) string {
	if value < 0 {
		return currencyPrinter.Sprintf("-$%d", -value)
	}
	return currencyPrinter.Sprintf("$%d", value)
}

// StageCount é a contagem de uma coluna do kanban.
type StageCount struct {
	Stage entity.Stage `json:"stage"`
	Count int          `json:"count"`
}

// StageCounts conta leads por etapa, tratando status vazio como New.
// Status desconhecidos não entram em coluna nenhuma.
func StageCounts(leads []entity.Lead) []StageCount {
	stages := entity.Stages()
	idx := make(map[entity.Stage]int, len(stages))
	out := make([]StageCount, len(stages))
	for i, st := range stages {
		idx[st] = i
		out[i] = StageCount{Stage: st}
	}
	for _, l := range leads {
		if i, ok := idx[l.Stage()]; ok {
			out[i].Count++
		}
	}
	return out
}

// RecentLeads devolve os primeiros n leads do snapshot.
func RecentLeads(leads []entity.Lead, n int) []entity.Lead {
	if n <= 0 {
		return []entity.Lead{}
	}
	if n > len(leads) {
		n = len(leads)
	}
	out := make([]entity.Lead, n)
	copy(out, leads[:n])
	return out
}
