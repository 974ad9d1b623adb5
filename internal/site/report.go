package site

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BuildReport summarizes one generation run. It is written into the
// destination root as build-report.json.
type BuildReport struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration_ns"`

	DocletsIngested    int `json:"doclets_ingested"`
	SkippedKinds       int `json:"skipped_kinds"`
	PagesRendered      int `json:"pages_rendered"`
	SourcePagesSkipped int `json:"source_pages_skipped"`
	WriteFailures      int `json:"write_failures"`
	AssetsCopied       int `json:"assets_copied"`
	AssetFailures      int `json:"asset_failures"`

	StepDurations map[string]time.Duration `json:"step_durations"`
}

func newBuildReport() *BuildReport {
	return &BuildReport{
		RunID:         uuid.NewString(),
		StartedAt:     time.Now(),
		StepDurations: make(map[string]time.Duration),
	}
}

// Marshal renders the report as indented JSON.
func (r *BuildReport) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
