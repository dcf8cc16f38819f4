package entity

import "time"

// CandidateScore resultado persistido de una predicción pre-hire.
type CandidateScore struct {
	ID            string
	CandidateID   string
	CandidateName string
	Candidate     map[string]any // features tal como se enviaron al modelo
	Probability   float64
	RiskFlag      string // High | Low
	Threshold     float64
	ModelVersion  string
	CreatedAt     time.Time
}
