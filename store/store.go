// Package store persists per-session worksheet activity as JSON log files.
package store

import (
	"errors"
	"strings"

	"github.com/casve-tools/decision-api/domain"
)

// Store is the persistence interface for session activity. Activity and
// generation records append; the report snapshot overwrites.
type Store interface {
	RecordActivity(sessionID, activityType string, data interface{}) error
	RecordGeneration(sessionID string, rec GenerationRecord) error
	SaveReport(sessionID string, rep ReportSnapshot) error
}

// GenerationRecord captures one LLM generation for the session's log.
type GenerationRecord struct {
	Prompt     string            `json:"prompt"`
	Response   string            `json:"response"`
	Model      string            `json:"model"`
	TokensUsed domain.TokenUsage `json:"tokens_used"`
}

// ReportSnapshot is the full worksheet state saved when the user views the
// report. Previous snapshots for the session are replaced wholesale.
type ReportSnapshot struct {
	Step0 map[string]interface{} `json:"step0"`
	Step1 map[string]interface{} `json:"step1"`
	Step2 map[string]interface{} `json:"step2"`
	Step3 map[string]interface{} `json:"step3"`
	Step4 map[string]interface{} `json:"step4"`
}

// ErrInvalidSessionID is returned for session ids that are empty or unsafe
// to embed as a directory name.
var ErrInvalidSessionID = errors.New("invalid session id")

// ValidateSessionID rejects ids that could escape the log root when used as
// a path segment.
func ValidateSessionID(id string) error {
	if id == "" {
		return ErrInvalidSessionID
	}
	if strings.ContainsAny(id, "/\\\x00") || strings.Contains(id, "..") {
		return ErrInvalidSessionID
	}
	return nil
}
