package domain

// GenerateOptionsRequest is the body of POST /api/generate-options.
type GenerateOptionsRequest struct {
	SessionID string    `json:"sessionId"`
	Step0     Step0Data `json:"step0"`
	Step1     Step1Data `json:"step1"`
	Step2     Step2Data `json:"step2"`
}

// GenerateOptionsResponse is the body returned by POST /api/generate-options.
type GenerateOptionsResponse struct {
	Success    bool        `json:"success"`
	Options    []Option    `json:"options,omitempty"`
	Error      string      `json:"error,omitempty"`
	TokensUsed *TokenUsage `json:"tokensUsed,omitempty"`
}

// SaveReportRequest is the body of POST /api/save-report. The step payloads
// are arbitrary JSON objects snapshotted as-is.
type SaveReportRequest struct {
	SessionID string                 `json:"sessionId"`
	Step0     map[string]interface{} `json:"step0"`
	Step1     map[string]interface{} `json:"step1"`
	Step2     map[string]interface{} `json:"step2"`
	Step3     map[string]interface{} `json:"step3"`
	Step4     map[string]interface{} `json:"step4"`
}

// SaveReportResponse is the body returned by POST /api/save-report.
type SaveReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
