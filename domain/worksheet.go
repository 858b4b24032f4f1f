// Package domain defines the worksheet request and response shapes.
package domain

// Step0Data is the self-profile stage of the worksheet.
type Step0Data struct {
	Values                []string `json:"values"`
	Interests             []string `json:"interests"`
	Strengths             []string `json:"strengths"`
	MustHaveConstraints   []string `json:"mustHaveConstraints"`
	NiceToHaveConstraints []string `json:"niceToHaveConstraints"`
	Concerns              string   `json:"concerns"`
}

// Step1Data is the problem-definition (communication) stage.
type Step1Data struct {
	ProblemDefinition string   `json:"problemDefinition"`
	InternalCues      []string `json:"internalCues"`
	ExternalCues      []string `json:"externalCues"`
	KeyQuestions      []string `json:"keyQuestions"`
}

// Step2Data is the analysis stage: evaluation criteria plus the
// user-configurable information template that shapes the generated options.
type Step2Data struct {
	EvaluationCriteria  []string        `json:"evaluationCriteria"`
	Constraints         []string        `json:"constraints"`
	InformationTemplate []TemplateField `json:"informationTemplate"`
}

// TemplateField is one entry of the information template. Field is either
// "Label (key)" or a plain label.
type TemplateField struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Option is one LLM-generated decision alternative. The model is instructed
// to produce title/description/profile/matchReason, but the structure is
// advisory and whatever it returned is passed through unvalidated.
type Option map[string]interface{}

// TokenUsage reports the token counts of one generation call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
