// Package prompt renders worksheet data into the user prompt and the system
// instruction sent to the LLM. All functions are pure text transforms.
package prompt

import (
	"fmt"
	"strings"

	"github.com/casve-tools/decision-api/domain"
)

// defaultTemplate is used when step 2 carries no information template.
var defaultTemplate = []domain.TemplateField{
	{Field: "Core Role (coreRole)", Description: "Main role/responsibility"},
	{Field: "Required Skills (requiredSkills)", Description: "Key skills needed"},
	{Field: "Environment (environment)", Description: "Work environment description"},
	{Field: "Growth (growth)", Description: "Growth potential and trajectory"},
}

// Build renders steps 0-2 into a single prompt for the user turn. Sections
// appear in fixed order; optional fields with no content are omitted.
func Build(step0 domain.Step0Data, step1 domain.Step1Data, step2 domain.Step2Data) string {
	parts := []string{"# User Profile and Decision Context\n"}

	parts = append(parts, "## Step 0: Self Profile")
	if len(step0.Values) > 0 {
		parts = append(parts, "**Values**: "+strings.Join(step0.Values, ", "))
	}
	if len(step0.Interests) > 0 {
		parts = append(parts, "**Interests**: "+strings.Join(step0.Interests, ", "))
	}
	if len(step0.Strengths) > 0 {
		parts = append(parts, "**Strengths**: "+strings.Join(step0.Strengths, ", "))
	}
	if len(step0.MustHaveConstraints) > 0 {
		parts = append(parts, "**Must-Have Constraints**: "+strings.Join(step0.MustHaveConstraints, ", "))
	}
	if len(step0.NiceToHaveConstraints) > 0 {
		parts = append(parts, "**Nice-to-Have Constraints**: "+strings.Join(step0.NiceToHaveConstraints, ", "))
	}
	if step0.Concerns != "" {
		parts = append(parts, "**Current Concerns**: "+step0.Concerns)
	}

	parts = append(parts, "\n## Step 1: Problem Definition")
	if step1.ProblemDefinition != "" {
		parts = append(parts, "**Decision Problem**: "+step1.ProblemDefinition)
	}
	if len(step1.InternalCues) > 0 {
		parts = append(parts, "**Internal Signals**: "+strings.Join(step1.InternalCues, ", "))
	}
	if len(step1.ExternalCues) > 0 {
		parts = append(parts, "**External Signals**: "+strings.Join(step1.ExternalCues, ", "))
	}
	if len(step1.KeyQuestions) > 0 {
		parts = append(parts, "**Key Questions**: "+strings.Join(step1.KeyQuestions, ", "))
	}

	parts = append(parts, "\n## Step 2: Evaluation Criteria")
	if len(step2.EvaluationCriteria) > 0 {
		parts = append(parts, "**Comparison Criteria**: "+strings.Join(step2.EvaluationCriteria, ", "))
	}
	if len(step2.Constraints) > 0 {
		parts = append(parts, "**Additional Constraints**: "+strings.Join(step2.Constraints, ", "))
	}

	parts = append(parts, "\n---")
	parts = append(parts, "Based on this information, generate 3-5 personalized career/decision options.")

	return strings.Join(parts, "\n")
}

// SystemInstruction builds the system turn. The profile object inside the
// JSON template the model is asked to follow is derived from the information
// template: one line per field, keyed by the parsed field key.
func SystemInstruction(template []domain.TemplateField) string {
	if len(template) == 0 {
		template = defaultTemplate
	}

	profileLines := make([]string, 0, len(template))
	for _, entry := range template {
		f := ParseFieldLabel(entry.Field)
		desc := strings.TrimSpace(entry.Description)
		if desc == "" {
			desc = f.Label
		}
		profileLines = append(profileLines, fmt.Sprintf("        %q: %q", f.Key, f.Label+" - "+desc))
	}

	var b strings.Builder
	b.WriteString(`You are a career counseling expert specializing in the CASVE (Communication, Analysis, Synthesis, Valuing, Execution) decision-making model.
Your task is to generate personalized career or decision alternatives based on the user's profile, problem definition, and analysis criteria.

Generate 3-5 realistic and actionable options that:
1. Align with the user's values, interests, and strengths
2. Consider their constraints and concerns
3. Address their decision-making problem
4. Can be evaluated using their criteria

Return the response in JSON format with the following structure:
{
  "options": [
    {
      "title": "Option title (brief, clear)",
      "description": "2-3 sentence overview",
      "profile": {
`)
	b.WriteString(strings.Join(profileLines, ",\n"))
	b.WriteString(`
      },
      "matchReason": "Why this fits the user (2-3 sentences)"
    }
  ]
}

Respond ONLY with valid JSON, no additional text.`)

	return b.String()
}
