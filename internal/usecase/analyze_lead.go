package usecase

import (
	"context"
	"strings"

	"github.com/najamfazal/leadtrack-solo/internal/infra/integration/gemini"
)

const analysisSystemPrompt = "You are a sales assistant for a small training business. " +
	"Given everything known about a lead, judge whether their sales potential is High or Low " +
	"and suggest the next concrete actions in two or three short sentences."

const defaultAnalysisPrompt = `Classify this lead's sales potential.

Insights:
{{insights}}

Traits:
{{traits}}

Notes:
{{notes}}

Interaction history:
{{interactions}}`

// AnalyzeLeadUseCase is the AI assistance flow: a fixed-shape request
// in, a single model call, a fixed-shape verdict out. Responses that do
// not satisfy the output schema are rejected, never passed through.
type AnalyzeLeadUseCase struct {
	Classifier LeadPotentialClassifier
	Settings   SettingsRepositoryInterface
}

func NewAnalyzeLeadUseCase(classifier LeadPotentialClassifier, settings SettingsRepositoryInterface) *AnalyzeLeadUseCase {
	return &AnalyzeLeadUseCase{
		Classifier: classifier,
		Settings:   settings,
	}
}

func (uc *AnalyzeLeadUseCase) Execute(ctx context.Context, input AnalyzeLeadInput) (*AnalyzeLeadOutput, error) {
	validationErrors := ValidateAnalyzeLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationErrors[0].Error(),
		}
	}

	prompt := uc.resolveTemplate(ctx, input.CustomPrompt)
	prompt = renderPrompt(prompt, input)

	result, err := uc.Classifier.Classify(ctx, gemini.ClassifyInput{
		System: analysisSystemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return nil, &TechnicalError{Code: "MODEL_ERROR", Message: err.Error()}
	}

	if result.Potential != "High" && result.Potential != "Low" {
		return nil, &TechnicalError{
			Code:    "SCHEMA_VIOLATION",
			Message: "model returned invalid potential: " + result.Potential,
		}
	}

	return &AnalyzeLeadOutput{
		Potential: result.Potential,
		Actions:   result.Actions,
	}, nil
}

// resolveTemplate prefers the request's custom prompt, then the one
// stored in settings, then the built-in default.
func (uc *AnalyzeLeadUseCase) resolveTemplate(ctx context.Context, custom string) string {
	if strings.TrimSpace(custom) != "" {
		return custom
	}
	if settings, err := uc.Settings.GetAppSettings(ctx); err == nil && strings.TrimSpace(settings.AnalysisPrompt) != "" {
		return settings.AnalysisPrompt
	}
	return defaultAnalysisPrompt
}

func renderPrompt(template string, input AnalyzeLeadInput) string {
	r := strings.NewReplacer(
		"{{insights}}", bulletList(input.Insights),
		"{{traits}}", bulletList(input.Traits),
		"{{notes}}", orNone(input.Notes),
		"{{interactions}}", bulletList(input.Interactions),
	)
	return r.Replace(template)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
