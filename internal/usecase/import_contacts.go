package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// ImportContactsUseCase bulk-imports contacts from a JSON array.
// Deduplication is by exact email match. In "new only" mode existing
// contacts are skipped; otherwise they are updated in place. Imported
// leads arrive with an explicit status and a paused AFC, so the
// follow-up cycle does not fire for them.
type ImportContactsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewImportContactsUseCase(leads LeadRepositoryInterface) *ImportContactsUseCase {
	return &ImportContactsUseCase{Leads: leads}
}

type contactRow struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone1       string `json:"phone1"`
	Phone1Type   string `json:"phone1Type"`
	Phone2       string `json:"phone2"`
	Phone2Type   string `json:"phone2Type"`
	Relationship string `json:"relationship"`
	CourseName   string `json:"courseName"`
}

func (uc *ImportContactsUseCase) Execute(ctx context.Context, input ImportContactsInput) (*ImportContactsOutput, error) {
	if strings.TrimSpace(input.JSONData) == "" {
		return nil, &DomainError{Code: "EMPTY_IMPORT", Message: "no JSON data provided"}
	}

	var rows []contactRow
	if err := json.Unmarshal([]byte(input.JSONData), &rows); err != nil {
		return nil, &DomainError{Code: "INVALID_JSON", Message: "JSON data must be an array of contact objects"}
	}

	out := &ImportContactsOutput{}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		email := strings.TrimSpace(row.Email)

		if name == "" {
			out.Skipped++
			continue
		}

		var existing *entity.Lead
		if email != "" {
			found, err := uc.Leads.FindByEmail(ctx, email)
			if err == nil {
				existing = found
			} else if err != entity.ErrLeadNotFound {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
			}
		}

		switch {
		case existing != nil && !input.IsNew:
			fields := map[string]interface{}{
				"name":   name,
				"phones": importPhones(row),
			}
			if rel := strings.TrimSpace(row.Relationship); rel != "" {
				fields["relationship"] = rel
			}
			if err := uc.Leads.UpdateFields(ctx, existing.ID, fields); err != nil {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
			}
			if course := strings.TrimSpace(row.CourseName); course != "" {
				snapshot := existing.CommitmentSnapshot
				snapshot.Courses = []string{course}
				if err := uc.Leads.UpdateSnapshot(ctx, existing.ID, snapshot); err != nil {
					return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
				}
			}
			out.Updated++

		case existing == nil:
			lead, err := entity.NewLead(name, email, importPhones(row))
			if err != nil {
				out.Skipped++
				continue
			}
			if rel := strings.TrimSpace(row.Relationship); rel == entity.RelationshipLearner {
				lead.Relationship = rel
			}
			if course := strings.TrimSpace(row.CourseName); course != "" {
				lead.CommitmentSnapshot.Courses = []string{course}
			}
			// Imported: status pre-set, AFC stays paused.
			lead.AFCStep = 0
			if err := uc.Leads.Create(ctx, lead); err != nil {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
			}
			out.Created++

		default:
			// Exists and mode is "new only".
			out.Skipped++
		}
	}

	return out, nil
}

func importPhones(row contactRow) []entity.Phone {
	var phones []entity.Phone
	if n := strings.TrimSpace(row.Phone1); n != "" {
		phones = append(phones, entity.Phone{Number: n, Type: normalizePhoneType(strings.ToLower(strings.TrimSpace(row.Phone1Type)))})
	}
	if n := strings.TrimSpace(row.Phone2); n != "" {
		phones = append(phones, entity.Phone{Number: n, Type: normalizePhoneType(strings.ToLower(strings.TrimSpace(row.Phone2Type)))})
	}
	return phones
}
