package usecase

import (
	"context"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// UpdateSettingsUseCase covers the generic add/rename/remove operations
// over the string lists of the settings document. Each operation loads
// the current document, mutates a copy and writes it back; the original
// snapshot is untouched unless the write succeeds, so a failure leaves
// the last known-good document in place.
type UpdateSettingsUseCase struct {
	Settings SettingsRepositoryInterface
}

func NewUpdateSettingsUseCase(settings SettingsRepositoryInterface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{Settings: settings}
}

func (uc *UpdateSettingsUseCase) AddOption(ctx context.Context, listName, value string) (*entity.AppSettings, error) {
	return uc.mutate(ctx, listName, func(list *[]string) error {
		for _, existing := range *list {
			if existing == value {
				return &DomainError{Code: "DUPLICATE_OPTION", Message: "option already exists: " + value}
			}
		}
		*list = append(*list, value)
		return nil
	})
}

func (uc *UpdateSettingsUseCase) RenameOption(ctx context.Context, listName, from, to string) (*entity.AppSettings, error) {
	return uc.mutate(ctx, listName, func(list *[]string) error {
		for i, existing := range *list {
			if existing == from {
				(*list)[i] = to
				return nil
			}
		}
		return &DomainError{Code: "OPTION_NOT_FOUND", Message: "option not found: " + from}
	})
}

func (uc *UpdateSettingsUseCase) RemoveOption(ctx context.Context, listName, value string) (*entity.AppSettings, error) {
	return uc.mutate(ctx, listName, func(list *[]string) error {
		for i, existing := range *list {
			if existing == value {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return nil
			}
		}
		return &DomainError{Code: "OPTION_NOT_FOUND", Message: "option not found: " + value}
	})
}

// SetAnalysisPrompt overrides the lead-potential prompt template. An
// empty value restores the built-in default.
func (uc *UpdateSettingsUseCase) SetAnalysisPrompt(ctx context.Context, prompt string) (*entity.AppSettings, error) {
	current, err := uc.Settings.GetAppSettings(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	next := current.Clone()
	next.AnalysisPrompt = prompt

	if err := uc.Settings.SaveAppSettings(ctx, next); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "settings write failed: " + err.Error()}
	}

	return next, nil
}

func (uc *UpdateSettingsUseCase) mutate(ctx context.Context, listName string, fn func(*[]string) error) (*entity.AppSettings, error) {
	if listName == "" {
		return nil, &DomainError{Code: "INVALID_LIST", Message: "list name is required"}
	}

	current, err := uc.Settings.GetAppSettings(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	next := current.Clone()
	list, err := next.List(listName)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_LIST", Message: err.Error()}
	}

	if err := fn(list); err != nil {
		return nil, err
	}

	if err := uc.Settings.SaveAppSettings(ctx, next); err != nil {
		// The store still holds the previous snapshot; nothing to undo.
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "settings write failed: " + err.Error()}
	}

	return next, nil
}
