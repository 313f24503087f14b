package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

func TestImportContacts_CreatesNewLeads(t *testing.T) {
	leads := new(MockLeadRepository)
	uc := NewImportContactsUseCase(leads)

	leads.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, entity.ErrLeadNotFound)
	leads.On("Create", mock.Anything, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.Name == "Asha" &&
			lead.AFCStep == 0 &&
			len(lead.CommitmentSnapshot.Courses) == 1 &&
			lead.CommitmentSnapshot.Courses[0] == "Tajweed"
	})).Return(nil)

	out, err := uc.Execute(context.Background(), ImportContactsInput{
		JSONData: `[{"name":"Asha","email":"asha@example.com","phone1":"5551234567","courseName":"Tajweed"}]`,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 0, out.Updated)
	assert.Equal(t, 0, out.Skipped)
	leads.AssertExpectations(t)
}

func TestImportContacts_UpdatesExistingByEmail(t *testing.T) {
	leads := new(MockLeadRepository)
	uc := NewImportContactsUseCase(leads)

	existing := activeLead(1, false)
	existing.Email = "asha@example.com"

	leads.On("FindByEmail", mock.Anything, "asha@example.com").Return(existing, nil)
	leads.On("UpdateFields", mock.Anything, existing.ID, mock.Anything).Return(nil)
	leads.On("UpdateSnapshot", mock.Anything, existing.ID, mock.MatchedBy(func(s entity.CommitmentSnapshot) bool {
		return len(s.Courses) == 1 && s.Courses[0] == "Hifz"
	})).Return(nil)

	out, err := uc.Execute(context.Background(), ImportContactsInput{
		JSONData: `[{"name":"Asha Khan","email":"asha@example.com","courseName":"Hifz"}]`,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Updated)
	leads.AssertExpectations(t)
}

func TestImportContacts_NewOnlyModeSkipsExisting(t *testing.T) {
	leads := new(MockLeadRepository)
	uc := NewImportContactsUseCase(leads)

	existing := activeLead(1, false)
	leads.On("FindByEmail", mock.Anything, "asha@example.com").Return(existing, nil)

	out, err := uc.Execute(context.Background(), ImportContactsInput{
		JSONData: `[{"name":"Asha","email":"asha@example.com"}]`,
		IsNew:    true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Skipped)
	leads.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	leads.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportContacts_SkipsNamelessRows(t *testing.T) {
	leads := new(MockLeadRepository)
	uc := NewImportContactsUseCase(leads)

	out, err := uc.Execute(context.Background(), ImportContactsInput{
		JSONData: `[{"email":"noname@example.com"},{"name":"  "}]`,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Skipped)
	leads.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestImportContacts_InvalidJSON(t *testing.T) {
	uc := NewImportContactsUseCase(new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), ImportContactsInput{JSONData: "not json"})

	assert.True(t, IsDomainError(err))
}

func TestImportContacts_EmptyPayload(t *testing.T) {
	uc := NewImportContactsUseCase(new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), ImportContactsInput{JSONData: "   "})

	assert.True(t, IsDomainError(err))
}
