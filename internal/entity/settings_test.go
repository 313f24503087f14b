package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppSettingsList(t *testing.T) {
	s := &AppSettings{Courses: []string{"Tajweed"}}

	list, err := s.List(ListCourses)
	assert.NoError(t, err)

	*list = append(*list, "Hifz")
	assert.Equal(t, []string{"Tajweed", "Hifz"}, s.Courses, "List returns a live pointer")

	_, err = s.List("bogus")
	assert.ErrorIs(t, err, ErrUnknownOptionList)
}

func TestAppSettingsClone(t *testing.T) {
	original := &AppSettings{
		Courses:        []string{"Tajweed"},
		Objections:     []string{"price"},
		AnalysisPrompt: "custom",
	}

	clone := original.Clone()
	clone.Courses[0] = "changed"
	clone.Objections = append(clone.Objections, "timing")

	assert.Equal(t, []string{"Tajweed"}, original.Courses)
	assert.Equal(t, []string{"price"}, original.Objections)
	assert.Equal(t, "custom", clone.AnalysisPrompt)
}
