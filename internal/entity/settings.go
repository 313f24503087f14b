package entity

import "errors"

// Settings document keys
const (
	SettingsKeyAppConfig    = "appConfig"
	SettingsKeySalesCatalog = "salesCatalog"
)

// Option list names inside AppSettings
const (
	ListCourses           = "courses"
	ListTrainers          = "trainers"
	ListTimeSlots         = "time_slots"
	ListWithdrawalReasons = "withdrawal_reasons"
	ListObjections        = "objections"
	ListThemeColors       = "theme_colors"
)

// AppSettings is the single configuration document behind every chip
// and selector in the client.
type AppSettings struct {
	Courses           []string `json:"courses"`
	Trainers          []string `json:"trainers"`
	TimeSlots         []string `json:"time_slots"`
	WithdrawalReasons []string `json:"withdrawal_reasons"`
	Objections        []string `json:"objections"`
	ThemeColors       []string `json:"theme_colors"`

	// Optional override for the lead-potential prompt.
	AnalysisPrompt string `json:"analysis_prompt,omitempty"`
}

var ErrUnknownOptionList = errors.New("unknown option list")

// List returns a pointer to the named option list so callers can
// mutate it in place.
func (s *AppSettings) List(name string) (*[]string, error) {
	switch name {
	case ListCourses:
		return &s.Courses, nil
	case ListTrainers:
		return &s.Trainers, nil
	case ListTimeSlots:
		return &s.TimeSlots, nil
	case ListWithdrawalReasons:
		return &s.WithdrawalReasons, nil
	case ListObjections:
		return &s.Objections, nil
	case ListThemeColors:
		return &s.ThemeColors, nil
	default:
		return nil, ErrUnknownOptionList
	}
}

// Clone returns a deep copy, used as the rollback snapshot around
// settings writes.
func (s *AppSettings) Clone() *AppSettings {
	c := *s
	c.Courses = append([]string(nil), s.Courses...)
	c.Trainers = append([]string(nil), s.Trainers...)
	c.TimeSlots = append([]string(nil), s.TimeSlots...)
	c.WithdrawalReasons = append([]string(nil), s.WithdrawalReasons...)
	c.Objections = append([]string(nil), s.Objections...)
	c.ThemeColors = append([]string(nil), s.ThemeColors...)
	return &c
}
