package entity

import "errors"

var (
	ErrLeadNotFound     = errors.New("lead not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrSettingsNotFound = errors.New("settings document not found")
	ErrDuplicateEmail   = errors.New("a lead with this email already exists")
)
