package config

import (
	"github.com/pagr/pagr/internal/config/data"
)

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	profile := ""
	region := ""
	resource := ""
	pageSize := 0
	demo := false
	readOnly := false
	logLevel := DefaultLogLevel
	logFile := AppLogFile

	return &data.Flags{
		Profile:  &profile,
		Region:   &region,
		Resource: &resource,
		PageSize: &pageSize,
		Demo:     &demo,
		ReadOnly: &readOnly,
		LogLevel: &logLevel,
		LogFile:  &logFile,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
