package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError itemizes which request fields were rejected and why.
// Validation always runs before any storage access, so a request that fails
// here never reaches the database.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

// fieldErrors collects field failures and converts to a ValidationError only
// when at least one field was rejected.
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
