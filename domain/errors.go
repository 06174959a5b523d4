package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidRequest = errors.New("invalid request")

type LanguageRole string

const (
	SourceLanguageRole LanguageRole = "source"
	TargetLanguageRole LanguageRole = "target"
)

// UnsupportedLanguageError is returned when a tag has no profile for the role it is used in.
type UnsupportedLanguageError struct {
	Tag  string
	Role LanguageRole
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported %s language %q", e.Role, e.Tag)
}

// UpstreamServiceError wraps a failure of a managed service call.
type UpstreamServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamServiceError) Unwrap() error {
	return e.Err
}

// ResourceError wraps a failure of local temporary storage.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func invalidRequest(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
}
