package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Tiku/internal/ingest"
	"github.com/lshigami/Tiku/internal/model"
)

var (
	ErrUnsupportedFormat      = ingest.ErrUnsupportedFormat
	ErrInvalidQuestion        = model.ErrInvalidQuestion
	ErrUnreadableSpreadsheet  = errors.New("spreadsheet could not be read")
	ErrSessionAlreadyActive   = errors.New("an exam session is already in progress")
	ErrNotFound               = errors.New("resource not found")
	ErrForbidden              = errors.New("resource belongs to another user")
	ErrAlreadyCompleted       = errors.New("exam session already completed")
	ErrDuplicateQuestion      = errors.New("a question with identical text already exists")
	ErrExplanationUnavailable = errors.New("explanation generator is not configured")
)

// ActiveSessionError carries the id of the in-progress session that blocked
// a start request. It matches ErrSessionAlreadyActive with errors.Is.
type ActiveSessionError struct {
	SessionID uint
}

func (e *ActiveSessionError) Error() string {
	return fmt.Sprintf("%s (exam_id=%d)", ErrSessionAlreadyActive, e.SessionID)
}

func (e *ActiveSessionError) Unwrap() error {
	return ErrSessionAlreadyActive
}
