package services

import (
	"errors"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
)

// persistence wraps store failures, leaving already classified errors untouched
func persistence(op string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrPersistence):
		return err
	}
	return apperrors.Persistence(op, err)
}
