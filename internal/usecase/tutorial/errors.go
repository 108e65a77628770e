// Package tutorial provides use cases for managing tutorials.
// It implements listing, filtering, creation, partial update and deletion
// on top of the tutorial repository.
package tutorial

import (
	"errors"
	"fmt"

	"tutorial-api/internal/domain/entity"
)

// Sentinel errors for tutorial use case operations.
var (
	// ErrTutorialNotFound indicates that no tutorial exists with the requested ID.
	// It matches entity.ErrNotFound under errors.Is.
	ErrTutorialNotFound = fmt.Errorf("tutorial not found: %w", entity.ErrNotFound)

	// ErrInvalidTutorialID indicates that the tutorial ID is not a positive integer.
	ErrInvalidTutorialID = fmt.Errorf("invalid tutorial id: %w", entity.ErrInvalidInput)
)

// IsNotFound reports whether err means the tutorial does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, entity.ErrNotFound)
}

// IsInvalidInput reports whether err was caused by caller input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, entity.ErrInvalidInput)
}
