package entity

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// MaxTitleLength is the maximum number of characters stored for a title.
	MaxTitleLength = 255
	// MaxDescriptionLength is the maximum number of characters stored for a description.
	MaxDescriptionLength = 2000
)

// Tutorial is a titled, described, publishable record.
// ID is assigned by the datastore on insert and never changes afterwards.
type Tutorial struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// Validate checks the mutable fields of the tutorial.
// It returns a *ValidationError describing the first failing field.
func (t *Tutorial) Validate() error {
	err := validation.ValidateStruct(t,
		validation.Field(&t.Title,
			validation.Required.Error("is required"),
			validation.By(notBlank),
			validation.RuneLength(1, MaxTitleLength),
		),
		validation.Field(&t.Description,
			validation.RuneLength(0, MaxDescriptionLength),
		),
	)
	return toValidationError(err)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// toValidationError flattens ozzo-validation's field map into a single
// ValidationError. Fields are visited in name order so the result is stable.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return &ValidationError{Field: fields[0], Message: fieldErrs[fields[0]].Error()}
}
