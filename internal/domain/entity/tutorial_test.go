package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorial_ZeroValue(t *testing.T) {
	var tut Tutorial

	assert.Equal(t, int64(0), tut.ID)
	assert.Equal(t, "", tut.Title)
	assert.Equal(t, "", tut.Description)
	assert.False(t, tut.Published) // published defaults to false
}

func TestTutorial_Validate(t *testing.T) {
	tests := []struct {
		name      string
		tutorial  Tutorial
		wantField string
	}{
		{
			name:     "valid",
			tutorial: Tutorial{Title: "Go Basics", Description: "Learn Go"},
		},
		{
			name:     "valid without description",
			tutorial: Tutorial{Title: "Go Basics"},
		},
		{
			name:      "empty title",
			tutorial:  Tutorial{Description: "Learn Go"},
			wantField: "title",
		},
		{
			name:      "blank title",
			tutorial:  Tutorial{Title: "   ", Description: "Learn Go"},
			wantField: "title",
		},
		{
			name:      "title too long",
			tutorial:  Tutorial{Title: strings.Repeat("a", MaxTitleLength+1)},
			wantField: "title",
		},
		{
			name:     "multibyte title at limit",
			tutorial: Tutorial{Title: strings.Repeat("あ", MaxTitleLength)},
		},
		{
			name:      "description too long",
			tutorial:  Tutorial{Title: "Go", Description: strings.Repeat("d", MaxDescriptionLength+1)},
			wantField: "description",
		},
		{
			name:      "both invalid reports description first",
			tutorial:  Tutorial{Description: strings.Repeat("d", MaxDescriptionLength+1)},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tutorial.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestTutorial_Validate_RequiredMessage(t *testing.T) {
	tut := Tutorial{}

	err := tut.Validate()

	require.Error(t, err)
	assert.Equal(t, "validation error on field 'title': is required", err.Error())
}
