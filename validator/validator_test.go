package validator

import (
	"testing"

	apperrors "hotelpms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	RoomID   uint   `validate:"required"`
	Guests   int    `validate:"gte=1,lte=8"`
	RoomType string `validate:"omitempty,roomtype"`
	Status   string `validate:"omitempty,reservationstatus"`
	Task     string `validate:"omitempty,tasktype"`
	Source   string `validate:"omitempty,oneof=walk_in phone"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(bookingInput{RoomID: 1, Guests: 2, RoomType: "suite", Status: "checked_in", Task: "turndown"}))

	err := ValidateStruct(bookingInput{Guests: 9})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	assert.Contains(t, err.Error(), "roomID is required")
	assert.Contains(t, err.Error(), "guests must be at most 8")
}

func TestValidateStruct_CustomTags(t *testing.T) {
	tests := map[string]bookingInput{
		"room type":  {RoomID: 1, Guests: 1, RoomType: "penthouse"},
		"status":     {RoomID: 1, Guests: 1, Status: "no_show"},
		"task type":  {RoomID: 1, Guests: 1, Task: "laundry"},
		"enum value": {RoomID: 1, Guests: 1, Source: "fax"},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			assert.True(t, apperrors.Is(ValidateStruct(in), apperrors.ErrCodeValidation))
		})
	}
}
