package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identifierStruct struct {
	PlayerID string `json:"player_id" validate:"required,identifier,max=64"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Timezone string `validate:"omitempty,timezone"`
}

func TestValidator_Identifier(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		playerID string
		wantErr  bool
	}{
		{"plain", "player-1", false},
		{"uuid", "0d6f5cc4-0e4b-4c55-a0a8-1f4d9d3b7a11", false},
		{"empty", "", true},
		{"space", "player 1", true},
		{"newline", "player\n1", true},
		{"nul", "player\x001", true},
		{"too long", strings.Repeat("p", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(identifierStruct{PlayerID: tt.playerID, Amount: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(identifierStruct{
		PlayerID: "bad id",
		Amount:   0,
		Timezone: "Mars/Olympus",
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Contains invalid characters", fields["player_id"])
	assert.Equal(t, "Must be greater than 0", fields["amount"])
	assert.Equal(t, "Unknown time zone", fields["timezone"])
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
