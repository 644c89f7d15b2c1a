package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checkmate/internal/shared/errors"
)

func TestIsValidFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{
			name: "starting position",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: true,
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: true,
		},
		{
			name: "no castling rights",
			fen:  "8/8/8/4k3/8/8/4K3/8 w - - 10 40",
			want: true,
		},
		{
			name: "empty string",
			fen:  "",
			want: false,
		},
		{
			name: "too few ranks",
			fen:  "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: false,
		},
		{
			name: "rank does not sum to eight",
			fen:  "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: false,
		},
		{
			name: "rank overflows eight",
			fen:  "rnbqkbnr/pppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: false,
		},
		{
			name: "bad side to move",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
			want: false,
		},
		{
			name: "bad en passant square",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e5 0 1",
			want: false,
		},
		{
			name: "missing move counters",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
			want: false,
		},
		{
			name: "invalid piece letter",
			fen:  "rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFEN(tt.fen))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required,min=2,max=50"`
		FEN   string `json:"fen" validate:"omitempty,fen"`
	}

	valid := form{Email: "a@b.com", Name: "Alice"}
	assert.NoError(t, ValidateStruct(valid))

	invalid := form{Email: "nope", Name: "A", FEN: "also nope"}
	err := ValidateStruct(invalid)
	assert.Error(t, err)

	appErr := errors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	// Field names come from json tags, not struct fields.
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "name must be at least 2 characters long")
	assert.Contains(t, appErr.Details, "fen must be a valid FEN position")
}
