package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/services/markdown"
)

func TestGetBoard_RendersNotes(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewGetBoardUseCase(repo, markdown.NewService(), logger.NewLogger())

	existing := savedBoard(t, 5, 1, "Annotated")
	existing.Notes = "Play **e4** first."
	repo.On("GetByID", mock.Anything, uint(5), uint(1)).Return(existing, nil)

	result, err := uc.Execute(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, existing, result.Board)
	assert.Contains(t, result.NotesHTML, "<strong>e4</strong>")
	// Raw markdown stays untouched on the board itself.
	assert.Equal(t, "Play **e4** first.", result.Board.Notes)
}

func TestGetBoard_NoNotesNoHTML(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewGetBoardUseCase(repo, markdown.NewService(), logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(5), uint(1)).Return(savedBoard(t, 5, 1, "Plain"), nil)

	result, err := uc.Execute(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Empty(t, result.NotesHTML)
}

func TestGetBoard_NotFound(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewGetBoardUseCase(repo, markdown.NewService(), logger.NewLogger())

	repo.On("GetByID", mock.Anything, uint(9), uint(1)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), 9, 1)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
