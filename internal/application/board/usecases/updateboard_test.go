package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

func TestUpdateBoard_PartialUpdate(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewUpdateBoardUseCase(repo, logger.NewLogger())

	existing := savedBoard(t, 3, 1, "Old Name")
	repo.On("GetByID", mock.Anything, uint(3), uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	updated, err := uc.Execute(context.Background(), UpdateBoardCommand{
		ID:     3,
		UserID: 1,
		Name:   strPtr("New Name"),
		Notes:  strPtr("updated notes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "updated notes", updated.Notes)
	// Untouched fields survive a partial update.
	assert.Equal(t, board.DefaultFEN, updated.FEN)
	assert.Equal(t, "white", updated.Orientation)
}

func TestUpdateBoard_FENAdvancesGameState(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewUpdateBoardUseCase(repo, logger.NewLogger())

	existing := savedBoard(t, 3, 1, "Test")
	repo.On("GetByID", mock.Anything, uint(3), uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	updated, err := uc.Execute(context.Background(), UpdateBoardCommand{
		ID:     3,
		UserID: 1,
		FEN:    &fen,
	})

	require.NoError(t, err)
	assert.Equal(t, fen, updated.FEN)
	assert.Equal(t, fen, updated.GameState.FEN)
}

func TestUpdateBoard_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateBoardCommand
	}{
		{name: "bad FEN", cmd: UpdateBoardCommand{ID: 3, UserID: 1, FEN: strPtr("garbage")}},
		{name: "empty name", cmd: UpdateBoardCommand{ID: 3, UserID: 1, Name: strPtr("")}},
		{name: "bad orientation", cmd: UpdateBoardCommand{ID: 3, UserID: 1, Orientation: strPtr("sideways")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockBoardRepository)
			uc := NewUpdateBoardUseCase(repo, logger.NewLogger())

			repo.On("GetByID", mock.Anything, uint(3), uint(1)).Return(savedBoard(t, 3, 1, "Test"), nil)

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateBoard_NotFoundForOtherOwner(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewUpdateBoardUseCase(repo, logger.NewLogger())

	// The store scopes lookups by owner, so someone else's board reads as nil.
	repo.On("GetByID", mock.Anything, uint(3), uint(2)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), UpdateBoardCommand{ID: 3, UserID: 2})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
