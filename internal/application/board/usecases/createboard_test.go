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

func TestCreateBoard_Defaults(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewCreateBoardUseCase(repo, logger.NewLogger())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*board.Board")).Return(nil)

	created, err := uc.Execute(context.Background(), CreateBoardCommand{
		UserID: 1,
		Name:   "Scratch Board",
	})

	require.NoError(t, err)
	assert.Equal(t, board.DefaultFEN, created.FEN)
	assert.Equal(t, "white", created.Orientation)
	repo.AssertExpectations(t)
}

func TestCreateBoard_CustomPosition(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewCreateBoardUseCase(repo, logger.NewLogger())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*board.Board")).Return(nil)

	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	created, err := uc.Execute(context.Background(), CreateBoardCommand{
		UserID:      1,
		Name:        "King's Pawn",
		FEN:         fen,
		PGN:         "1. e4",
		Orientation: "black",
		Notes:       "# Study\n\nOpen games.",
	})

	require.NoError(t, err)
	assert.Equal(t, fen, created.FEN)
	assert.Equal(t, "1. e4", created.PGN)
	assert.Equal(t, "black", created.Orientation)
	assert.Equal(t, "# Study\n\nOpen games.", created.Notes)
}

func TestCreateBoard_RejectsBadFEN(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewCreateBoardUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateBoardCommand{
		UserID: 1,
		Name:   "Broken",
		FEN:    "not a position",
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
