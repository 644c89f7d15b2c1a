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

func TestRecordMove_AppendsHistory(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewRecordMoveUseCase(repo, logger.NewLogger())

	existing := savedBoard(t, 3, 1, "Live Game")
	repo.On("GetByID", mock.Anything, uint(3), uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	updated, err := uc.Execute(context.Background(), RecordMoveCommand{
		BoardID: 3,
		UserID:  1,
		Move:    "e4",
		FEN:     fen,
	})

	require.NoError(t, err)
	require.Len(t, updated.GameHistory, 1)
	assert.Equal(t, "e4", updated.GameHistory[0].Move)
	assert.Equal(t, fen, updated.FEN)
}

func TestRecordMove_Validation(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewRecordMoveUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RecordMoveCommand{
		BoardID: 3, UserID: 1, Move: "", FEN: board.DefaultFEN,
	})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), RecordMoveCommand{
		BoardID: 3, UserID: 1, Move: "e4", FEN: "garbage",
	})
	assert.Error(t, err)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddAnalysis_AppendsResult(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewAddAnalysisUseCase(repo, logger.NewLogger())

	existing := savedBoard(t, 4, 1, "Analyzed")
	repo.On("GetByID", mock.Anything, uint(4), uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	updated, err := uc.Execute(context.Background(), AddAnalysisCommand{
		BoardID: 4,
		UserID:  1,
		Result:  board.AnalysisResult{BestMove: "Nf3", Evaluation: 0.3, Depth: 18},
	})

	require.NoError(t, err)
	require.Len(t, updated.AnalysisResults, 1)
	assert.Equal(t, "Nf3", updated.AnalysisResults[0].BestMove)
	assert.False(t, updated.AnalysisResults[0].Timestamp.IsZero())
}

func TestAddAnalysis_RequiresBestMove(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewAddAnalysisUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddAnalysisCommand{BoardID: 4, UserID: 1})

	require.Error(t, err)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestListBoards_PassesFilterThrough(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewListBoardsUseCase(repo, logger.NewLogger())

	boards := []*board.Board{savedBoard(t, 1, 7, "A"), savedBoard(t, 2, 7, "B")}
	repo.On("List", mock.Anything, board.ListFilter{UserID: 7, Page: 2, PageSize: 10}).
		Return(boards, int64(12), nil)

	result, err := uc.Execute(context.Background(), ListBoardsQuery{UserID: 7, Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, result.Boards, 2)
	assert.Equal(t, int64(12), result.Total)
}

func TestDeleteBoard_NotFound(t *testing.T) {
	repo := new(mockBoardRepository)
	uc := NewDeleteBoardUseCase(repo, logger.NewLogger())

	repo.On("Delete", mock.Anything, uint(9), uint(1)).
		Return(apperrors.NewNotFoundError("Chess board not found"))

	err := uc.Execute(context.Background(), 9, 1)

	assert.True(t, apperrors.IsNotFound(err))
}
