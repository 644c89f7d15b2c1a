package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

type AddAnalysisCommand struct {
	BoardID uint
	UserID  uint
	Result  board.AnalysisResult
}

type AddAnalysisUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewAddAnalysisUseCase(boardRepo board.Repository, logger logger.Interface) *AddAnalysisUseCase {
	return &AddAnalysisUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *AddAnalysisUseCase) Execute(ctx context.Context, cmd AddAnalysisCommand) (*board.Board, error) {
	if cmd.Result.BestMove == "" {
		return nil, apperrors.NewValidationError("best move is required")
	}

	existing, err := uc.boardRepo.GetByID(ctx, cmd.BoardID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get board", "id", cmd.BoardID, "error", err)
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("Chess board not found")
	}

	existing.AddAnalysis(cmd.Result)

	if err := uc.boardRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to save analysis", "id", cmd.BoardID, "error", err)
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return existing, nil
}
