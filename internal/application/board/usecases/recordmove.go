package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

type RecordMoveCommand struct {
	BoardID uint
	UserID  uint
	Move    string
	FEN     string
}

type RecordMoveUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewRecordMoveUseCase(boardRepo board.Repository, logger logger.Interface) *RecordMoveUseCase {
	return &RecordMoveUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *RecordMoveUseCase) Execute(ctx context.Context, cmd RecordMoveCommand) (*board.Board, error) {
	if cmd.Move == "" {
		return nil, apperrors.NewValidationError("move is required")
	}
	if !utils.IsValidFEN(cmd.FEN) {
		return nil, apperrors.NewValidationError("invalid FEN position")
	}

	existing, err := uc.boardRepo.GetByID(ctx, cmd.BoardID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get board", "id", cmd.BoardID, "error", err)
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("Chess board not found")
	}

	existing.RecordMove(cmd.Move, cmd.FEN)

	if err := uc.boardRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to save move", "id", cmd.BoardID, "error", err)
		return nil, fmt.Errorf("failed to save move: %w", err)
	}

	return existing, nil
}
