package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

type DeleteBoardUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewDeleteBoardUseCase(boardRepo board.Repository, logger logger.Interface) *DeleteBoardUseCase {
	return &DeleteBoardUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *DeleteBoardUseCase) Execute(ctx context.Context, id, userID uint) error {
	if err := uc.boardRepo.Delete(ctx, id, userID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete board", "id", id, "error", err)
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
