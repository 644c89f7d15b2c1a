package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/services/markdown"
)

type GetBoardResult struct {
	Board     *board.Board
	NotesHTML string
}

type GetBoardUseCase struct {
	boardRepo board.Repository
	markdown  markdown.Service
	logger    logger.Interface
}

func NewGetBoardUseCase(boardRepo board.Repository, markdownSvc markdown.Service, logger logger.Interface) *GetBoardUseCase {
	return &GetBoardUseCase{
		boardRepo: boardRepo,
		markdown:  markdownSvc,
		logger:    logger,
	}
}

func (uc *GetBoardUseCase) Execute(ctx context.Context, id, userID uint) (*GetBoardResult, error) {
	existing, err := uc.boardRepo.GetByID(ctx, id, userID)
	if err != nil {
		uc.logger.Errorw("failed to get board", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("Chess board not found")
	}

	result := &GetBoardResult{Board: existing}
	if existing.Notes != "" {
		rendered, err := uc.markdown.ToHTMLSanitized(existing.Notes)
		if err != nil {
			uc.logger.Warnw("failed to render board notes", "id", id, "error", err)
		} else {
			result.NotesHTML = rendered
		}
	}

	return result, nil
}
