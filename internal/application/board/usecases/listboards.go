package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	"checkmate/internal/shared/logger"
)

type ListBoardsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListBoardsResult struct {
	Boards []*board.Board
	Total  int64
}

type ListBoardsUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewListBoardsUseCase(boardRepo board.Repository, logger logger.Interface) *ListBoardsUseCase {
	return &ListBoardsUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *ListBoardsUseCase) Execute(ctx context.Context, query ListBoardsQuery) (*ListBoardsResult, error) {
	boards, total, err := uc.boardRepo.List(ctx, board.ListFilter{
		UserID:   query.UserID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list boards", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	return &ListBoardsResult{Boards: boards, Total: total}, nil
}
