package usecases

import (
	"context"
	"fmt"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

type CreateBoardCommand struct {
	UserID      uint
	Name        string
	FEN         string
	PGN         string
	Orientation string
	Notes       string
}

type CreateBoardUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewCreateBoardUseCase(boardRepo board.Repository, logger logger.Interface) *CreateBoardUseCase {
	return &CreateBoardUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *CreateBoardUseCase) Execute(ctx context.Context, cmd CreateBoardCommand) (*board.Board, error) {
	if cmd.FEN != "" && !utils.IsValidFEN(cmd.FEN) {
		return nil, apperrors.NewValidationError("invalid FEN position")
	}

	newBoard, err := board.NewBoard(cmd.UserID, cmd.Name, cmd.FEN)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.PGN != "" {
		newBoard.PGN = cmd.PGN
	}
	if cmd.Orientation == "black" {
		newBoard.Orientation = "black"
	}
	if cmd.Notes != "" {
		newBoard.Notes = cmd.Notes
	}

	if err := uc.boardRepo.Create(ctx, newBoard); err != nil {
		uc.logger.Errorw("failed to create board", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return newBoard, nil
}
