package usecases

import (
	"context"
	"fmt"
	"time"

	"checkmate/internal/domain/board"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

// UpdateBoardCommand carries a partial update; nil fields are left as-is.
type UpdateBoardCommand struct {
	ID              uint
	UserID          uint
	Name            *string
	FEN             *string
	GameState       *board.GameState
	AnalysisResults []board.AnalysisResult
	PGN             *string
	GameHistory     []board.HistoryEntry
	Orientation     *string
	Notes           *string
}

type UpdateBoardUseCase struct {
	boardRepo board.Repository
	logger    logger.Interface
}

func NewUpdateBoardUseCase(boardRepo board.Repository, logger logger.Interface) *UpdateBoardUseCase {
	return &UpdateBoardUseCase{
		boardRepo: boardRepo,
		logger:    logger,
	}
}

func (uc *UpdateBoardUseCase) Execute(ctx context.Context, cmd UpdateBoardCommand) (*board.Board, error) {
	existing, err := uc.boardRepo.GetByID(ctx, cmd.ID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get board", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("Chess board not found")
	}

	if cmd.Name != nil {
		name := *cmd.Name
		if name == "" || len(name) > 100 {
			return nil, apperrors.NewValidationError("board name must be 1-100 characters")
		}
		existing.Name = name
	}
	if cmd.FEN != nil {
		if !utils.IsValidFEN(*cmd.FEN) {
			return nil, apperrors.NewValidationError("invalid FEN position")
		}
		existing.FEN = *cmd.FEN
		existing.GameState.FEN = *cmd.FEN
	}
	if cmd.GameState != nil {
		existing.GameState = *cmd.GameState
	}
	if cmd.AnalysisResults != nil {
		existing.AnalysisResults = cmd.AnalysisResults
	}
	if cmd.PGN != nil {
		existing.PGN = *cmd.PGN
	}
	if cmd.GameHistory != nil {
		existing.GameHistory = cmd.GameHistory
	}
	if cmd.Orientation != nil {
		if *cmd.Orientation != "white" && *cmd.Orientation != "black" {
			return nil, apperrors.NewValidationError("orientation must be white or black")
		}
		existing.Orientation = *cmd.Orientation
	}
	if cmd.Notes != nil {
		existing.Notes = *cmd.Notes
	}
	existing.UpdatedAt = time.Now()

	if err := uc.boardRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update board", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return existing, nil
}
