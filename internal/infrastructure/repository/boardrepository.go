package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"checkmate/internal/domain/board"
	"checkmate/internal/infrastructure/persistence/mappers"
	"checkmate/internal/infrastructure/persistence/models"
	apperrors "checkmate/internal/shared/errors"
	"checkmate/internal/shared/logger"
)

// BoardRepository implements the board repository interface on gorm. Every
// lookup is scoped to the owning user.
type BoardRepository struct {
	db     *gorm.DB
	mapper mappers.BoardMapper
	logger logger.Interface
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB, logger logger.Interface) board.Repository {
	return &BoardRepository{
		db:     db,
		mapper: mappers.NewBoardMapper(),
		logger: logger,
	}
}

// Create inserts a new board and writes the generated ID back.
func (r *BoardRepository) Create(ctx context.Context, entity *board.Board) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map board entity to model", "error", err)
		return fmt.Errorf("failed to map board entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create board in database", "error", err)
		return apperrors.NewStoreUnavailableError("failed to create board")
	}

	entity.ID = model.ID
	r.logger.Infow("board created", "id", model.ID, "user_id", model.UserID)
	return nil
}

// Update saves the board row.
func (r *BoardRepository) Update(ctx context.Context, entity *board.Board) error {
	if entity.ID == 0 {
		return fmt.Errorf("cannot update board without ID")
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map board entity to model", "id", entity.ID, "error", err)
		return fmt.Errorf("failed to map board entity: %w", err)
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entity.ID, entity.UserID).
		Omit("CreatedAt").
		Save(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update board in database", "id", entity.ID, "error", result.Error)
		return apperrors.NewStoreUnavailableError("failed to update board")
	}

	return nil
}

// GetByID retrieves a board by ID, scoped to the owner. A board owned by
// another user reads as not found.
func (r *BoardRepository) GetByID(ctx context.Context, id, userID uint) (*board.Board, error) {
	var model models.BoardModel

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get board by ID", "id", id, "error", err)
		return nil, apperrors.NewStoreUnavailableError("failed to get board")
	}

	return r.mapper.ToEntity(&model)
}

// List returns a page of the user's boards ordered by most recent update.
func (r *BoardRepository) List(ctx context.Context, filter board.ListFilter) ([]*board.Board, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BoardModel{}).
		Where("user_id = ?", filter.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count boards", "user_id", filter.UserID, "error", err)
		return nil, 0, apperrors.NewStoreUnavailableError("failed to count boards")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var modelList []*models.BoardModel
	err := query.Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list boards", "user_id", filter.UserID, "error", err)
		return nil, 0, apperrors.NewStoreUnavailableError("failed to list boards")
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// Delete removes a board, scoped to the owner. Deleting a board that does
// not exist or belongs to someone else reports not found via RowsAffected.
func (r *BoardRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.BoardModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete board", "id", id, "error", result.Error)
		return apperrors.NewStoreUnavailableError("failed to delete board")
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Chess board not found")
	}

	r.logger.Infow("board deleted", "id", id, "user_id", userID)
	return nil
}
