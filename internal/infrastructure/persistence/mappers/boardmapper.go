package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"checkmate/internal/domain/board"
	"checkmate/internal/infrastructure/persistence/models"
	"checkmate/internal/shared/mapper"
)

// BoardMapper converts between the board domain entity and its persistence
// model. Position and history payloads round-trip through JSON columns.
type BoardMapper interface {
	ToEntity(model *models.BoardModel) (*board.Board, error)
	ToModel(entity *board.Board) (*models.BoardModel, error)
	ToEntities(models []*models.BoardModel) ([]*board.Board, error)
}

type BoardMapperImpl struct{}

func NewBoardMapper() BoardMapper {
	return &BoardMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *BoardMapperImpl) ToEntity(model *models.BoardModel) (*board.Board, error) {
	if model == nil {
		return nil, nil
	}

	entity := &board.Board{
		ID:          model.ID,
		UserID:      model.UserID,
		Name:        model.Name,
		FEN:         model.FEN,
		PGN:         model.PGN,
		Orientation: model.Orientation,
		Notes:       model.Notes,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if len(model.GameState) > 0 {
		if err := json.Unmarshal(model.GameState, &entity.GameState); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
		}
	}
	if len(model.AnalysisResults) > 0 {
		if err := json.Unmarshal(model.AnalysisResults, &entity.AnalysisResults); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis results: %w", err)
		}
	}
	if len(model.GameHistory) > 0 {
		if err := json.Unmarshal(model.GameHistory, &entity.GameHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game history: %w", err)
		}
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *BoardMapperImpl) ToModel(entity *board.Board) (*models.BoardModel, error) {
	if entity == nil {
		return nil, nil
	}

	gameState, err := json.Marshal(entity.GameState)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}

	model := &models.BoardModel{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Name:        entity.Name,
		FEN:         entity.FEN,
		GameState:   datatypes.JSON(gameState),
		PGN:         entity.PGN,
		Orientation: entity.Orientation,
		Notes:       entity.Notes,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}

	if entity.AnalysisResults != nil {
		data, err := json.Marshal(entity.AnalysisResults)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis results: %w", err)
		}
		model.AnalysisResults = datatypes.JSON(data)
	}
	if entity.GameHistory != nil {
		data, err := json.Marshal(entity.GameHistory)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal game history: %w", err)
		}
		model.GameHistory = datatypes.JSON(data)
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *BoardMapperImpl) ToEntities(modelList []*models.BoardModel) ([]*board.Board, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.BoardModel) uint { return model.ID })
}
