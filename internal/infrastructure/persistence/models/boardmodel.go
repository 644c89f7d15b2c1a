package models

import (
	"time"

	"gorm.io/datatypes"

	"checkmate/internal/shared/constants"
)

// BoardModel is the persistence model for saved chess boards. Position and
// history payloads are stored as JSON columns; the database never inspects
// them.
type BoardModel struct {
	ID              uint   `gorm:"primarykey"`
	UserID          uint   `gorm:"not null;index:idx_board_user_id"`
	Name            string `gorm:"not null;size:100"`
	FEN             string `gorm:"not null;size:255;column:fen"`
	GameState       datatypes.JSON
	AnalysisResults datatypes.JSON
	PGN             string `gorm:"type:text;column:pgn"`
	GameHistory     datatypes.JSON
	Orientation     string `gorm:"size:10;default:white"`
	Notes           string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (BoardModel) TableName() string {
	return constants.TableChessBoards
}
