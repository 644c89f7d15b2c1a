package board

import (
	"fmt"
	"strings"
	"time"
)

// DefaultFEN is the standard chess starting position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// GameState captures the live position of a board.
type GameState struct {
	FEN       string `json:"fen"`
	Turn      string `json:"turn"`
	Castling  string `json:"castling"`
	EnPassant string `json:"en_passant"`
	HalfMove  int    `json:"half_move"`
	FullMove  int    `json:"full_move"`
}

// AnalysisResult is one engine evaluation attached to a board.
type AnalysisResult struct {
	BestMove           string    `json:"best_move"`
	Evaluation         float64   `json:"evaluation"`
	PrincipalVariation string    `json:"principal_variation"`
	Depth              int       `json:"depth"`
	Timestamp          time.Time `json:"timestamp"`
}

// HistoryEntry is one played move with the resulting position.
type HistoryEntry struct {
	Move      string    `json:"move"`
	FEN       string    `json:"fen"`
	Timestamp time.Time `json:"timestamp"`
}

// Board is a saved chess board owned by one user.
type Board struct {
	ID              uint
	UserID          uint
	Name            string
	FEN             string
	GameState       GameState
	AnalysisResults []AnalysisResult
	PGN             string
	GameHistory     []HistoryEntry
	Orientation     string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBoard creates a board for the given owner. An empty fen falls back to
// the starting position.
func NewBoard(userID uint, name, fen string) (*Board, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("board name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("board name cannot exceed 100 characters")
	}

	if fen == "" {
		fen = DefaultFEN
	}

	now := time.Now()
	return &Board{
		UserID: userID,
		Name:   name,
		FEN:    fen,
		GameState: GameState{
			FEN:       fen,
			Turn:      "w",
			Castling:  "KQkq",
			EnPassant: "-",
			FullMove:  1,
		},
		Orientation: "white",
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// RecordMove appends a move to the history and advances the position.
func (b *Board) RecordMove(move, fen string) {
	b.GameHistory = append(b.GameHistory, HistoryEntry{
		Move:      move,
		FEN:       fen,
		Timestamp: time.Now(),
	})
	b.FEN = fen
	b.GameState.FEN = fen
	b.UpdatedAt = time.Now()
}

// AddAnalysis appends an engine evaluation.
func (b *Board) AddAnalysis(result AnalysisResult) {
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}
	b.AnalysisResults = append(b.AnalysisResults, result)
	b.UpdatedAt = time.Now()
}
