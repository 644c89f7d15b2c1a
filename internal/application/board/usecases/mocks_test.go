package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checkmate/internal/domain/board"
)

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) Create(ctx context.Context, b *board.Board) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBoardRepository) Update(ctx context.Context, b *board.Board) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBoardRepository) GetByID(ctx context.Context, id, userID uint) (*board.Board, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*board.Board), args.Error(1)
}

func (m *mockBoardRepository) List(ctx context.Context, filter board.ListFilter) ([]*board.Board, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*board.Board), args.Get(1).(int64), args.Error(2)
}

func (m *mockBoardRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func savedBoard(t *testing.T, id, userID uint, name string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(userID, name, "")
	require.NoError(t, err)
	b.ID = id
	return b
}

func strPtr(s string) *string { return &s }
