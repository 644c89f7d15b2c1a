package board

import "context"

// ListFilter selects a page of a user's boards, newest update first.
type ListFilter struct {
	UserID   uint
	Page     int
	PageSize int
}

// Repository is the record-store contract for boards. Lookups are always
// scoped to the owning user; a board belonging to someone else reads as
// not found.
type Repository interface {
	Create(ctx context.Context, board *Board) error
	Update(ctx context.Context, board *Board) error
	GetByID(ctx context.Context, id, userID uint) (*Board, error)
	List(ctx context.Context, filter ListFilter) ([]*Board, int64, error)
	Delete(ctx context.Context, id, userID uint) error
}
