package todos

import (
	"time"

	"gorm.io/gorm"
)

type TodoList struct {
	ID             int64          `gorm:"primaryKey;autoIncrement"`
	Name           string         `gorm:"not null"`
	CompletedCount int64          `gorm:"not null;default:0"`
	TotalCount     int64          `gorm:"not null;default:0"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type TodoItem struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	ListID    int64          `gorm:"index;not null"`
	Name      string         `gorm:"not null"`
	Text      string         `gorm:"not null;default:''"`
	IsDone    bool           `gorm:"not null;default:false"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ListView is a TodoList as returned to callers, with the derived progress.
type ListView struct {
	TodoList
	Progress float64
}

type ListItemCounts struct {
	Total     int64
	Completed int64
}

type CreateTodoListInput struct {
	Name string
}

type UpdateTodoListInput struct {
	ID   int64
	Name *string
}

type CreateTodoItemInput struct {
	ListID int64
	Name   string
	Text   string
	IsDone bool
}

type UpdateTodoItemInput struct {
	ID     int64
	Name   *string
	Text   *string
	IsDone *bool
}

// CounterDelta is applied to a list's cached counters with SQL arithmetic.
type CounterDelta struct {
	Total     int64
	Completed int64
}

func (d CounterDelta) IsZero() bool {
	return d.Total == 0 && d.Completed == 0
}

func deletedAtPtr(deletedAt gorm.DeletedAt) *time.Time {
	if !deletedAt.Valid {
		return nil
	}
	t := deletedAt.Time
	return &t
}

// DeletedAtTime returns the soft-delete timestamp, or nil while the list is active.
func (l TodoList) DeletedAtTime() *time.Time {
	return deletedAtPtr(l.DeletedAt)
}

// DeletedAtTime returns the soft-delete timestamp, or nil while the item is active.
func (i TodoItem) DeletedAtTime() *time.Time {
	return deletedAtPtr(i.DeletedAt)
}
