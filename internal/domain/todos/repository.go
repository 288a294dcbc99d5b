package todos

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListTodoLists(ctx context.Context) ([]TodoList, error)
	GetTodoListByID(ctx context.Context, listID int64) (*TodoList, error)
	CreateTodoList(ctx context.Context, list *TodoList) error
	UpdateTodoListName(ctx context.Context, listID int64, name string) error
	SoftDeleteTodoList(ctx context.Context, listID int64) (bool, error)
	AdjustListCounters(ctx context.Context, listID int64, delta CounterDelta) (bool, error)
	CountItemsByListIDs(ctx context.Context, listIDs []int64) (map[int64]ListItemCounts, error)
	ListTodoItems(ctx context.Context, listID int64) ([]TodoItem, error)
	GetTodoItemByID(ctx context.Context, itemID int64) (*TodoItem, error)
	CreateTodoItem(ctx context.Context, item *TodoItem) error
	UpdateTodoItem(ctx context.Context, item *TodoItem) error
	SoftDeleteTodoItem(ctx context.Context, itemID int64) (bool, error)
}
