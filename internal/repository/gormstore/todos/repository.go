package todos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	todosdomain "todo-lists-api/internal/domain/todos"
)

// GormRepository stores lists and items through GORM. Soft deletion relies on
// gorm.DeletedAt, so every query below only sees active rows unless Unscoped.
type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(todosdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) ListTodoLists(ctx context.Context) ([]todosdomain.TodoList, error) {
	var lists []todosdomain.TodoList
	if err := r.db.WithContext(ctx).Order("id asc").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("list todo lists: %w", err)
	}
	return lists, nil
}

func (r *GormRepository) GetTodoListByID(ctx context.Context, listID int64) (*todosdomain.TodoList, error) {
	var list todosdomain.TodoList
	if err := r.db.WithContext(ctx).Where("id = ?", listID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, todosdomain.ErrTodoListNotFound
		}
		return nil, fmt.Errorf("get todo list %d: %w", listID, err)
	}
	return &list, nil
}

func (r *GormRepository) CreateTodoList(ctx context.Context, list *todosdomain.TodoList) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return fmt.Errorf("create todo list: %w", err)
	}
	return nil
}

func (r *GormRepository) UpdateTodoListName(ctx context.Context, listID int64, name string) error {
	err := r.db.WithContext(ctx).
		Model(&todosdomain.TodoList{}).
		Where("id = ?", listID).
		Update("name", name).Error
	if err != nil {
		return fmt.Errorf("update todo list %d: %w", listID, err)
	}
	return nil
}

func (r *GormRepository) SoftDeleteTodoList(ctx context.Context, listID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&todosdomain.TodoList{}, "id = ?", listID)
	if result.Error != nil {
		return false, fmt.Errorf("delete todo list %d: %w", listID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// AdjustListCounters shifts the cached counters of an active list. It reports
// false when the list is missing or deleted; nothing is changed in that case.
func (r *GormRepository) AdjustListCounters(ctx context.Context, listID int64, delta todosdomain.CounterDelta) (bool, error) {
	if delta.IsZero() {
		return true, nil
	}

	result := r.db.WithContext(ctx).
		Model(&todosdomain.TodoList{}).
		Where("id = ?", listID).
		Updates(map[string]interface{}{
			"total_count":     gorm.Expr("total_count + ?", delta.Total),
			"completed_count": gorm.Expr("completed_count + ?", delta.Completed),
		})
	if result.Error != nil {
		return false, fmt.Errorf("adjust counters of todo list %d: %w", listID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *GormRepository) CountItemsByListIDs(ctx context.Context, listIDs []int64) (map[int64]todosdomain.ListItemCounts, error) {
	result := make(map[int64]todosdomain.ListItemCounts, len(listIDs))
	if len(listIDs) == 0 {
		return result, nil
	}

	type row struct {
		ListID    int64 `gorm:"column:list_id"`
		Total     int64 `gorm:"column:items_total"`
		Completed int64 `gorm:"column:items_completed"`
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&todosdomain.TodoItem{}).
		Select(`
			list_id,
			COUNT(*) as items_total,
			SUM(CASE WHEN is_done THEN 1 ELSE 0 END) as items_completed`).
		Where("list_id IN ?", listIDs).
		Group("list_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("count todo items: %w", err)
	}

	for _, item := range rows {
		result[item.ListID] = todosdomain.ListItemCounts{
			Total:     item.Total,
			Completed: item.Completed,
		}
	}

	return result, nil
}

func (r *GormRepository) ListTodoItems(ctx context.Context, listID int64) ([]todosdomain.TodoItem, error) {
	var items []todosdomain.TodoItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list todo items of list %d: %w", listID, err)
	}
	return items, nil
}

func (r *GormRepository) GetTodoItemByID(ctx context.Context, itemID int64) (*todosdomain.TodoItem, error) {
	var item todosdomain.TodoItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, todosdomain.ErrTodoItemNotFound
		}
		return nil, fmt.Errorf("get todo item %d: %w", itemID, err)
	}
	return &item, nil
}

func (r *GormRepository) CreateTodoItem(ctx context.Context, item *todosdomain.TodoItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create todo item: %w", err)
	}
	return nil
}

func (r *GormRepository) UpdateTodoItem(ctx context.Context, item *todosdomain.TodoItem) error {
	err := r.db.WithContext(ctx).
		Model(&todosdomain.TodoItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":    item.Name,
			"text":    item.Text,
			"is_done": item.IsDone,
		}).Error
	if err != nil {
		return fmt.Errorf("update todo item %d: %w", item.ID, err)
	}
	return nil
}

func (r *GormRepository) SoftDeleteTodoItem(ctx context.Context, itemID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&todosdomain.TodoItem{}, "id = ?", itemID)
	if result.Error != nil {
		return false, fmt.Errorf("delete todo item %d: %w", itemID, result.Error)
	}
	return result.RowsAffected > 0, nil
}
