package todos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todo-lists-api/internal/config"
	"todo-lists-api/internal/db"
	todosdomain "todo-lists-api/internal/domain/todos"
	"todo-lists-api/migrations"
	"todo-lists-api/pkg/logger"
)

func newTestRepo(t *testing.T) (*GormRepository, *gorm.DB) {
	t.Helper()

	gormDB, err := db.Open(config.DBConfig{Driver: "sqlite", DSN: ":memory:"}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gormDB) })

	require.NoError(t, db.Migrate(gormDB, migrations.FS, logger.Discard()))
	return NewGorm(gormDB), gormDB
}

func createList(t *testing.T, repo *GormRepository, name string) *todosdomain.TodoList {
	t.Helper()
	list := &todosdomain.TodoList{Name: name}
	require.NoError(t, repo.CreateTodoList(context.Background(), list))
	require.NotZero(t, list.ID)
	return list
}

func createItem(t *testing.T, repo *GormRepository, listID int64, name string, done bool) *todosdomain.TodoItem {
	t.Helper()
	item := &todosdomain.TodoItem{ListID: listID, Name: name, IsDone: done}
	require.NoError(t, repo.CreateTodoItem(context.Background(), item))
	require.NotZero(t, item.ID)
	return item
}

func TestListLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	first := createList(t, repo, "first")
	second := createList(t, repo, "second")

	got, err := repo.GetTodoListByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
	assert.Zero(t, got.TotalCount)
	assert.Nil(t, got.DeletedAtTime())

	require.NoError(t, repo.UpdateTodoListName(ctx, first.ID, "renamed"))
	got, err = repo.GetTodoListByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	deleted, err := repo.SoftDeleteTodoList(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDeleteTodoList(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete must not match an already deleted list")

	_, err = repo.GetTodoListByID(ctx, second.ID)
	assert.ErrorIs(t, err, todosdomain.ErrTodoListNotFound)

	lists, err := repo.ListTodoLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, first.ID, lists[0].ID)
}

func TestSoftDeleteKeepsRow(t *testing.T) {
	ctx := context.Background()
	repo, gormDB := newTestRepo(t)

	list := createList(t, repo, "gone")
	_, err := repo.SoftDeleteTodoList(ctx, list.ID)
	require.NoError(t, err)

	var stored todosdomain.TodoList
	require.NoError(t, gormDB.Unscoped().First(&stored, list.ID).Error)
	require.NotNil(t, stored.DeletedAtTime())
	assert.Equal(t, "gone", stored.Name)
}

func TestAdjustListCounters(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	list := createList(t, repo, "counters")

	ok, err := repo.AdjustListCounters(ctx, list.ID, todosdomain.CounterDelta{Total: 2, Completed: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AdjustListCounters(ctx, list.ID, todosdomain.CounterDelta{Total: -1})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetTodoListByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalCount)
	assert.Equal(t, int64(1), got.CompletedCount)

	_, err = repo.SoftDeleteTodoList(ctx, list.ID)
	require.NoError(t, err)

	ok, err = repo.AdjustListCounters(ctx, list.ID, todosdomain.CounterDelta{Total: 5})
	require.NoError(t, err)
	assert.False(t, ok, "deleted list counters must not move")

	ok, err = repo.AdjustListCounters(ctx, 999, todosdomain.CounterDelta{Total: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	list := createList(t, repo, "items")
	other := createList(t, repo, "other")

	milk := createItem(t, repo, list.ID, "milk", false)
	eggs := createItem(t, repo, list.ID, "eggs", true)
	createItem(t, repo, other.ID, "elsewhere", false)

	items, err := repo.ListTodoItems(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, milk.ID, items[0].ID)
	assert.Equal(t, eggs.ID, items[1].ID)
	assert.True(t, items[1].IsDone)

	milk.Text = "oat"
	milk.IsDone = true
	require.NoError(t, repo.UpdateTodoItem(ctx, milk))

	got, err := repo.GetTodoItemByID(ctx, milk.ID)
	require.NoError(t, err)
	assert.Equal(t, "oat", got.Text)
	assert.True(t, got.IsDone)

	deleted, err := repo.SoftDeleteTodoItem(ctx, eggs.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetTodoItemByID(ctx, eggs.ID)
	assert.ErrorIs(t, err, todosdomain.ErrTodoItemNotFound)

	items, err = repo.ListTodoItems(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, milk.ID, items[0].ID)
}

func TestCountItemsByListIDs(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	list := createList(t, repo, "a")
	empty := createList(t, repo, "b")

	createItem(t, repo, list.ID, "one", true)
	createItem(t, repo, list.ID, "two", false)
	gone := createItem(t, repo, list.ID, "three", true)
	_, err := repo.SoftDeleteTodoItem(ctx, gone.ID)
	require.NoError(t, err)

	counts, err := repo.CountItemsByListIDs(ctx, []int64{list.ID, empty.ID})
	require.NoError(t, err)
	assert.Equal(t, todosdomain.ListItemCounts{Total: 2, Completed: 1}, counts[list.ID])
	assert.Equal(t, todosdomain.ListItemCounts{}, counts[empty.ID])

	counts, err = repo.CountItemsByListIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestServiceOverGormRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, gormDB := newTestRepo(t)
	svc := todosdomain.NewService(repo)

	list, err := svc.CreateTodoList(ctx, todosdomain.CreateTodoListInput{Name: "groceries"})
	require.NoError(t, err)

	item, err := svc.CreateTodoItem(ctx, todosdomain.CreateTodoItemInput{ListID: list.ID, Name: "milk", IsDone: true})
	require.NoError(t, err)

	view, err := svc.GetTodoList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.TotalCount)
	assert.Equal(t, int64(1), view.CompletedCount)
	assert.Equal(t, 100.0, view.Progress)

	_, err = svc.CreateTodoItem(ctx, todosdomain.CreateTodoItemInput{ListID: list.ID + 100, Name: "orphan"})
	assert.ErrorIs(t, err, todosdomain.ErrTodoListNotFound)

	var rows int64
	require.NoError(t, gormDB.Model(&todosdomain.TodoItem{}).Unscoped().Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, svc.DeleteTodoItem(ctx, item.ID))
	view, err = svc.GetTodoList(ctx, list.ID)
	require.NoError(t, err)
	assert.Zero(t, view.TotalCount)
	assert.Zero(t, view.CompletedCount)
	assert.Zero(t, view.Progress)
}
