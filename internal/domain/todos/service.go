package todos

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo      Repository
	recompute bool
}

type Option func(*Service)

// WithRecomputedCounters makes read paths report counters aggregated from
// active items instead of the cached values stored on the list row.
func WithRecomputedCounters() Option {
	return func(s *Service) {
		s.recompute = true
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListTodoLists(ctx context.Context) ([]ListView, error) {
	lists, err := s.repo.ListTodoLists(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, s.repo, lists)
}

func (s *Service) GetTodoList(ctx context.Context, listID int64) (*ListView, error) {
	list, err := s.repo.GetTodoListByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, s.repo, *list)
}

func (s *Service) CreateTodoList(ctx context.Context, input CreateTodoListInput) (*ListView, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	list := TodoList{Name: name}
	if err := s.repo.CreateTodoList(ctx, &list); err != nil {
		return nil, err
	}

	view := WithProgress(list)
	return &view, nil
}

func (s *Service) UpdateTodoList(ctx context.Context, input UpdateTodoListInput) (*ListView, error) {
	var name string
	if input.Name != nil {
		trimmed, err := requireName(*input.Name)
		if err != nil {
			return nil, err
		}
		name = trimmed
	}

	var view *ListView
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		list, err := tx.GetTodoListByID(ctx, input.ID)
		if err != nil {
			return err
		}

		if input.Name != nil && name != list.Name {
			if err := tx.UpdateTodoListName(ctx, list.ID, name); err != nil {
				return err
			}
			list.Name = name
		}

		view, err = s.view(ctx, tx, *list)
		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// DeleteTodoList soft-deletes the list. Its items and counters are left as they are.
func (s *Service) DeleteTodoList(ctx context.Context, listID int64) error {
	deleted, err := s.repo.SoftDeleteTodoList(ctx, listID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTodoListNotFound
	}
	return nil
}

func (s *Service) ListTodoItems(ctx context.Context, listID int64) ([]TodoItem, error) {
	if _, err := s.repo.GetTodoListByID(ctx, listID); err != nil {
		return nil, err
	}
	return s.repo.ListTodoItems(ctx, listID)
}

func (s *Service) GetTodoItem(ctx context.Context, itemID int64) (*TodoItem, error) {
	return s.repo.GetTodoItemByID(ctx, itemID)
}

func (s *Service) CreateTodoItem(ctx context.Context, input CreateTodoItemInput) (*TodoItem, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	item := TodoItem{
		ListID: input.ListID,
		Name:   name,
		Text:   input.Text,
		IsDone: input.IsDone,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetTodoListByID(ctx, input.ListID); err != nil {
			return err
		}
		if err := tx.CreateTodoItem(ctx, &item); err != nil {
			return err
		}

		delta := CounterDelta{Total: 1}
		if item.IsDone {
			delta.Completed = 1
		}
		_, err := tx.AdjustListCounters(ctx, item.ListID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateTodoItem applies a partial update. A change of IsDone moves the
// parent's completed counter, unless the parent has been deleted.
func (s *Service) UpdateTodoItem(ctx context.Context, input UpdateTodoItemInput) (*TodoItem, error) {
	var name string
	if input.Name != nil {
		trimmed, err := requireName(*input.Name)
		if err != nil {
			return nil, err
		}
		name = trimmed
	}

	var item *TodoItem
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetTodoItemByID(ctx, input.ID)
		if err != nil {
			return err
		}
		item = current

		wasDone := item.IsDone
		if input.Name != nil {
			item.Name = name
		}
		if input.Text != nil {
			item.Text = *input.Text
		}
		if input.IsDone != nil {
			item.IsDone = *input.IsDone
		}

		if err := tx.UpdateTodoItem(ctx, item); err != nil {
			return err
		}

		if wasDone == item.IsDone {
			return nil
		}
		delta := CounterDelta{Completed: 1}
		if !item.IsDone {
			delta.Completed = -1
		}
		_, err = tx.AdjustListCounters(ctx, item.ListID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteTodoItem(ctx context.Context, itemID int64) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		item, err := tx.GetTodoItemByID(ctx, itemID)
		if err != nil {
			return err
		}

		deleted, err := tx.SoftDeleteTodoItem(ctx, item.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTodoItemNotFound
		}

		delta := CounterDelta{Total: -1}
		if item.IsDone {
			delta.Completed = -1
		}
		_, err = tx.AdjustListCounters(ctx, item.ListID, delta)
		return err
	})
}

func (s *Service) view(ctx context.Context, repo Repository, list TodoList) (*ListView, error) {
	views, err := s.views(ctx, repo, []TodoList{list})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) views(ctx context.Context, repo Repository, lists []TodoList) ([]ListView, error) {
	result := make([]ListView, 0, len(lists))
	if len(lists) == 0 {
		return result, nil
	}

	if s.recompute {
		listIDs := make([]int64, 0, len(lists))
		for _, list := range lists {
			listIDs = append(listIDs, list.ID)
		}

		counts, err := repo.CountItemsByListIDs(ctx, listIDs)
		if err != nil {
			return nil, err
		}
		for i := range lists {
			listCounts := counts[lists[i].ID]
			lists[i].TotalCount = listCounts.Total
			lists[i].CompletedCount = listCounts.Completed
		}
	}

	for _, list := range lists {
		result = append(result, WithProgress(list))
	}
	return result, nil
}

func requireName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return name, nil
}
