package usecase

import (
	"context"

	repo "task-management/internal/list/repository"
	"task-management/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing; nil funcs return zero values.
type mockRepo struct {
	createFn func(ctx context.Context, opt repo.CreateListOptions) (model.List, error)
	detailFn func(ctx context.Context, id string) (model.List, error)
	listFn   func(ctx context.Context, opt repo.ListListsOptions) ([]model.List, int, error)
	updateFn func(ctx context.Context, opt repo.UpdateListOptions) (model.List, error)
	deleteFn func(ctx context.Context, id string) error
	appendFn func(ctx context.Context, listID string, opt repo.ItemOptions) (model.Item, error)

	created []repo.CreateListOptions
	updated []repo.UpdateListOptions
	deleted []string
}

func (m *mockRepo) CreateList(ctx context.Context, opt repo.CreateListOptions) (model.List, error) {
	m.created = append(m.created, opt)
	if m.createFn != nil {
		return m.createFn(ctx, opt)
	}
	return model.List{ID: "new-list", Title: opt.Title}, nil
}

func (m *mockRepo) DetailList(ctx context.Context, id string) (model.List, error) {
	if m.detailFn != nil {
		return m.detailFn(ctx, id)
	}
	return model.List{}, nil
}

func (m *mockRepo) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]model.List, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateList(ctx context.Context, opt repo.UpdateListOptions) (model.List, error) {
	m.updated = append(m.updated, opt)
	if m.updateFn != nil {
		return m.updateFn(ctx, opt)
	}
	return model.List{ID: opt.ID, Title: opt.Title}, nil
}

func (m *mockRepo) DeleteList(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRepo) AppendItem(ctx context.Context, listID string, opt repo.ItemOptions) (model.Item, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, listID, opt)
	}
	return model.Item{}, nil
}
