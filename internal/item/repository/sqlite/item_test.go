package sqlite_test

import (
	"context"
	"testing"
	"time"

	"task-management/internal/item/repository"
	itemSqlite "task-management/internal/item/repository/sqlite"
	listRepo "task-management/internal/list/repository"
	listSqlite "task-management/internal/list/repository/sqlite"
	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepos(t *testing.T) (repository.Repository, listRepo.Repository) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return itemSqlite.New(db, &mockLogger{}), listSqlite.New(db, &mockLogger{})
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC)
}

func TestItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateItem standalone", func(t *testing.T) {
		items, _ := newRepos(t)
		finish := day(3)
		it, err := items.CreateItem(ctx, repository.CreateItemOptions{
			Title: "Write report", Description: "quarterly", CreationDate: day(1), FinishDate: &finish, Priority: model.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if it.ID == "" || it.ListID != "" {
			t.Errorf("expected standalone item with id, got %+v", it)
		}
		if it.FinishDate == nil || !it.FinishDate.Equal(finish) || it.Description != "quarterly" {
			t.Errorf("fields not persisted: %+v", it)
		}

		got, err := items.DetailItem(ctx, it.ID)
		if err != nil || got.ID != it.ID {
			t.Errorf("DetailItem = %+v, %v", got, err)
		}
	})

	t.Run("DetailItem not found", func(t *testing.T) {
		items, _ := newRepos(t)
		got, err := items.DetailItem(ctx, "missing")
		if err != nil || got.ID != "" {
			t.Errorf("expected zero item, got %+v, %v", got, err)
		}
	})

	t.Run("UpdateItem keeps owner", func(t *testing.T) {
		items, lists := newRepos(t)
		l, _ := lists.CreateList(ctx, listRepo.CreateListOptions{
			Title: "Groceries", CreationDate: day(1), Priority: model.PriorityNormal,
			Items: []listRepo.ItemOptions{{Title: "Buy milk", CreationDate: day(1), Priority: model.PriorityNormal}},
		})
		owned := l.Items[0]

		updated, err := items.UpdateItem(ctx, repository.UpdateItemOptions{
			ID: owned.ID, Title: "Buy oat milk", CreationDate: day(2), Priority: model.PriorityLow,
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if updated.ListID != l.ID || updated.Title != "Buy oat milk" || updated.Priority != model.PriorityLow {
			t.Errorf("unexpected item: %+v", updated)
		}

		again, _ := lists.DetailList(ctx, l.ID)
		if len(again.Items) != 1 || again.Items[0].Title != "Buy oat milk" {
			t.Errorf("list should see the update: %+v", again.Items)
		}
	})

	t.Run("UpdateItem not found", func(t *testing.T) {
		items, _ := newRepos(t)
		got, err := items.UpdateItem(ctx, repository.UpdateItemOptions{ID: "missing", Title: "Whatever", CreationDate: day(1)})
		if err != nil || got.ID != "" {
			t.Errorf("expected zero item, got %+v, %v", got, err)
		}
	})

	t.Run("DeleteItem removes from owner and is idempotent", func(t *testing.T) {
		items, lists := newRepos(t)
		l, _ := lists.CreateList(ctx, listRepo.CreateListOptions{
			Title: "Groceries", CreationDate: day(1), Priority: model.PriorityNormal,
			Items: []listRepo.ItemOptions{
				{Title: "Buy milk", CreationDate: day(1), Priority: model.PriorityNormal},
				{Title: "Buy bread", CreationDate: day(1), Priority: model.PriorityNormal},
			},
		})

		if err := items.DeleteItem(ctx, l.Items[0].ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := items.DeleteItem(ctx, l.Items[0].ID); err != nil {
			t.Fatalf("second delete: %v", err)
		}

		again, _ := lists.DetailList(ctx, l.ID)
		if len(again.Items) != 1 || again.Items[0].Title != "Buy bread" {
			t.Errorf("unexpected remaining items: %+v", again.Items)
		}
	})

	t.Run("ListItems filters and pages", func(t *testing.T) {
		items, lists := newRepos(t)
		items.CreateItem(ctx, repository.CreateItemOptions{Title: "alpha abc", CreationDate: day(1), Priority: model.PriorityHigh})
		lists.CreateList(ctx, listRepo.CreateListOptions{
			Title: "Container", CreationDate: day(1), Priority: model.PriorityNormal,
			Items: []listRepo.ItemOptions{{Title: "beta abc", CreationDate: day(2), Priority: model.PriorityLow}},
		})
		items.CreateItem(ctx, repository.CreateItemOptions{Title: "gamma ABC", CreationDate: day(3), Priority: model.PriorityHigh})

		abc := "abc"
		high := model.PriorityHigh
		from, to := day(2), day(3)

		tests := []struct {
			name   string
			filter model.Filter
			want   []string
		}{
			{name: "no filter", want: []string{"alpha abc", "beta abc", "gamma ABC"}},
			{name: "title", filter: model.Filter{Title: &abc}, want: []string{"alpha abc", "beta abc"}},
			{name: "priority", filter: model.Filter{Priority: &high}, want: []string{"alpha abc", "gamma ABC"}},
			{name: "window", filter: model.Filter{CreationDate: &from, FinishDate: &to}, want: []string{"beta abc", "gamma ABC"}},
			{name: "upper bound only", filter: model.Filter{FinishDate: &from}, want: []string{"alpha abc", "beta abc"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, total, err := items.ListItems(ctx, repository.ListItemsOptions{Filter: tt.filter})
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if total != len(tt.want) || len(got) != len(tt.want) {
					t.Fatalf("got %d items (total %d), want %d", len(got), total, len(tt.want))
				}
				for i, it := range got {
					if it.Title != tt.want[i] {
						t.Errorf("items[%d] = %q, want %q", i, it.Title, tt.want[i])
					}
				}
			})
		}

		page, total, err := items.ListItems(ctx, repository.ListItemsOptions{Limit: 2, Offset: 2})
		if err != nil || total != 3 || len(page) != 1 || page[0].Title != "gamma ABC" {
			t.Errorf("unexpected page: %+v total=%d err=%v", page, total, err)
		}
	})
}
