package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"task-management/internal/item"
	itemSqlite "task-management/internal/item/repository/sqlite"
	"task-management/internal/list"
	listSqlite "task-management/internal/list/repository/sqlite"
	listUC "task-management/internal/list/usecase"
	"task-management/internal/model"
	"task-management/pkg/paginator"
	"task-management/pkg/sqlite"
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

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	items *implUseCase
	lists list.UseCase
}

func setup(t *testing.T) testEnv {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := &mockLogger{}
	lrepo := listSqlite.New(db, l)
	uc := New(itemSqlite.New(db, l), lrepo, l)
	uc.now = func() time.Time { return fixedNow }

	return testEnv{items: uc, lists: listUC.New(lrepo, l)}
}

func (env testEnv) newList(t *testing.T, titles ...string) model.List {
	t.Helper()
	specs := make([]list.ItemInput, len(titles))
	for i, title := range titles {
		specs[i] = list.ItemInput{Title: title}
	}
	out, err := env.lists.Create(context.Background(), list.CreateInput{Title: "Container", Items: specs})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return out.List
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("title bounds", func(t *testing.T) {
		env := setup(t)
		tests := []struct {
			n       int
			wantErr bool
		}{
			{n: 5, wantErr: true},
			{n: 6},
			{n: 20},
			{n: 21, wantErr: true},
		}
		for _, tt := range tests {
			_, err := env.items.Create(ctx, item.CreateInput{Title: strings.Repeat("x", tt.n)})
			if tt.wantErr && !errors.Is(err, model.ErrInvalidTitle) {
				t.Errorf("len %d: expected ErrInvalidTitle, got %v", tt.n, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("len %d: unexpected err: %v", tt.n, err)
			}
		}
	})

	t.Run("standalone defaults", func(t *testing.T) {
		env := setup(t)
		out, err := env.items.Create(ctx, item.CreateInput{Title: "Write report"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		it := out.Item
		if it.ID == "" || it.ListID != "" {
			t.Errorf("expected standalone item with id: %+v", it)
		}
		if !it.CreationDate.Equal(fixedNow) || it.Priority != model.PriorityNormal {
			t.Errorf("defaults not applied: %+v", it)
		}
	})

	t.Run("appends to list", func(t *testing.T) {
		env := setup(t)
		l := env.newList(t, "First item")

		out, err := env.items.Create(ctx, item.CreateInput{ListID: l.ID, Title: "Second item", Priority: model.PriorityHigh})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Item.ID == "" || out.Item.ListID != l.ID || out.Item.Title != "Second item" {
			t.Errorf("unexpected created item: %+v", out.Item)
		}

		again, _ := env.lists.Detail(ctx, l.ID)
		if len(again.List.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(again.List.Items))
		}
		if again.List.Items[0].ID != l.Items[0].ID || again.List.Items[1].ID != out.Item.ID {
			t.Errorf("sequence not appended in order: %+v", again.List.Items)
		}
	})

	t.Run("concurrent appends keep every item", func(t *testing.T) {
		env := setup(t)
		l := env.newList(t)

		const n = 6
		created := make([]string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				out, err := env.items.Create(ctx, item.CreateInput{ListID: l.ID, Title: fmt.Sprintf("Task number %d", i)})
				if err != nil {
					t.Errorf("create %d: %v", i, err)
					return
				}
				created[i] = out.Item.ID
			}(i)
		}
		wg.Wait()

		again, _ := env.lists.Detail(ctx, l.ID)
		if len(again.List.Items) != n {
			t.Fatalf("expected %d items, got %d", n, len(again.List.Items))
		}
		stored := make(map[string]bool, n)
		for _, it := range again.List.Items {
			stored[it.ID] = true
		}
		for i, id := range created {
			if !stored[id] {
				t.Errorf("item %d (%q) missing from list", i, id)
			}
		}
	})

	t.Run("dates outside storable years", func(t *testing.T) {
		env := setup(t)
		west := time.FixedZone("UTC-5", -5*3600)
		late := time.Date(9999, 12, 31, 23, 0, 0, 0, west)
		y3000 := time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)

		if _, err := env.items.Create(ctx, item.CreateInput{Title: "Too far out", CreationDate: &late}); !errors.Is(err, model.ErrInvalidDate) {
			t.Errorf("creation date: expected ErrInvalidDate, got %v", err)
		}
		if _, err := env.items.Create(ctx, item.CreateInput{Title: "Too far out", FinishDate: &late}); !errors.Is(err, model.ErrInvalidDate) {
			t.Errorf("finish date: expected ErrInvalidDate, got %v", err)
		}

		out, err := env.items.Create(ctx, item.CreateInput{Title: "Year three thousand", CreationDate: &y3000})
		if err != nil {
			t.Fatalf("year 3000: %v", err)
		}
		got, _ := env.items.Detail(ctx, out.Item.ID)
		if !got.Item.CreationDate.Equal(y3000) {
			t.Errorf("creation date = %v, want %v", got.Item.CreationDate, y3000)
		}

		if _, err := env.items.Update(ctx, item.UpdateInput{ID: out.Item.ID, Title: "Year three thousand", FinishDate: &late}); !errors.Is(err, model.ErrInvalidDate) {
			t.Errorf("update: expected ErrInvalidDate, got %v", err)
		}

		all, _ := env.items.List(ctx, item.ListInput{})
		if all.Pagination.Total != 1 {
			t.Errorf("rejected creates were stored: %d items", all.Pagination.Total)
		}
	})

	t.Run("unknown list does not mutate", func(t *testing.T) {
		env := setup(t)
		_, err := env.items.Create(ctx, item.CreateInput{ListID: "missing", Title: "Orphan item"})
		if !errors.Is(err, item.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
		out, _ := env.items.List(ctx, item.ListInput{})
		if out.Pagination.Total != 0 {
			t.Errorf("store mutated: %d items", out.Pagination.Total)
		}
	})
}

func TestListByList(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	l := env.newList(t, "Item one", "Item two", "Item three")

	tests := []struct {
		page, size int
		want       []string
	}{
		{page: 0, size: 2, want: []string{"Item one", "Item two"}},
		{page: 1, size: 2, want: []string{"Item three"}},
		{page: 5, size: 2, want: nil},
	}
	for _, tt := range tests {
		out, err := env.items.ListByList(ctx, item.ListByListInput{
			ListID:   l.ID,
			Paginate: paginator.PaginateQuery{Page: tt.page, Size: tt.size},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Pagination.Total != 3 || len(out.Items) != len(tt.want) {
			t.Fatalf("page %d: got %d items, total %d", tt.page, len(out.Items), out.Pagination.Total)
		}
		for i, it := range out.Items {
			if it.Title != tt.want[i] {
				t.Errorf("page %d: items[%d] = %q, want %q", tt.page, i, it.Title, tt.want[i])
			}
		}
	}

	if _, err := env.items.ListByList(ctx, item.ListByListInput{ListID: "missing"}); !errors.Is(err, item.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	for _, title := range []string{"read abc book", "write ABC", "abc shopping", "cook dinner"} {
		if _, err := env.items.Create(ctx, item.CreateInput{Title: title}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := env.items.Filter(ctx, item.FilterInput{})
	if err != nil || out.Pagination.Total != 4 || len(out.Items) != 4 {
		t.Fatalf("empty filter: %+v, %v", out.Pagination, err)
	}

	abc := "abc"
	out, err = env.items.Filter(ctx, item.FilterInput{Filter: model.Filter{Title: &abc}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out.Items) != 2 || out.Items[0].Title != "read abc book" || out.Items[1].Title != "abc shopping" {
		t.Errorf("title filter: %+v", out.Items)
	}

	out, _ = env.items.Filter(ctx, item.FilterInput{Paginate: paginator.PaginateQuery{Page: 1, Size: 3}})
	if len(out.Items) != 1 || out.Pagination.TotalPages != 2 {
		t.Errorf("second page: %+v", out.Pagination)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	finish := fixedNow.Add(48 * time.Hour)
	created, _ := env.items.Create(ctx, item.CreateInput{
		Title: "Write report", Description: "draft", FinishDate: &finish, Priority: model.PriorityHigh,
	})

	t.Run("replaces fields", func(t *testing.T) {
		out, err := env.items.Update(ctx, item.UpdateInput{ID: created.Item.ID, Title: "Write summary"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		it := out.Item
		if it.Title != "Write summary" || it.Description != "" || it.FinishDate != nil {
			t.Errorf("fields not replaced: %+v", it)
		}
		if it.Priority != model.PriorityNormal || !it.CreationDate.Equal(fixedNow) {
			t.Errorf("unexpected defaults: %+v", it)
		}
	})

	t.Run("invalid title leaves record", func(t *testing.T) {
		if _, err := env.items.Update(ctx, item.UpdateInput{ID: created.Item.ID, Title: "bad"}); !errors.Is(err, model.ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
		got, _ := env.items.Detail(ctx, created.Item.ID)
		if got.Item.Title != "Write summary" {
			t.Errorf("record mutated: %+v", got.Item)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := env.items.Update(ctx, item.UpdateInput{ID: "missing", Title: "Write summary"}); !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteByID idempotent", func(t *testing.T) {
		env := setup(t)
		if err := env.items.DeleteByID(ctx, "missing"); err != nil {
			t.Errorf("unexpected err: %v", err)
		}
	})

	t.Run("Delete absent regardless of record", func(t *testing.T) {
		env := setup(t)
		err := env.items.Delete(ctx, item.DeleteInput{ID: "missing", Record: model.Item{ID: "missing", Title: "Whatever"}})
		if !errors.Is(err, item.ErrItemNotFoundToDelete) {
			t.Errorf("expected ErrItemNotFoundToDelete, got %v", err)
		}
	})

	t.Run("Delete mismatch keeps record", func(t *testing.T) {
		env := setup(t)
		created, _ := env.items.Create(ctx, item.CreateInput{Title: "Write report"})
		err := env.items.Delete(ctx, item.DeleteInput{ID: created.Item.ID, Record: model.Item{ID: "other"}})
		if !errors.Is(err, item.ErrIDMismatch) {
			t.Fatalf("expected ErrIDMismatch, got %v", err)
		}
		if _, err := env.items.Detail(ctx, created.Item.ID); err != nil {
			t.Errorf("record should remain: %v", err)
		}
	})

	t.Run("Delete stored record", func(t *testing.T) {
		env := setup(t)
		created, _ := env.items.Create(ctx, item.CreateInput{Title: "Write report"})
		if err := env.items.Delete(ctx, item.DeleteInput{ID: created.Item.ID}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := env.items.Detail(ctx, created.Item.ID); !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestListLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("nested item gets an id", func(t *testing.T) {
		env := setup(t)
		l := env.newList(t, "Only child")
		if len(l.Items) != 1 || l.Items[0].ID == "" {
			t.Fatalf("unexpected items: %+v", l.Items)
		}
		if _, err := env.items.Detail(ctx, l.Items[0].ID); err != nil {
			t.Errorf("child not retrievable: %v", err)
		}
	})

	t.Run("orphan removal", func(t *testing.T) {
		env := setup(t)
		l := env.newList(t, "Item A", "Item B")
		a, b := l.Items[0], l.Items[1]

		_, err := env.lists.Update(ctx, list.UpdateInput{
			ID:    l.ID,
			Title: l.Title,
			Items: []list.ItemInput{{ID: a.ID, Title: a.Title}},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if _, err := env.items.Detail(ctx, b.ID); !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("B should be gone, got %v", err)
		}
		if _, err := env.items.Detail(ctx, a.ID); err != nil {
			t.Errorf("A should remain: %v", err)
		}
	})

	t.Run("list delete cascades", func(t *testing.T) {
		env := setup(t)
		l := env.newList(t, "Item A")
		if err := env.lists.DeleteByID(ctx, l.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := env.items.Detail(ctx, l.Items[0].ID); !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("child should be gone, got %v", err)
		}
	})
}
