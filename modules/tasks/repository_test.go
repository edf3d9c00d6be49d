package tasks

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

// seedTask inserts a task with an explicit creation time so ordering
// assertions stay deterministic.
func seedTask(t *testing.T, repo *Repository, title string, description *string, status string, priority int, createdAt time.Time) *domain.Task {
	t.Helper()

	task := &domain.Task{
		Title:        title,
		Description:  description,
		Status:       status,
		Priority:     priority,
		CreationTime: createdAt,
	}
	if err := repo.Create(task); err != nil {
		t.Fatalf("failed to seed task %q: %v", title, err)
	}
	return task
}

func titles(found []*domain.Task) []string {
	out := make([]string, 0, len(found))
	for _, task := range found {
		out = append(out, task.Title)
	}
	return out
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	task := seedTask(t, repo, "Write report", strPtr("quarterly numbers"), "pending", 1, time.Now())
	if task.ID == 0 {
		t.Error("Create() did not assign an id")
	}

	t.Run("round trip", func(t *testing.T) {
		found, err := repo.FindByID(task.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Title != task.Title {
			t.Errorf("found.Title = %q, want %q", found.Title, task.Title)
		}
		if found.Description == nil || *found.Description != *task.Description {
			t.Errorf("found.Description = %v, want %v", found.Description, *task.Description)
		}
		if found.Status != task.Status {
			t.Errorf("found.Status = %q, want %q", found.Status, task.Status)
		}
		if found.Priority != task.Priority {
			t.Errorf("found.Priority = %v, want %v", found.Priority, task.Priority)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(999999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByID() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_Update(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := seedTask(t, repo, "Before", strPtr("old"), "pending", 1, time.Now())

	created.Title = "After"
	created.Description = nil
	created.Status = "done"
	created.Priority = 3
	if err := repo.Update(created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "After" {
		t.Errorf("found.Title = %q, want %q", found.Title, "After")
	}
	if found.Description != nil {
		t.Errorf("found.Description = %v, want nil", *found.Description)
	}
	if found.Status != "done" {
		t.Errorf("found.Status = %q, want done", found.Status)
	}
	if found.Priority != 3 {
		t.Errorf("found.Priority = %v, want 3", found.Priority)
	}

	t.Run("missing id", func(t *testing.T) {
		ghost := &domain.Task{ID: 999999, Title: "Ghost", Status: "pending", Priority: 1}
		if err := repo.Update(ghost); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := seedTask(t, repo, "Doomed", nil, "pending", 1, time.Now())

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
	}

	t.Run("missing id", func(t *testing.T) {
		if err := repo.Delete(999999); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_ListSearch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seedTask(t, repo, "Client meeting", strPtr("Discuss the project"), "pending", 1, base)
	seedTask(t, repo, "Development", strPtr("Start a new PROJECT"), "pending", 1, base.Add(time.Minute))
	seedTask(t, repo, "Design review", nil, "pending", 1, base.Add(2*time.Minute))

	t.Run("matches title or description, case-insensitive", func(t *testing.T) {
		found, err := repo.List(ListQuery{Search: "project"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("List() returned %d tasks, want 2: %v", len(found), titles(found))
		}
	})

	t.Run("nil description never matches", func(t *testing.T) {
		// "Design review" has no description; only its title can match.
		found, err := repo.List(ListQuery{Search: "review"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 1 || found[0].Title != "Design review" {
			t.Fatalf("List() = %v, want only Design review", titles(found))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		found, err := repo.List(ListQuery{Search: "nonexistent"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 0 {
			t.Errorf("List() returned %d tasks, want 0", len(found))
		}
	})
}

func TestRepository_ListSort(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seedTask(t, repo, "C task", strPtr("desc"), "done", 1, base)
	seedTask(t, repo, "A task", strPtr("desc"), "pending", 1, base.Add(time.Minute))
	seedTask(t, repo, "B task", strPtr("desc"), "in-progress", 1, base.Add(2*time.Minute))

	t.Run("by title ascending", func(t *testing.T) {
		found, err := repo.List(ListQuery{SortBy: SortByTitle, Order: "asc"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		got := titles(found)
		want := []string{"A task", "B task", "C task"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("List() titles = %v, want %v", got, want)
			}
		}
	})

	t.Run("by title descending", func(t *testing.T) {
		found, err := repo.List(ListQuery{SortBy: SortByTitle, Order: "desc"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		got := titles(found)
		want := []string{"C task", "B task", "A task"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("List() titles = %v, want %v", got, want)
			}
		}
	})

	t.Run("by status", func(t *testing.T) {
		found, err := repo.List(ListQuery{SortBy: SortByStatus})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		want := []string{"done", "in-progress", "pending"}
		for i := range want {
			if found[i].Status != want[i] {
				t.Fatalf("List() statuses out of order at %d: got %q, want %q", i, found[i].Status, want[i])
			}
		}
	})

	t.Run("by creation_time descending", func(t *testing.T) {
		found, err := repo.List(ListQuery{SortBy: SortByCreationTime, Order: "desc"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		got := titles(found)
		want := []string{"B task", "A task", "C task"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("List() titles = %v, want %v", got, want)
			}
		}
	})
}

func TestRepository_ListTopN(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seedTask(t, repo, "low", nil, "pending", 3, base)
	seedTask(t, repo, "high old", nil, "pending", 1, base.Add(time.Minute))
	seedTask(t, repo, "medium", nil, "pending", 2, base.Add(2*time.Minute))
	seedTask(t, repo, "high new", nil, "pending", 1, base.Add(3*time.Minute))

	t.Run("orders by priority, recency on ties, and truncates", func(t *testing.T) {
		found, err := repo.List(ListQuery{TopN: intPtr(3)})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		got := titles(found)
		want := []string{"high new", "high old", "medium"}
		if len(got) != len(want) {
			t.Fatalf("List() returned %d tasks, want %d: %v", len(got), len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("List() titles = %v, want %v", got, want)
			}
		}
	})

	t.Run("top_n larger than count returns everything", func(t *testing.T) {
		found, err := repo.List(ListQuery{TopN: intPtr(100)})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 4 {
			t.Errorf("List() returned %d tasks, want 4", len(found))
		}
	})

	t.Run("top_n ignores sort_by and order", func(t *testing.T) {
		found, err := repo.List(ListQuery{TopN: intPtr(1), SortBy: SortByTitle, Order: "desc"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 1 || found[0].Title != "high new" {
			t.Errorf("List() = %v, want [high new]", titles(found))
		}
	})

	t.Run("search applies before ranking", func(t *testing.T) {
		found, err := repo.List(ListQuery{Search: "high", TopN: intPtr(1)})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(found) != 1 || found[0].Title != "high new" {
			t.Errorf("List() = %v, want [high new]", titles(found))
		}
	})
}

func TestRepository_ListDefault(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	seedTask(t, repo, "first", nil, "pending", 2, base)
	seedTask(t, repo, "second", nil, "pending", 1, base.Add(time.Minute))

	found, err := repo.List(ListQuery{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("List() returned %d tasks, want 2", len(found))
	}
	// Natural store order is insertion order in practice.
	if found[0].Title != "first" || found[1].Title != "second" {
		t.Errorf("List() titles = %v, want [first second]", titles(found))
	}
}
