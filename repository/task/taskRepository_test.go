package taskrepo_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/yunus169/book-review-project-final-project/model"
	taskrepo "github.com/yunus169/book-review-project-final-project/repository/task"
)

func newStore(t *testing.T) taskrepo.Repo {
	t.Helper()
	return taskrepo.New(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestAdd_EmptyStoreStartsAtOne(t *testing.T) {
	s := newStore(t)
	got, err := s.Add(model.Task{Title: "first", Description: "d", Category: "home"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("id = %d; want 1", got.ID)
	}
	if got.Completed {
		t.Fatal("new task must start with completed=false")
	}
}

func TestAdd_MaxPlusOneSurvivesGaps(t *testing.T) {
	s := newStore(t)
	for _, title := range []string{"a", "b", "c"} {
		if _, err := s.Add(model.Task{Title: title, Description: "d", Category: "x"}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	if err := s.Delete(3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	got, err := s.Add(model.Task{Title: "d", Description: "d", Category: "x"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	// max over {1,2} is 2 after the highest id was removed.
	if got.ID != 3 {
		t.Fatalf("id = %d; want 3", got.ID)
	}
}

func TestAdd_IgnoresClientCompleted(t *testing.T) {
	s := newStore(t)
	got, err := s.Add(model.Task{Title: "a", Description: "d", Category: "x", Completed: true})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.Completed {
		t.Fatal("completed must be forced to false on create")
	}
}

func TestList_CompletedFilter(t *testing.T) {
	s := newStore(t)
	for _, title := range []string{"a", "b", "c"} {
		if _, err := s.Add(model.Task{Title: title, Description: "d", Category: "x"}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	done := true
	if _, err := s.Update(2, model.TaskPatch{Completed: &done}); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	all, err := s.List(nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("List(nil) = %d tasks, err=%v; want 3 nil", len(all), err)
	}
	completed, err := s.List(&done)
	if err != nil || len(completed) != 1 || completed[0].ID != 2 {
		t.Fatalf("List(true) = %+v, err=%v; want only task 2", completed, err)
	}
	open := false
	pending, err := s.List(&open)
	if err != nil || len(pending) != 2 {
		t.Fatalf("List(false) = %d tasks, err=%v; want 2 nil", len(pending), err)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	s := newStore(t)
	if _, err := s.Add(model.Task{Title: "old", Description: "keep", Category: "home"}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	title := "new"
	got, err := s.Update(1, model.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "new" || got.Description != "keep" || got.Category != "home" {
		t.Fatalf("patched task = %+v; untouched fields must keep prior values", got)
	}

	reread, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if reread.Title != "new" || reread.Description != "keep" {
		t.Fatalf("persisted task = %+v; want patch persisted", reread)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := newStore(t)
	title := "x"
	if _, err := s.Update(99, model.TaskPatch{Title: &title}); !errors.Is(err, taskrepo.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	s := newStore(t)
	if _, err := s.Add(model.Task{Title: "a", Description: "d", Category: "x"}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := s.Delete(99); err != nil {
		t.Fatalf("Delete(unknown) error: %v; want nil", err)
	}
	all, err := s.List(nil)
	if err != nil || len(all) != 1 {
		t.Fatalf("List = %d tasks, err=%v; want 1 nil", len(all), err)
	}
}

func TestCategories_Distinct(t *testing.T) {
	s := newStore(t)
	for _, cat := range []string{"home", "work", "home", "errands"} {
		if _, err := s.Add(model.Task{Title: "t", Description: "d", Category: cat}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	cats, err := s.Categories()
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}
	want := []string{"errands", "home", "work"}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v; want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("categories = %v; want %v", cats, want)
		}
	}
}

func TestListByCategory_ExactMatch(t *testing.T) {
	s := newStore(t)
	for _, cat := range []string{"home", "homework", "home"} {
		if _, err := s.Add(model.Task{Title: "t", Description: "d", Category: cat}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	rows, err := s.ListByCategory("home")
	if err != nil {
		t.Fatalf("ListByCategory error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d tasks; want 2 (exact match, not substring)", len(rows))
	}
}

func TestGet_UnknownID(t *testing.T) {
	s := newStore(t)
	if _, err := s.Get(5); !errors.Is(err, taskrepo.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}
