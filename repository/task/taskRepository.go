// Package taskrepo stores tasks in one flat JSON file. Every mutation
// reads the whole document, rewrites it, and runs under a single mutex
// so overlapping requests cannot lose each other's writes.
package taskrepo

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"

	"github.com/yunus169/book-review-project-final-project/model"
)

var ErrNotFound = errors.New("task not found")

type Repo interface {
	List(completed *bool) ([]model.Task, error)
	Add(t model.Task) (model.Task, error)
	Get(id int) (*model.Task, error)
	Update(id int, p model.TaskPatch) (*model.Task, error)
	Delete(id int) error
	Categories() ([]string, error)
	ListByCategory(name string) ([]model.Task, error)
}

type store struct {
	mu   sync.Mutex
	path string
}

func New(path string) Repo { return &store{path: path} }

// load reads the full document. A missing file is an empty store.
func (s *store) load() ([]model.Task, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	tasks := []model.Task{}
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *store) save(tasks []model.Task) error {
	b, err := json.MarshalIndent(tasks, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *store) List(completed *bool) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	if completed == nil {
		return tasks, nil
	}
	out := []model.Task{}
	for _, t := range tasks {
		if t.Completed == *completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *store) Add(t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return model.Task{}, err
	}
	// max(id)+1; an empty store starts at 1.
	maxID := 0
	for _, e := range tasks {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	t.ID = maxID + 1
	t.Completed = false
	tasks = append(tasks, t)
	if err := s.save(tasks); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *store) Get(id int) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *store) Update(id int, p model.TaskPatch) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if p.Title != nil {
			tasks[i].Title = *p.Title
		}
		if p.Description != nil {
			tasks[i].Description = *p.Description
		}
		if p.Category != nil {
			tasks[i].Category = *p.Category
		}
		if p.Completed != nil {
			tasks[i].Completed = *p.Completed
		}
		if err := s.save(tasks); err != nil {
			return nil, err
		}
		return &tasks[i], nil
	}
	return nil, ErrNotFound
}

// Delete filters the id out and rewrites. An absent id is a no-op, not an
// error; the endpoint answers 204 either way.
func (s *store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.save(kept)
}

func (s *store) Categories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, t := range tasks {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *store) ListByCategory(name string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	out := []model.Task{}
	for _, t := range tasks {
		if t.Category == name {
			out = append(out, t)
		}
	}
	return out, nil
}
