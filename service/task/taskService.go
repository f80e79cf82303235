package tasksvc

import (
	"github.com/yunus169/book-review-project-final-project/model"
)

type Repo interface {
	List(completed *bool) ([]model.Task, error)
	Add(t model.Task) (model.Task, error)
	Get(id int) (*model.Task, error)
	Update(id int, p model.TaskPatch) (*model.Task, error)
	Delete(id int) error
	Categories() ([]string, error)
	ListByCategory(name string) ([]model.Task, error)
}

type Service interface {
	List(completed *bool) ([]model.Task, error)
	Add(title, description, category string) (model.Task, error)
	Get(id int) (*model.Task, error)
	Update(id int, p model.TaskPatch) (*model.Task, error)
	Complete(id int) (*model.Task, error)
	Delete(id int) error
	Categories() ([]string, error)
	ListByCategory(name string) ([]model.Task, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(completed *bool) ([]model.Task, error) { return s.r.List(completed) }

func (s *service) Add(title, description, category string) (model.Task, error) {
	// The store assigns the id and forces completed=false.
	return s.r.Add(model.Task{Title: title, Description: description, Category: category})
}

func (s *service) Get(id int) (*model.Task, error) { return s.r.Get(id) }

func (s *service) Update(id int, p model.TaskPatch) (*model.Task, error) {
	return s.r.Update(id, p)
}

// Complete is Update pinned to completed=true.
func (s *service) Complete(id int) (*model.Task, error) {
	done := true
	return s.r.Update(id, model.TaskPatch{Completed: &done})
}

func (s *service) Delete(id int) error { return s.r.Delete(id) }

func (s *service) Categories() ([]string, error) { return s.r.Categories() }

func (s *service) ListByCategory(name string) ([]model.Task, error) {
	return s.r.ListByCategory(name)
}
