// Package state holds the project board's single mutable project collection and
// notifies subscribed views after every mutation.
//
// A ProjectState is not safe for concurrent use: mutation and notification run inline on
// the caller's goroutine (the TUI event loop), in listener registration order.
package state

import (
	"io"
	"log/slog"

	"board-cli/internal/model"

	"github.com/google/uuid"
)

// Listener receives a snapshot of the full collection after each mutation.
type Listener[T any] func(items []T)

// State keeps an ordered list of listeners. There is no removal.
type State[T any] struct {
	listeners []Listener[T]
}

// AddListener registers fn for every future notification. fn is not called with the
// current contents.
func (s *State[T]) AddListener(fn Listener[T]) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// notify calls each listener with its own copy of items, in registration order.
func (s *State[T]) notify(items []T) {
	for _, fn := range s.listeners {
		fn(snapshot(items))
	}
}

func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

type ProjectState struct {
	State[model.Project]

	projects []model.Project
	newID    func() string
	logger   *slog.Logger
}

type Option func(*ProjectState)

// WithIDFunc replaces the project id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *ProjectState) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *ProjectState) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(opts ...Option) *ProjectState {
	s := &ProjectState{
		newID:  newProjectID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newProjectID() string {
	return "prj-" + uuid.NewString()
}

// AddProject appends a new Active project and notifies listeners. Callers validate input.
func (s *ProjectState) AddProject(title, description string, people int) model.Project {
	p := model.Project{
		ID:          s.uniqueID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      model.ProjectStatusActive,
	}
	s.projects = append(s.projects, p)
	s.logger.Debug("project added", slog.String("id", p.ID), slog.Int("people", people))
	s.notify(s.projects)
	return p
}

// MoveProject sets the status of project id and notifies listeners. Unknown ids and
// unchanged statuses are no-ops and notify nobody.
func (s *ProjectState) MoveProject(id string, status model.ProjectStatus) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("move ignored: unknown project", slog.String("id", id))
		return false
	}
	if s.projects[idx].Status == status {
		return false
	}
	s.projects[idx].Status = status
	s.logger.Debug("project moved", slog.String("id", id), slog.String("status", status.String()))
	s.notify(s.projects)
	return true
}

// Projects returns a snapshot of the collection in insertion order.
func (s *ProjectState) Projects() []model.Project {
	return snapshot(s.projects)
}

func (s *ProjectState) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ProjectState) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
