package models

import (
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Listener is notified with a snapshot of every project after each change
type Listener func(projects []Project)

// ProjectState holds the projects added during this run and the listeners
// observing them. Create one at startup and share it by reference.
type ProjectState struct {
	projects  []Project
	listeners []Listener
	logger    *zap.Logger

	// Mutex for concurrent access
	mu sync.RWMutex
}

// NewProjectState creates an empty project state
func NewProjectState(logger *zap.Logger) *ProjectState {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProjectState{
		projects:  make([]Project, 0),
		listeners: make([]Listener, 0),
		logger:    logger,
	}
}

// AddListener registers a listener. Listeners are never removed.
func (s *ProjectState) AddListener(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// AddProject appends a new active project and notifies every listener,
// in registration order, before returning. The caller validates input.
func (s *ProjectState) AddProject(title, description string, people int) {
	s.mu.Lock()
	project := Project{
		ID:          strconv.Itoa(len(s.projects) + 1),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
	s.projects = append(s.projects, project)

	// Copy under the lock, notify outside it so listeners may read the state
	snapshot := make([]Project, len(s.projects))
	copy(snapshot, s.projects)
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.logger.Debug("project added",
		zap.String("id", project.ID),
		zap.String("title", project.Title),
		zap.Int("people", project.People),
		zap.Int("listeners", len(listeners)))

	for _, fn := range listeners {
		projects := make([]Project, len(snapshot))
		copy(projects, snapshot)
		fn(projects)
	}
}

// Projects returns a copy of all projects in insertion order
func (s *ProjectState) Projects() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]Project, len(s.projects))
	copy(projects, s.projects)
	return projects
}

// Len returns the number of projects
func (s *ProjectState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.projects)
}
