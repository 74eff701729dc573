package repository

import (
	"context"
	"fmt"

	"planboard/internal/domain"
)

// MemoryProjectRepo implements ProjectRepo with in-process state. The
// repo does no locking: operations run to completion one at a time and
// the embedding host must serialize concurrent callers (one logical
// writer per project at minimum, or risk-index mutation goes stale).
type MemoryProjectRepo struct {
	byID  map[string]*domain.Project
	order []string
}

// NewMemoryProjectRepo creates an empty in-memory project store.
func NewMemoryProjectRepo() *MemoryProjectRepo {
	return &MemoryProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *MemoryProjectRepo) Create(_ context.Context, p *domain.Project) error {
	if _, exists := r.byID[p.ID]; exists {
		return fmt.Errorf("project %s already exists", p.ID)
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemoryProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (r *MemoryProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, r.byID[id])
	}
	return projects, nil
}

func (r *MemoryProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.byID[p.ID]; !ok {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *MemoryProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
