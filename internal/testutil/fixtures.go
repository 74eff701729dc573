package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"planboard/internal/attachment"
	"planboard/internal/domain"
)

var actorCounter atomic.Int64

// NewTestActor builds an actor with a unique id for the given role.
func NewTestActor(role domain.Role) domain.Actor {
	n := actorCounter.Add(1)
	return domain.Actor{
		ID:   uuid.New().String(),
		Name: fmt.Sprintf("%s-%02d", role, n),
		Role: role,
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithRisks(risks ...domain.Risk) ProjectOption {
	return func(p *domain.Project) {
		p.Risks = risks
	}
}

func WithBudget(b domain.Budget) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithPhases(phases ...domain.Phase) ProjectOption {
	return func(p *domain.Project) {
		p.Phases = phases
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Phases:    []domain.Phase{{Name: "Planning Phase", Duration: "2 weeks"}},
		Risks:     []domain.Risk{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Risk options
type RiskOption func(*domain.Risk)

func WithRatings(impact, probability domain.RiskRating) RiskOption {
	return func(r *domain.Risk) {
		r.Impact = impact
		r.Probability = probability
	}
}

func NewTestRisk(description string, opts ...RiskOption) domain.Risk {
	r := domain.Risk{
		ID:          uuid.New().String(),
		Category:    "Technical",
		Description: description,
		Impact:      domain.RatingMedium,
		Probability: domain.RatingMedium,
		Mitigation:  "monitor",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// File options
type FileOption func(*attachment.File)

func WithSize(bytes int64) FileOption {
	return func(f *attachment.File) {
		f.SizeBytes = bytes
	}
}

func NewTestFile(name string, opts ...FileOption) attachment.File {
	f := attachment.File{
		Name:      name,
		MimeType:  "application/octet-stream",
		SizeBytes: 1024,
		URI:       "mem://" + name,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
