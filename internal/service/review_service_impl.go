package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"planboard/internal/authz"
	"planboard/internal/domain"
	"planboard/internal/permission"
	"planboard/internal/repository"
)

type reviewService struct {
	gate     *authz.Gate
	projects repository.ProjectRepo
	obs      Observer
}

// NewReviewService builds the phase approval state machine. A nil
// observer disables telemetry.
func NewReviewService(gate *authz.Gate, projects repository.ProjectRepo, obs Observer) ReviewService {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &reviewService{gate: gate, projects: projects, obs: obs}
}

func (s *reviewService) AddReviewer(ctx context.Context, actor domain.Actor, projectID string, phaseIndex int, role domain.Role) (*domain.Reviewer, error) {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionTimeline)); err != nil {
		return nil, err
	}
	if _, err := permission.ProfileFor(role); err != nil {
		return nil, fmt.Errorf("reviewer role %q: %w", role, err)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if phaseIndex < 0 || phaseIndex >= len(p.Phases) {
		return nil, fmt.Errorf("phase %d: %w", phaseIndex, ErrIndexOutOfRange)
	}

	phase := &p.Phases[phaseIndex]
	if lo.ContainsBy(phase.Reviewers, func(r domain.Reviewer) bool { return r.Role == role }) {
		return nil, fmt.Errorf("role %s on phase %d: %w", role, phaseIndex, ErrDuplicateReviewer)
	}

	phase.Reviewers = append(phase.Reviewers, domain.Reviewer{
		ID:     uuid.New().String(),
		Role:   role,
		Status: domain.ReviewPending,
	})
	if err := s.touch(ctx, actor, "review.add", p); err != nil {
		return nil, err
	}
	return &phase.Reviewers[len(phase.Reviewers)-1], nil
}

// SetReviewerStatus moves a reviewer to approved or rejected. Every call
// restamps ReviewedAt and overwrites the comment, so flipping a decision
// leaves no trace of the earlier one. Transitions back to pending are not
// allowed; remove and re-add the reviewer instead.
func (s *reviewService) SetReviewerStatus(ctx context.Context, actor domain.Actor, projectID, reviewerID string, status domain.ReviewStatus, comment string) (*domain.Reviewer, error) {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionTimeline)); err != nil {
		return nil, err
	}
	if status != domain.ReviewApproved && status != domain.ReviewRejected {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidReviewStatus)
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	rev := findReviewer(p, reviewerID)
	if rev == nil {
		return nil, fmt.Errorf("reviewer %s: %w", reviewerID, ErrReviewerNotFound)
	}

	now := time.Now().UTC()
	rev.Status = status
	rev.Comment = comment
	rev.ReviewedAt = &now
	if err := s.touch(ctx, actor, "review.decide", p); err != nil {
		return nil, err
	}
	return rev, nil
}

// RemoveReviewer drops a reviewer regardless of its current status.
func (s *reviewService) RemoveReviewer(ctx context.Context, actor domain.Actor, projectID, reviewerID string) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionTimeline)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	found := false
	for i := range p.Phases {
		before := len(p.Phases[i].Reviewers)
		p.Phases[i].Reviewers = lo.Filter(p.Phases[i].Reviewers, func(r domain.Reviewer, _ int) bool {
			return r.ID != reviewerID
		})
		if len(p.Phases[i].Reviewers) != before {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("reviewer %s: %w", reviewerID, ErrReviewerNotFound)
	}
	return s.touch(ctx, actor, "review.remove", p)
}

func findReviewer(p *domain.Project, reviewerID string) *domain.Reviewer {
	for i := range p.Phases {
		for j := range p.Phases[i].Reviewers {
			if p.Phases[i].Reviewers[j].ID == reviewerID {
				return &p.Phases[i].Reviewers[j]
			}
		}
	}
	return nil
}

func (s *reviewService) touch(ctx context.Context, actor domain.Actor, op string, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	err := s.projects.Update(ctx, p)
	emit(ctx, s.obs, op, actor, p.ID, err)
	return err
}
