package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"planboard/internal/attachment"
	"planboard/internal/authz"
	"planboard/internal/domain"
	"planboard/internal/repository"
)

type projectService struct {
	gate     *authz.Gate
	projects repository.ProjectRepo
	registry *attachment.Registry
	obs      Observer
}

// NewProjectService builds the entity store's mutation surface. A nil
// observer disables telemetry.
func NewProjectService(gate *authz.Gate, projects repository.ProjectRepo, registry *attachment.Registry, obs Observer) ProjectService {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &projectService{gate: gate, projects: projects, registry: registry, obs: obs}
}

func (s *projectService) Create(ctx context.Context, actor domain.Actor, name string) (*domain.Project, error) {
	if err := s.gate.Authorize(ctx, actor, authz.CreateProjectAction()); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Phases:        defaultPhases(),
		Risks:         []domain.Risk{},
		Communication: defaultCommunication(),
		TeamMembers:   defaultTeamMembers(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := s.projects.Create(ctx, p)
	emit(ctx, s.obs, "project.create", actor, p.ID, err)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, actor domain.Actor, id string, upd ProjectUpdate) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionScope)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Name = domain.StrFromPtrWithDefault(p.Name, upd.Name)
	return s.touch(ctx, actor, "project.update", p)
}

// Delete removes the project from the store. Comment threads keyed on
// the project deliberately survive; see the comment repo.
func (s *projectService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.gate.Authorize(ctx, actor, authz.DeleteProjectAction()); err != nil {
		return err
	}
	err := s.projects.Delete(ctx, id)
	emit(ctx, s.obs, "project.delete", actor, id, err)
	return err
}

func (s *projectService) UpdatePhase(ctx context.Context, actor domain.Actor, id string, phaseIndex int, upd PhaseUpdate) (*domain.Phase, error) {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionTimeline)); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if phaseIndex < 0 || phaseIndex >= len(p.Phases) {
		return nil, fmt.Errorf("phase %d: %w", phaseIndex, ErrIndexOutOfRange)
	}

	// Merge onto a copy so a bad date string leaves the phase untouched.
	next := p.Phases[phaseIndex]
	next.Name = domain.StrFromPtrWithDefault(next.Name, upd.Name)
	next.Content = domain.StrFromPtrWithDefault(next.Content, upd.Content)
	next.Duration = domain.StrFromPtrWithDefault(next.Duration, upd.Duration)

	if upd.StartDate != nil {
		start, err := domain.ParseDate(*upd.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		next.StartDate = start
	}
	if upd.EndDate != nil {
		end, err := domain.ParseDate(*upd.EndDate)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
		next.EndDate = end
	}
	// With both dates present the duration is always the derived span;
	// a manual duration only sticks while at least one date is absent.
	if next.StartDate != nil && next.EndDate != nil {
		next.Duration = domain.DurationLabel(*next.StartDate, *next.EndDate)
	}

	p.Phases[phaseIndex] = next
	if err := s.touch(ctx, actor, "phase.update", p); err != nil {
		return nil, err
	}
	return &p.Phases[phaseIndex], nil
}

func (s *projectService) AttachPhaseFiles(ctx context.Context, actor domain.Actor, id string, phaseIndex int, files []attachment.File) ([]domain.Attachment, []attachment.Rejected, error) {
	if err := s.gate.Authorize(ctx, actor, authz.UploadAction()); err != nil {
		return nil, nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if phaseIndex < 0 || phaseIndex >= len(p.Phases) {
		return nil, nil, fmt.Errorf("phase %d: %w", phaseIndex, ErrIndexOutOfRange)
	}

	accepted, rejected := s.registry.RegisterBatch(files, actor.ID)
	if len(accepted) > 0 {
		p.Phases[phaseIndex].Attachments = append(p.Phases[phaseIndex].Attachments, accepted...)
		if err := s.touch(ctx, actor, "phase.attach", p); err != nil {
			return nil, nil, err
		}
	}
	return accepted, rejected, nil
}

func (s *projectService) UpdateBudget(ctx context.Context, actor domain.Actor, id string, budget domain.Budget) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionResources)); err != nil {
		return err
	}
	if !budget.Validate() {
		return ErrNegativeBudget
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Budget = budget
	return s.touch(ctx, actor, "budget.update", p)
}

func (s *projectService) AddRisk(ctx context.Context, actor domain.Actor, id string, risk domain.Risk) (*domain.Risk, error) {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionRisks)); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	risk.ID = uuid.New().String()
	p.Risks = append(p.Risks, risk)
	if err := s.touch(ctx, actor, "risk.add", p); err != nil {
		return nil, err
	}
	return &p.Risks[len(p.Risks)-1], nil
}

func (s *projectService) UpdateRisk(ctx context.Context, actor domain.Actor, id string, index int, risk domain.Risk) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionRisks)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(p.Risks) {
		return fmt.Errorf("risk %d: %w", index, ErrIndexOutOfRange)
	}
	// The index is a boundary convenience; identity stays with the
	// surrogate id resolved here.
	risk.ID = p.Risks[index].ID
	p.Risks[index] = risk
	return s.touch(ctx, actor, "risk.update", p)
}

func (s *projectService) DeleteRisk(ctx context.Context, actor domain.Actor, id string, index int) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionRisks)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(p.Risks) {
		return fmt.Errorf("risk %d: %w", index, ErrIndexOutOfRange)
	}
	riskID := p.Risks[index].ID
	p.Risks = lo.Filter(p.Risks, func(r domain.Risk, _ int) bool {
		return r.ID != riskID
	})
	return s.touch(ctx, actor, "risk.delete", p)
}

func (s *projectService) UpdateCommunication(ctx context.Context, actor domain.Actor, id string, comm domain.Communication) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionCommunication)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Communication = comm
	return s.touch(ctx, actor, "communication.update", p)
}

// UpdateTeam replaces the roster. The roster is a resources concern, so
// it rides on the resources edit permission.
func (s *projectService) UpdateTeam(ctx context.Context, actor domain.Actor, id string, members []domain.TeamMember) error {
	if err := s.gate.Authorize(ctx, actor, authz.EditAction(domain.SectionResources)); err != nil {
		return err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.TeamMembers = members
	return s.touch(ctx, actor, "team.update", p)
}

// touch stamps the project and writes it back, reporting the mutation.
func (s *projectService) touch(ctx context.Context, actor domain.Actor, op string, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	err := s.projects.Update(ctx, p)
	emit(ctx, s.obs, op, actor, p.ID, err)
	return err
}
