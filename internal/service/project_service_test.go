package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/attachment"
	"planboard/internal/authz"
	"planboard/internal/domain"
	"planboard/internal/repository"
	"planboard/internal/testutil"
)

func newProjectFixture(t *testing.T) (ProjectService, repository.ProjectRepo) {
	t.Helper()
	repo := repository.NewMemoryProjectRepo()
	svc := NewProjectService(authz.NewGate(nil), repo, attachment.NewRegistry(attachment.DefaultConfig()), nil)
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestCreateAppliesTemplate(t *testing.T) {
	svc, _ := newProjectFixture(t)
	actor := testutil.NewTestActor(domain.RoleProductManager1)

	p, err := svc.Create(context.Background(), actor, "  Website Redesign  ")
	require.NoError(t, err)

	assert.Equal(t, "Website Redesign", p.Name)
	assert.NotEmpty(t, p.ID)
	require.Len(t, p.Phases, 5)
	assert.Equal(t, "Planning Phase", p.Phases[0].Name)
	assert.Equal(t, "2 weeks", p.Phases[0].Duration)
	assert.Equal(t, "Deployment Phase", p.Phases[4].Name)
	assert.Empty(t, p.Risks)
	assert.Len(t, p.TeamMembers, 2)
	assert.Equal(t, []string{"Project Sponsor", "Team Lead"}, p.Communication.Stakeholders)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreateDeniedForDesigner(t *testing.T) {
	svc, repo := newProjectFixture(t)

	_, err := svc.Create(context.Background(), testutil.NewTestActor(domain.RoleDesigner), "Side Project")
	var denied *authz.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, domain.RoleDesigner, denied.Role)

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _ := newProjectFixture(t)

	_, err := svc.Create(context.Background(), testutil.NewTestActor(domain.RoleAdmin), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestUpdatePhaseRecomputesDuration(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Rollout")
	require.NoError(t, err)

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"one week", "2026-01-01", "2026-01-08", "1 week"},
		{"two days", "2026-01-01", "2026-01-03", "2 days"},
		{"end before start", "2026-01-10", "2026-01-05", "0 days"},
		{"one month", "2026-01-01", "2026-01-31", "1 month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, err := svc.UpdatePhase(context.Background(), pm, p.ID, 0, PhaseUpdate{
				StartDate: strPtr(tt.start),
				EndDate:   strPtr(tt.end),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, phase.Duration)
		})
	}
}

func TestUpdatePhaseManualDurationYieldsToDates(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager2)
	p, err := svc.Create(context.Background(), pm, "Rollout")
	require.NoError(t, err)

	// No dates yet: manual duration sticks.
	phase, err := svc.UpdatePhase(context.Background(), pm, p.ID, 0, PhaseUpdate{Duration: strPtr("6 weeks")})
	require.NoError(t, err)
	assert.Equal(t, "6 weeks", phase.Duration)

	// Both dates set: the derived span wins over the manual value.
	phase, err = svc.UpdatePhase(context.Background(), pm, p.ID, 0, PhaseUpdate{
		StartDate: strPtr("2026-03-01"),
		EndDate:   strPtr("2026-03-03"),
		Duration:  strPtr("6 weeks"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2 days", phase.Duration)
}

func TestUpdatePhaseClearsDate(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Rollout")
	require.NoError(t, err)

	phase, err := svc.UpdatePhase(context.Background(), pm, p.ID, 1, PhaseUpdate{
		StartDate: strPtr("2026-02-01"),
		EndDate:   strPtr("2026-02-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2 weeks", phase.Duration)

	phase, err = svc.UpdatePhase(context.Background(), pm, p.ID, 1, PhaseUpdate{EndDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, phase.EndDate)
	require.NotNil(t, phase.StartDate)
	// The last derived label survives until a new one can be computed.
	assert.Equal(t, "2 weeks", phase.Duration)
}

func TestUpdatePhaseBadDateLeavesPhaseUntouched(t *testing.T) {
	svc, repo := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Rollout")
	require.NoError(t, err)

	_, err = svc.UpdatePhase(context.Background(), pm, p.ID, 0, PhaseUpdate{
		Name:      strPtr("Renamed"),
		StartDate: strPtr("01/02/2026"),
	})
	require.Error(t, err)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Planning Phase", stored.Phases[0].Name)
	assert.Nil(t, stored.Phases[0].StartDate)
}

func TestUpdatePhaseIndexOutOfRange(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Rollout")
	require.NoError(t, err)

	_, err = svc.UpdatePhase(context.Background(), pm, p.ID, 5, PhaseUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = svc.UpdatePhase(context.Background(), pm, p.ID, -1, PhaseUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEditPermissionsFollowRoleTable(t *testing.T) {
	svc, _ := newProjectFixture(t)
	admin := testutil.NewTestActor(domain.RoleAdmin)
	p, err := svc.Create(context.Background(), admin, "Gated")
	require.NoError(t, err)

	ctx := context.Background()
	operator := testutil.NewTestActor(domain.RoleOperator1)
	designer := testutil.NewTestActor(domain.RoleDesigner)
	sponsor := testutil.NewTestActor(domain.RoleSponsor)

	// Operators edit timeline and risks but not scope or resources.
	_, err = svc.UpdatePhase(ctx, operator, p.ID, 0, PhaseUpdate{Name: strPtr("Kickoff")})
	assert.NoError(t, err)
	_, err = svc.AddRisk(ctx, operator, p.ID, testutil.NewTestRisk("supply delay"))
	assert.NoError(t, err)
	err = svc.Update(ctx, operator, p.ID, ProjectUpdate{Name: strPtr("Renamed")})
	var denied *authz.PermissionDeniedError
	assert.ErrorAs(t, err, &denied)
	err = svc.UpdateBudget(ctx, operator, p.ID, domain.Budget{})
	assert.ErrorAs(t, err, &denied)

	// Designers edit scope and timeline, nothing else.
	err = svc.Update(ctx, designer, p.ID, ProjectUpdate{Name: strPtr("Designed")})
	assert.NoError(t, err)
	_, err = svc.AddRisk(ctx, designer, p.ID, testutil.NewTestRisk("scope creep"))
	assert.ErrorAs(t, err, &denied)

	// Sponsors edit scope and resources but not the timeline.
	err = svc.UpdateBudget(ctx, sponsor, p.ID, domain.Budget{})
	assert.NoError(t, err)
	_, err = svc.UpdatePhase(ctx, sponsor, p.ID, 0, PhaseUpdate{Name: strPtr("x")})
	assert.ErrorAs(t, err, &denied)
}

func TestRiskLifecycle(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager3)
	p, err := svc.Create(context.Background(), pm, "Risky")
	require.NoError(t, err)
	ctx := context.Background()

	r0, err := svc.AddRisk(ctx, pm, p.ID, domain.Risk{
		Category:    "Technical",
		Description: "legacy integration",
		Impact:      domain.RatingHigh,
		Probability: domain.RatingMedium,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r0.ID)
	r1, err := svc.AddRisk(ctx, pm, p.ID, testutil.NewTestRisk("vendor lock-in"))
	require.NoError(t, err)

	err = svc.UpdateRisk(ctx, pm, p.ID, 0, domain.Risk{
		Category:    "Technical",
		Description: "legacy integration, phase 2",
		Impact:      domain.RatingHigh,
		Probability: domain.RatingHigh,
	})
	require.NoError(t, err)

	stored, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Risks, 2)
	// The surrogate id survives an index-addressed replacement.
	assert.Equal(t, r0.ID, stored.Risks[0].ID)
	assert.Equal(t, "legacy integration, phase 2", stored.Risks[0].Description)
	assert.Equal(t, domain.ExposureSevere, stored.Risks[0].Exposure())

	// Delete by index twice: each call addresses the current list.
	require.NoError(t, svc.DeleteRisk(ctx, pm, p.ID, 0))
	stored, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Risks, 1)
	assert.Equal(t, r1.ID, stored.Risks[0].ID)

	err = svc.DeleteRisk(ctx, pm, p.ID, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdateBudgetRejectsNegative(t *testing.T) {
	svc, _ := newProjectFixture(t)
	sponsor := testutil.NewTestActor(domain.RoleSponsor)
	admin := testutil.NewTestActor(domain.RoleAdmin)
	p, err := svc.Create(context.Background(), admin, "Budgeted")
	require.NoError(t, err)

	bad := domain.Budget{PersonnelCosts: decimal.NewFromInt(-1)}
	err = svc.UpdateBudget(context.Background(), sponsor, p.ID, bad)
	assert.ErrorIs(t, err, ErrNegativeBudget)

	stored, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Budget.Total().IsZero())
}

func TestAttachPhaseFiles(t *testing.T) {
	svc, _ := newProjectFixture(t)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Filed")
	require.NoError(t, err)

	accepted, rejected, err := svc.AttachPhaseFiles(context.Background(), pm, p.ID, 2, []attachment.File{
		testutil.NewTestFile("plan.pdf"),
		testutil.NewTestFile("tool.exe"),
		testutil.NewTestFile("big.png", testutil.WithSize(11<<20)),
	})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "plan.pdf", accepted[0].Name)
	assert.Equal(t, pm.ID, accepted[0].UploadedBy)
	require.Len(t, rejected, 2)

	stored, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Phases[2].Attachments, 1)
	assert.Empty(t, stored.Phases[0].Attachments)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc, repo := newProjectFixture(t)
	admin := testutil.NewTestActor(domain.RoleAdmin)
	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Doomed")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), pm, p.ID)
	var denied *authz.PermissionDeniedError
	assert.ErrorAs(t, err, &denied)

	require.NoError(t, svc.Delete(context.Background(), admin, p.ID))
	_, err = repo.GetByID(context.Background(), p.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCommentThreadsSurviveProjectDeletion(t *testing.T) {
	projectRepo := repository.NewMemoryProjectRepo()
	commentRepo := repository.NewMemoryCommentRepo()
	gate := authz.NewGate(nil)
	registry := attachment.NewRegistry(attachment.DefaultConfig())
	projects := NewProjectService(gate, projectRepo, registry, nil)
	comments := NewCommentService(gate, commentRepo, registry, nil)

	admin := testutil.NewTestActor(domain.RoleAdmin)
	ctx := context.Background()
	p, err := projects.Create(ctx, admin, "Ephemeral")
	require.NoError(t, err)

	key := domain.SectionKey(p.ID, domain.SectionScope)
	_, _, err = comments.Add(ctx, admin, key, "kickoff notes", nil)
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, admin, p.ID))

	thread, err := comments.ListBySection(ctx, key)
	require.NoError(t, err)
	assert.Len(t, thread, 1)
}

func TestMutationsAreObserved(t *testing.T) {
	repo := repository.NewMemoryProjectRepo()
	var events []MutationEvent
	obs := observerFunc(func(_ context.Context, e MutationEvent) { events = append(events, e) })
	svc := NewProjectService(authz.NewGate(nil), repo, attachment.NewRegistry(attachment.DefaultConfig()), obs)

	pm := testutil.NewTestActor(domain.RoleProductManager1)
	p, err := svc.Create(context.Background(), pm, "Watched")
	require.NoError(t, err)
	require.NoError(t, svc.Update(context.Background(), pm, p.ID, ProjectUpdate{Name: strPtr("Watched v2")}))

	require.Len(t, events, 2)
	assert.Equal(t, "project.create", events[0].Op)
	assert.Equal(t, "project.update", events[1].Op)
	assert.True(t, events[1].Success)
	assert.Equal(t, pm, events[1].Actor)
}

type observerFunc func(ctx context.Context, e MutationEvent)

func (f observerFunc) ObserveMutation(ctx context.Context, e MutationEvent) { f(ctx, e) }
