package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
)

// stubPlans counts pipeline invocations and returns a fixed plan.
type stubPlans struct {
	calls int
	plan  *domain.TravelPlan
	err   error
}

func (s *stubPlans) Generate(_ context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	plan := *s.plan
	plan.Request = req
	return &plan, nil
}

func newSessionFixture(plans PlanUseCase) SessionUseCase {
	return NewSessionUseCase(plans, timeutil.NewMockClock(time.Now()), logger.Nop())
}

func TestSessionCreate(t *testing.T) {
	uc := newSessionFixture(&stubPlans{plan: &domain.TravelPlan{}})

	session, err := uc.Create(context.Background(), "traveler@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "traveler@example.com", session.Email)
	assert.Equal(t, domain.StateForm, session.State, "signup lands directly in the form state")

	fetched, err := uc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, fetched.ID)
}

func TestSessionCreate_RequiresEmail(t *testing.T) {
	uc := newSessionFixture(&stubPlans{plan: &domain.TravelPlan{}})
	_, err := uc.Create(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSessionGet_Unknown(t *testing.T) {
	uc := newSessionFixture(&stubPlans{plan: &domain.TravelPlan{}})
	_, err := uc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestGeneratePlan_Lifecycle(t *testing.T) {
	plans := &stubPlans{plan: &domain.TravelPlan{Itinerary: "text"}}
	uc := newSessionFixture(plans)

	session, err := uc.Create(context.Background(), "traveler@example.com")
	require.NoError(t, err)

	plan, err := uc.GeneratePlan(context.Background(), session.ID, planRequest())
	require.NoError(t, err)
	assert.Equal(t, "text", plan.Itinerary)
	assert.Equal(t, 1, plans.calls)

	// A session already displaying a plan serves the stored plan.
	again, err := uc.GeneratePlan(context.Background(), session.ID, planRequest())
	require.NoError(t, err)
	assert.Equal(t, plan, again)
	assert.Equal(t, 1, plans.calls, "pipeline must not re-run while plan is displayed")

	current, err := uc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlanDisplayed, current.State)
	require.NotNil(t, current.FormData)
	assert.Equal(t, planRequest().Destination, current.FormData.Destination)

	// Reset returns to the form, keeps form data, discards the plan.
	reset, err := uc.Reset(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateForm, reset.State)
	assert.Nil(t, reset.Plan)
	require.NotNil(t, reset.FormData)

	// Regeneration runs the pipeline again.
	_, err = uc.GeneratePlan(context.Background(), session.ID, planRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, plans.calls)
}

func TestGeneratePlan_UnknownSession(t *testing.T) {
	uc := newSessionFixture(&stubPlans{plan: &domain.TravelPlan{}})
	_, err := uc.GeneratePlan(context.Background(), "nope", planRequest())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestGeneratePlan_PipelineErrorLeavesFormState(t *testing.T) {
	plans := &stubPlans{err: errors.New("pipeline blew up")}
	uc := newSessionFixture(plans)

	session, err := uc.Create(context.Background(), "traveler@example.com")
	require.NoError(t, err)

	_, err = uc.GeneratePlan(context.Background(), session.ID, planRequest())
	require.Error(t, err)

	current, err := uc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateForm, current.State, "failed generation must not advance the FSM")
}

func TestReset_InvalidFromForm(t *testing.T) {
	uc := newSessionFixture(&stubPlans{plan: &domain.TravelPlan{}})

	session, err := uc.Create(context.Background(), "traveler@example.com")
	require.NoError(t, err)

	_, err = uc.Reset(context.Background(), session.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}
