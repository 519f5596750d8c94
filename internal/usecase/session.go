package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
)

// SessionUseCase manages per-user planning sessions and gates plan generation
// on the session state machine.
type SessionUseCase interface {
	// Create signs up a session for email and advances it to the form state.
	Create(ctx context.Context, email string) (*domain.Session, error)

	// Get returns the session by id, or domain.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Reset returns a plan_displayed session to the form state.
	Reset(ctx context.Context, id string) (*domain.Session, error)

	// GeneratePlan runs the plan pipeline for the session. A session already
	// showing a plan gets the stored plan back without re-running the
	// pipeline; Reset first to regenerate.
	GeneratePlan(ctx context.Context, id string, req domain.PlanRequest) (*domain.TravelPlan, error)
}

type sessionUseCase struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	plans    PlanUseCase
	clock    timeutil.Clock
	log      zerolog.Logger
}

// NewSessionUseCase creates the in-memory session store.
func NewSessionUseCase(plans PlanUseCase, clock timeutil.Clock, log zerolog.Logger) SessionUseCase {
	return &sessionUseCase{
		sessions: make(map[string]*domain.Session),
		plans:    plans,
		clock:    clock,
		log:      log.With().Str("usecase", "session").Logger(),
	}
}

func (uc *sessionUseCase) Create(_ context.Context, email string) (*domain.Session, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		State:     domain.StateUnauthenticated,
		CreatedAt: uc.clock.Now(),
	}
	if err := session.Authenticate(email); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.sessions[session.ID] = session
	uc.mu.Unlock()

	uc.log.Info().Str("session_id", session.ID).Msg("session created")
	return copySession(session), nil
}

func (uc *sessionUseCase) Get(_ context.Context, id string) (*domain.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copySession(session), nil
}

func (uc *sessionUseCase) Reset(_ context.Context, id string) (*domain.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if err := session.Reset(); err != nil {
		return nil, err
	}

	uc.log.Info().Str("session_id", id).Msg("session reset to form")
	return copySession(session), nil
}

func (uc *sessionUseCase) GeneratePlan(ctx context.Context, id string, req domain.PlanRequest) (*domain.TravelPlan, error) {
	uc.mu.Lock()
	session, ok := uc.sessions[id]
	if !ok {
		uc.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	if session.HasPlan() {
		plan := session.Plan
		uc.mu.Unlock()
		uc.log.Debug().Str("session_id", id).Msg("returning stored plan")
		return plan, nil
	}
	if session.State != domain.StateForm {
		state := session.State
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot generate plan from %s", domain.ErrInvalidTransition, state)
	}
	uc.mu.Unlock()

	// The pipeline runs outside the lock; it can take several seconds.
	plan, err := uc.plans.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := session.AttachPlan(req, plan); err != nil {
		// A concurrent request attached a plan first; serve the stored one.
		if session.HasPlan() {
			return session.Plan, nil
		}
		return nil, err
	}
	return plan, nil
}

// copySession returns a shallow copy so callers cannot mutate stored state.
func copySession(s *domain.Session) *domain.Session {
	c := *s
	return &c
}
