package domain

import (
	"fmt"
	"time"
)

// SessionState is one node of the session finite-state machine.
type SessionState string

// Session states. The lifecycle is
// unauthenticated -> authenticated -> form -> plan_displayed -> form (reset).
const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
	StateForm            SessionState = "form"
	StatePlanDisplayed   SessionState = "plan_displayed"
)

// Session models one user's planning session as an explicit state object
// rather than ambient flags. It is confined to a single user and requires no
// cross-request locking beyond the store that owns it.
type Session struct {
	// ID is the session identifier
	ID string `json:"id"`

	// Email is the signup email captured at authentication
	Email string `json:"email,omitempty"`

	// State is the current FSM state
	State SessionState `json:"state"`

	// FormData preserves the last submitted form values across resets
	FormData *PlanRequest `json:"formData,omitempty"`

	// Plan is the generated plan while in plan_displayed state
	Plan *TravelPlan `json:"plan,omitempty"`

	// CreatedAt is the session creation time
	CreatedAt time.Time `json:"createdAt"`
}

// Authenticate transitions unauthenticated -> authenticated -> form.
// Email signup and form entry are one step from the caller's point of view.
func (s *Session) Authenticate(email string) error {
	if s.State != StateUnauthenticated {
		return fmt.Errorf("%w: cannot authenticate from %s", ErrInvalidTransition, s.State)
	}
	s.Email = email
	s.State = StateForm
	return nil
}

// AttachPlan transitions form -> plan_displayed and stores the plan along
// with the form values that produced it.
func (s *Session) AttachPlan(req PlanRequest, plan *TravelPlan) error {
	if s.State != StateForm {
		return fmt.Errorf("%w: cannot attach plan from %s", ErrInvalidTransition, s.State)
	}
	s.FormData = &req
	s.Plan = plan
	s.State = StatePlanDisplayed
	return nil
}

// Reset transitions plan_displayed -> form, discarding the plan but keeping
// the form values so the user can tweak and regenerate.
func (s *Session) Reset() error {
	if s.State != StatePlanDisplayed {
		return fmt.Errorf("%w: cannot reset from %s", ErrInvalidTransition, s.State)
	}
	s.Plan = nil
	s.State = StateForm
	return nil
}

// HasPlan reports whether the session currently holds a generated plan.
func (s *Session) HasPlan() bool {
	return s.State == StatePlanDisplayed && s.Plan != nil
}
