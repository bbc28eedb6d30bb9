package session

import (
	"github.com/rs/zerolog/log"
)

// GuardState is the lifecycle state of a protected-page entry
type GuardState string

const (
	StateChecking    GuardState = "checking"
	StateAdmitted    GuardState = "admitted"
	StateRedirecting GuardState = "redirecting"
)

// Guard gates entry to a protected page. Each instance covers one page
// load: it starts in Checking and ends in Admitted or Redirecting, both
// terminal. A fresh navigation takes a fresh Guard.
type Guard struct {
	store    Store
	redirect func()
	state    GuardState
	session  *Session
}

// NewGuard creates a guard over the given store. redirect is invoked
// whenever the guard sends the user back to the unauthenticated entry
// point.
func NewGuard(store Store, redirect func()) *Guard {
	return &Guard{
		store:    store,
		redirect: redirect,
		state:    StateChecking,
	}
}

// State returns the guard's current state
func (g *Guard) State() GuardState {
	return g.state
}

// Session returns the admitted session, nil unless the guard is in
// Admitted.
func (g *Guard) Session() *Session {
	return g.session
}

// Enter resolves the Checking state: it consults the store and either
// admits the page or redirects away. Calling Enter on a settled guard
// is a no-op returning the settled state.
func (g *Guard) Enter() GuardState {
	if g.state != StateChecking {
		return g.state
	}

	sess, err := g.store.Load()
	if err != nil {
		log.Err(err).Msg("session guard: load failed, redirecting")
	}
	if err != nil || sess == nil {
		g.state = StateRedirecting
		g.redirect()
		return g.state
	}

	g.session = sess
	g.state = StateAdmitted
	return g.state
}

// Logout handles an explicit logout while admitted: both storage slots
// are cleared, then the user is sent to the unauthenticated entry
// point. Calling Logout in any other state is a no-op.
func (g *Guard) Logout() error {
	if g.state != StateAdmitted {
		return nil
	}

	err := g.store.Clear()
	g.session = nil
	g.state = StateRedirecting
	g.redirect()
	return err
}
