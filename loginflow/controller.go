// Package loginflow mediates one login submission cycle: form
// validation, the authentication call, session persistence, and
// navigation. All authentication failures resolve here; none propagate
// further up.
package loginflow

import (
	"context"

	"github.com/instamd/portal-auth/authclient"
	"github.com/instamd/portal-auth/form"
	apperrors "github.com/instamd/portal-auth/internal/errors"
	"github.com/instamd/portal-auth/session"
	"github.com/rs/zerolog/log"
)

// Navigation targets
const (
	RouteDashboard = "/dashboard"
	RouteHome      = "/"
)

// UnexpectedErrorMessage is the banner shown for transport faults and
// unusable responses; details are logged, not exposed.
const UnexpectedErrorMessage = "An unexpected error occurred"

// Authenticator is the authentication client boundary: one request,
// yielding a session or a classified failure.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (*session.Session, error)
}

// Controller drives the login form. It is single-threaded by design:
// all calls happen on the UI event loop, and Busy serialises
// submissions.
type Controller struct {
	form     *form.State
	auth     Authenticator
	store    session.Store
	navigate func(route string)

	banner string
	busy   bool
}

// New creates a controller. navigate is called with the target route on
// a successful login.
func New(auth Authenticator, store session.Store, navigate func(route string)) *Controller {
	return &Controller{
		form:     form.NewState(),
		auth:     auth,
		store:    store,
		navigate: navigate,
	}
}

// Form exposes the form state for rendering
func (c *Controller) Form() *form.State {
	return c.form
}

// Banner returns the submission-level error message, "" when none
func (c *Controller) Banner() string {
	return c.banner
}

// Busy reports whether a submission is in flight; the submit control is
// disabled while true.
func (c *Controller) Busy() bool {
	return c.busy
}

// FieldChanged records a keystroke. Once a field has been touched its
// error updates live with every change.
func (c *Controller) FieldChanged(name, value string) {
	if c.busy {
		return
	}
	c.form.SetField(name, value)
}

// FieldBlurred marks a field touched and validates it
func (c *Controller) FieldBlurred(name string) {
	if c.busy {
		return
	}
	c.form.Blur(name)
}

// Submit runs one submission cycle. A submit while one is already in
// flight is ignored. Validation failures and authentication failures
// both leave the form editable for resubmission.
func (c *Controller) Submit(ctx context.Context) {
	if c.busy {
		return
	}

	c.banner = ""
	c.form.TouchAll()

	if errs := c.form.ValidateAll(); len(errs) > 0 {
		// Field errors are now visible; the service is never called
		return
	}

	c.busy = true
	defer func() { c.busy = false }()

	sess, err := c.auth.Authenticate(ctx, c.form.Value(form.FieldUsername), c.form.Value(form.FieldPassword))
	if err != nil {
		c.banner = bannerFor(err)
		return
	}

	if err := c.store.Save(*sess); err != nil {
		log.Err(err).Msg("login flow: failed to persist session")
		c.banner = UnexpectedErrorMessage
		return
	}

	c.navigate(RouteDashboard)
}

// bannerFor maps a classified authentication failure to its banner
// text. Credential-class failures echo the service message; everything
// else collapses to the generic message.
func bannerFor(err error) string {
	var credErr *authclient.CredentialError
	if apperrors.As(err, &credErr) {
		return credErr.Message
	}
	log.Err(err).Msg("login flow: authentication failed")
	return UnexpectedErrorMessage
}
