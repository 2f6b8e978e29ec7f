package session

import (
	"context"

	"goat-dashboard/internal/domain"
)

// LoginPath is where unauthenticated or mis-matched sessions are sent.
const LoginPath = "/login"

// State is the guard's terminal state for one mount.
type State string

const (
	StateChecking      State = "checking"
	StateAuthenticated State = "authenticated"
	StateRedirecting   State = "redirecting"
)

// Decision is the outcome of one guard evaluation.
type Decision struct {
	State      State
	RedirectTo string
	User       *domain.User
}

// Evaluate is the pure entry check: cached session + required role in,
// decision out. It trusts the cached role; it is an optimistic gate, not a
// security boundary — privileged server calls re-verify the token themselves.
func Evaluate(sess *Session, required domain.Role) Decision {
	if sess == nil || sess.Token == "" || sess.User == nil {
		return Decision{State: StateRedirecting, RedirectTo: LoginPath}
	}
	if sess.User.Role != required {
		return Decision{State: StateRedirecting, RedirectTo: LoginPath}
	}
	return Decision{State: StateAuthenticated, User: sess.User}
}

// Verifier confirms a token server-side. Satisfied by service.SessionService.
type Verifier interface {
	Resolve(ctx context.Context, tokenString string) (*domain.User, error)
}

// Guard gates one protected portal. Each mount re-evaluates against the
// store; nothing is cached between mounts.
type Guard struct {
	Portal   string
	Required domain.Role

	store *Store

	// verifier, when set, confirms the token with the server on every
	// mount instead of trusting the cached snapshot alone.
	verifier Verifier
}

func NewGuard(portal string, required domain.Role, store *Store) *Guard {
	return &Guard{
		Portal:   portal,
		Required: required,
		store:    store,
	}
}

// WithVerifier enables server confirmation on mount.
func (g *Guard) WithVerifier(v Verifier) *Guard {
	g.verifier = v
	return g
}

// Mount runs the entry check for this portal.
func (g *Guard) Mount(ctx context.Context) Decision {
	sess := g.store.Get()

	if g.verifier != nil && sess != nil && sess.Token != "" {
		user, err := g.verifier.Resolve(ctx, sess.Token)
		if err != nil {
			g.store.Clear()
			return Decision{State: StateRedirecting, RedirectTo: LoginPath}
		}
		sess.User = user
	}

	return Evaluate(sess, g.Required)
}

// Logout clears the client session; any guard mounted afterwards redirects.
func (g *Guard) Logout() {
	g.store.Clear()
}
