package gate

import (
	"net/http"

	"github.com/goliatone/go-router"
)

// PrivateRoute gates a route on token presence and, when an allow-list is
// given, on the stored role. It never touches the network: no token means
// redirect to the login route, a role outside the allow-list redirects
// home. Role checks only apply to authenticated sessions, a stored role
// with no token is meaningless.
func (a *RouteAuthenticator) PrivateRoute(allowedRoles ...string) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			session := a.store.Read()

			if !session.Authenticated() {
				a.Logger.Debug("PrivateRoute: no token, redirecting", "path", c.OriginalURL())
				return c.Redirect(a.cfg.GetLoginRoute(), http.StatusFound)
			}

			if !RoleAllowed(session.Role, allowedRoles) {
				a.Logger.Debug(
					"PrivateRoute: role not allowed",
					"role", session.Role,
					"path", c.OriginalURL(),
				)
				return c.Redirect(a.cfg.GetHomeRoute(), http.StatusFound)
			}

			return next(c)
		}
	}
}

// ForumInteractionGuard denies navigation while the generic forum
// interaction ban is active.
func (a *RouteAuthenticator) ForumInteractionGuard() router.MiddlewareFunc {
	return a.banGuard(func(u *User) BanRecord { return u.InteractionBan() })
}

// ForumCreationGuard denies navigation while the forum creation ban is
// active.
func (a *RouteAuthenticator) ForumCreationGuard() router.MiddlewareFunc {
	return a.banGuard(func(u *User) BanRecord { return u.CreationBan() })
}

// banGuard is the shared shape of both forum guards: fetch the acting
// user's profile, evaluate one ban sub-record, and either pass the
// request through or notify and redirect to the forum fallback route.
//
// A failed profile fetch (network error, missing token, expired session)
// is logged and treated as "no ban data", which is equivalent to allow.
// The guard must never block navigation because the profile endpoint is
// down; ban enforcement authority lives server-side.
func (a *RouteAuthenticator) banGuard(pick func(*User) BanRecord) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			if a.profiles == nil {
				return next(c)
			}

			user, err := a.profiles.Profile(c.Context())
			if err != nil {
				a.Logger.Debug("ban guard profile fetch failed, allowing", "error", err)
				return next(c)
			}

			ban := pick(user)
			if ban.Active() {
				a.notifier.Error(ban.Message())
				return c.Redirect(a.cfg.GetForumFallbackRoute(), http.StatusSeeOther)
			}

			return next(c)
		}
	}
}
