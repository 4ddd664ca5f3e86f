package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/services"
)

// SessionCookie is the cookie carrying the raw session token.
const SessionCookie = "hydrolog_session"

const (
	localUserID    = "user_id"
	localUserEmail = "user_email"
)

// RequireSession is the gate in front of every authenticated route. A valid
// session puts the user's identity into locals; anything else short-circuits
// with a redirect to the login page before any handler logic runs. Missing
// and expired sessions are deliberately indistinguishable.
func RequireSession(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := auth.ResolveSession(c.Cookies(SessionCookie))
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(localUserID, session.UserID)
		c.Locals(localUserEmail, session.Email)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user id placed in locals by
// RequireSession.
func CurrentUser(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(localUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return userID, nil
}

// CurrentEmail returns the session's cached email, for display.
func CurrentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localUserEmail).(string)
	return email
}
