package auth

// UserClaims is what handlers get to know about the caller. Resolved once per
// request by the auth middleware and carried on the request context.
type UserClaims interface {
	UserID() string
	Email() string
	Name() string
	Source() string
}

// SessionClaims are claims backed by a Redis session resolved from a bearer
// token.
type SessionClaims struct {
	UserUUID  string
	EmailVal  string
	NameVal   string
	SessionID string
}

func (c *SessionClaims) UserID() string { return c.UserUUID }
func (c *SessionClaims) Email() string  { return c.EmailVal }
func (c *SessionClaims) Name() string   { return c.NameVal }
func (c *SessionClaims) Source() string { return "SESSION" }
