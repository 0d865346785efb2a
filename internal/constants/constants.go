package constants

const (
	// SessionCookieName is the cookie carrying the resolved role session.
	SessionCookieName = "teamhub_session"

	// SessionKeyRole is the session key under which the resolved role is stored.
	SessionKeyRole = "role"

	// ContextKeyRole is the gin context key for the authenticated role.
	ContextKeyRole = "role"
)
