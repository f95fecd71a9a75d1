package constants

// Owner kind constants.
const (
	OwnerKindSession = "session"
	OwnerKindUser    = "user"
)

// DefaultSessionID is the well-known fallback owner for anonymous
// callers that supply neither a token nor a session id.
const DefaultSessionID = "default_session"
