package models

// AuthProvider identifies which authentication backend established the cached
// session.
type AuthProvider string

const (
	ProviderNone     AuthProvider = ""
	ProviderEmail    AuthProvider = "EMAIL"
	ProviderGoogle   AuthProvider = "GOOGLE"
	ProviderFacebook AuthProvider = "FACEBOOK"
)

// Social reports whether the provider is a social sign-in backend. Social
// sessions that were only soft-logged-out may be resumed without credentials.
func (p AuthProvider) Social() bool {
	return p == ProviderGoogle || p == ProviderFacebook
}

// SessionState is the durable session flag pair read by UI code to decide
// routing. SoftLoggedOut=true means the Identity and CredentialRecord remain
// cached but the user must re-authenticate (possibly offline) before the
// application is usable.
type SessionState struct {
	Provider      AuthProvider `json:"provider"`
	SoftLoggedOut bool         `json:"soft_logged_out"`
}

// SessionPhase is the in-memory session state machine position derived from
// durable state and the remote session.
type SessionPhase int

const (
	PhaseUnauthenticated SessionPhase = iota
	PhaseAuthenticating
	PhaseActiveOnline
	PhaseActiveOffline
	PhaseSoftLoggedOut
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseActiveOnline:
		return "active_online"
	case PhaseActiveOffline:
		return "active_offline"
	case PhaseSoftLoggedOut:
		return "soft_logged_out"
	default:
		return "unknown"
	}
}
