package model

// AuthQueryInput is evaluated by the "data.auth" policy before an event
// delivery is accepted.
type AuthQueryInput struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header"`
	Auth   AuthContext       `json:"auth"`
}

type AuthContext struct {
	// Google holds claims of a verified Google ID token, e.g. from an Eventarc
	// or Pub/Sub push service account.
	Google GoogleIDToken `json:"google"`
}

type GoogleIDToken map[string]any

type AuthQueryOutput struct {
	Allow bool `json:"allow"`
}
