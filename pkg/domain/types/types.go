package types

// AppVersion is replaced at build time by -ldflags "-X".
var AppVersion = "dev"

const (
	EnvProjectID = "GCP_PROJECT"
	EnvTopicID   = "PUBSUB_TOPIC_ID"
)
