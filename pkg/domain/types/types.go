package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	OrgName    string
	OrgID      int64
	RepoID     string
	DeliveryID string
	RequestID  string

	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	SentryDSN string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

// A Sentry DSN embeds the project key, so it is masked like a credential.
func (x SentryDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SentryDSN) String() string {
	return "***********"
}
