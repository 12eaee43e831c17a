package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
)

// Client is a Firestore-backed implementation of the repository-state store,
// the commit history source and the delivery queue.
//
// Layout: orgs/{org}/{repos|staging_repos}/{repo_id} for repository records,
// orgs/{org}/{collection}/{repo_id}/commits/{sha} for commit history, and
// orgs/{org}/deliveries/{delivery_id} for webhook deliveries. The org
// document itself carries the onboarding flags.
type Client struct {
	client *firestore.Client
}

// New creates a new Firestore-backed store.
func New(ctx context.Context, projectID, databaseID string) (*Client, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Client{
		client: client,
	}, nil
}

// Close releases the underlying Firestore client.
func (r *Client) Close() error {
	if err := r.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Firestore client")
	}
	return nil
}
