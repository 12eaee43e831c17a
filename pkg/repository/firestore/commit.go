package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/repository"
	"google.golang.org/api/iterator"
)

const collectionCommits = "commits"

var _ interfaces.CommitSource = (*Client)(nil)

// Commit history lives under the live collection regardless of scope: it is
// ingested by the pagination workers and read here only to repair event
// timestamps.
func (r *Client) commitCollection(org types.OrgName, repoID types.RepoID) *firestore.CollectionRef {
	scope := model.NewScope(org, true)
	return r.repoCollection(scope).Doc(string(repoID)).Collection(collectionCommits)
}

func (r *Client) EarliestCommit(ctx context.Context, org types.OrgName, repoID types.RepoID) (*model.Commit, error) {
	if repoID == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "repoID is empty")
	}

	iter := r.commitCollection(org, repoID).
		OrderBy("date", firestore.Asc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "no commit history",
			goerr.V("org", org),
			goerr.V("repoID", repoID),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query commit history",
			goerr.V("org", org),
			goerr.V("repoID", repoID),
		)
	}

	var commit model.Commit
	if err := snap.DataTo(&commit); err != nil {
		return nil, goerr.Wrap(err, "failed to decode commit",
			goerr.V("org", org),
			goerr.V("repoID", repoID),
		)
	}

	return &commit, nil
}

// AddCommits stores commit history entries, keyed by SHA so re-ingestion is
// idempotent.
func (r *Client) AddCommits(ctx context.Context, org types.OrgName, repoID types.RepoID, commits ...model.Commit) error {
	coll := r.commitCollection(org, repoID)

	for i := 0; i < len(commits); i += batchSize {
		end := i + batchSize
		if end > len(commits) {
			end = len(commits)
		}

		batch := r.client.Batch()
		for _, commit := range commits[i:end] {
			batch.Set(coll.Doc(commit.SHA), commit)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to store commits",
				goerr.V("org", org),
				goerr.V("repoID", repoID),
			)
		}
	}

	return nil
}
