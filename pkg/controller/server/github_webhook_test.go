package server_test

import (
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"github.com/repostate/repostate/pkg/controller/server"
	"github.com/repostate/repostate/pkg/domain/types"
)

func TestRepositoryEventToInput(t *testing.T) {
	t.Run("created event maps to a full patch", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		event := &github.RepositoryEvent{
			Action: github.String("created"),
			Repo: &github.Repository{
				ID:            github.Int64(12345),
				Name:          github.String("widget"),
				DefaultBranch: github.String("main"),
				Language:      github.String("Go"),
				Size:          github.Int(2048),
				Private:       github.Bool(true),
				CreatedAt:     &github.Timestamp{Time: createdAt},
				Owner: &github.User{
					Login: github.String("acme"),
				},
			},
			Org: &github.Organization{
				Login: github.String("acme"),
				ID:    github.Int64(42),
			},
		}

		input := server.RepositoryEventToInputForTest(event, "delivery-1", "repository")
		gt.V(t, input.Event.Action).Equal(types.ActionCreated)
		gt.V(t, input.Event.Repo.RepoID).Equal(types.RepoID("12345"))
		gt.V(t, *input.Event.Repo.Name).Equal("widget")
		gt.V(t, *input.Event.Repo.Org).Equal(types.OrgName("acme"))
		gt.V(t, *input.Event.Repo.OrgID).Equal(types.OrgID(42))
		gt.V(t, *input.Event.Repo.CreatedAt).Equal(createdAt)
		gt.V(t, input.Scope.Org).Equal(types.OrgName("acme"))

		gt.V(t, input.Delivery.ID).Equal(types.DeliveryID("delivery-1"))
		gt.V(t, input.Delivery.Org).Equal(types.OrgName("acme"))
		gt.V(t, input.Delivery.Event).Equal("repository")
	})

	t.Run("owner login is the org fallback", func(t *testing.T) {
		event := &github.RepositoryEvent{
			Action: github.String("deleted"),
			Repo: &github.Repository{
				ID: github.Int64(67890),
				Owner: &github.User{
					Login: github.String("solo-owner"),
				},
			},
		}

		input := server.RepositoryEventToInputForTest(event, "", "repository")
		gt.V(t, input.Event.Action).Equal(types.ActionDeleted)
		gt.V(t, input.Scope.Org).Equal(types.OrgName("solo-owner"))
		gt.V(t, input.Delivery).Equal(nil) // no delivery header, nothing to track
	})

	t.Run("unrecognized action parses to unknown", func(t *testing.T) {
		event := &github.RepositoryEvent{
			Action: github.String("publicized"),
			Repo: &github.Repository{
				ID: github.Int64(1),
			},
		}

		input := server.RepositoryEventToInputForTest(event, "d", "repository")
		gt.V(t, input.Event.Action).Equal(types.ActionUnknown)
	})

	t.Run("event without repo is dropped", func(t *testing.T) {
		event := &github.RepositoryEvent{
			Action: github.String("created"),
		}
		input := server.RepositoryEventToInputForTest(event, "d", "repository")
		gt.V(t, input).Equal(nil)
	})
}

func TestPushEventToInput(t *testing.T) {
	t.Run("push event carries the commit timestamp", func(t *testing.T) {
		at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
		event := &github.PushEvent{
			Repo: &github.PushEventRepository{
				ID: github.Int64(555),
				Owner: &github.User{
					Login: github.String("acme"),
				},
			},
			HeadCommit: &github.HeadCommit{
				ID:        github.String("abc123"),
				Timestamp: &github.Timestamp{Time: at},
			},
		}

		input := server.PushEventToInputForTest(event)
		gt.V(t, input.RepoID()).Equal(types.RepoID("555"))
		gt.V(t, *input.UpdatedAt).Equal(at)
		gt.V(t, input.Scope.Org).Equal(types.OrgName("acme"))
		gt.V(t, input.Event).Equal(nil)
	})

	t.Run("push event without repo is dropped", func(t *testing.T) {
		input := server.PushEventToInputForTest(&github.PushEvent{})
		gt.V(t, input).Equal(nil)
	})
}
