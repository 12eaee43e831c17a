package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/utils/errutil"
	"github.com/repostate/repostate/pkg/utils/logging"
)

// reconcileInput is one webhook delivery mapped into the domain. Either Event
// (repository lifecycle delivery) or UpdatedAt (push delivery) is set; a nil
// reconcileInput means the delivery carries nothing we track.
type reconcileInput struct {
	Event    *model.Event
	Delivery *model.Delivery
	Scope    model.Scope

	UpdatedAt *time.Time
	pushRepo  types.RepoID
}

func (x *reconcileInput) RepoID() types.RepoID {
	if x.Event != nil {
		return x.Event.Repo.RepoID
	}
	return x.pushRepo
}

// validateGitHubEvent validates the delivery signature and maps the payload
// into a reconcileInput. It is synchronous and runs before any background
// processing starts.
func validateGitHubEvent(r *http.Request, key types.GitHubAppSecret) (*reconcileInput, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub event",
		slog.String("type", github.WebHookType(r)),
		slog.String("delivery", github.DeliveryID(r)),
	)

	switch ev := event.(type) {
	case *github.RepositoryEvent:
		return repositoryEventToInput(ev, github.DeliveryID(r), github.WebHookType(r)), nil
	case *github.PushEvent:
		return pushEventToInput(ev), nil
	default:
		return nil, nil
	}
}

func repositoryEventToInput(ev *github.RepositoryEvent, deliveryID, eventType string) *reconcileInput {
	repo := ev.GetRepo()
	if repo.GetID() == 0 {
		logging.Default().Warn("ignore repository event without repo", slog.Any("event", ev))
		return nil
	}

	org := types.OrgName(ev.GetOrg().GetLogin())
	if org == "" {
		org = types.OrgName(repo.GetOwner().GetLogin())
	}
	orgID := types.OrgID(ev.GetOrg().GetID())

	patch := model.RepositoryPatch{
		RepoID:        types.RepoID(strconv.FormatInt(repo.GetID(), 10)),
		Name:          model.Ptr(repo.GetName()),
		Org:           model.Ptr(org),
		DefaultBranch: model.Ptr(repo.GetDefaultBranch()),
		Language:      model.Ptr(repo.GetLanguage()),
		Size:          model.Ptr(int64(repo.GetSize())),
		Private:       model.Ptr(repo.GetPrivate()),
		Archived:      model.Ptr(repo.GetArchived()),
	}
	if orgID != 0 {
		patch.OrgID = model.Ptr(orgID)
	}
	if !repo.GetCreatedAt().IsZero() {
		patch.CreatedAt = model.Ptr(repo.GetCreatedAt().Time)
	}
	if !repo.GetUpdatedAt().IsZero() {
		patch.UpdatedAt = model.Ptr(repo.GetUpdatedAt().Time)
	}

	input := &reconcileInput{
		Event: &model.Event{
			Action: types.ParseAction(ev.GetAction()),
			Repo:   patch,
		},
		Scope: model.NewScope(org, true),
	}

	if deliveryID != "" {
		input.Delivery = &model.Delivery{
			ID:         types.DeliveryID(deliveryID),
			Org:        org,
			OrgID:      orgID,
			Event:      eventType,
			ReceivedAt: time.Now(),
		}
	}

	return input
}

func pushEventToInput(ev *github.PushEvent) *reconcileInput {
	repo := ev.GetRepo()
	if repo.GetID() == 0 {
		logging.Default().Warn("ignore push event without repo", slog.Any("event", ev))
		return nil
	}

	at := time.Now()
	if ts := ev.GetHeadCommit().GetTimestamp(); !ts.IsZero() {
		at = ts.Time
	}

	org := types.OrgName(repo.GetOwner().GetLogin())

	return &reconcileInput{
		Scope:     model.NewScope(org, true),
		UpdatedAt: model.Ptr(at),
		pushRepo:  types.RepoID(strconv.FormatInt(repo.GetID(), 10)),
	}
}

// runReconcile executes the reconciliation in the provided context. Designed
// to be called from a background goroutine; on failure the delivery is marked
// failed (best effort) and stays eligible for redelivery.
func runReconcile(ctx context.Context, uc interfaces.UseCase, queue interfaces.DeliveryQueue, input *reconcileInput) {
	logger := logging.From(ctx).With(slog.Any("repoID", input.RepoID()))

	result, err := uc.ReconcileEvent(ctx, input.Event, input.Delivery, input.Scope)
	if err != nil {
		errutil.HandleError(ctx, "background reconciliation failed", err)
		if queue != nil && input.Delivery != nil {
			if mErr := queue.MarkFailed(ctx, input.Delivery, err.Error()); mErr != nil {
				errutil.HandleError(ctx, "fail to mark delivery failed", mErr)
			}
		}
		return
	}

	logger.Info("reconciliation completed", slog.Any("result", result))
}
