package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/utils/logging"
)

// OrgOnboarder starts the onboarding/pagination workflow for an organization
// by resetting the org document's completion flags, so pagination workers
// pick the org up again. Re-triggering an already onboarded org writes the
// same flags and is harmless.
type OrgOnboarder struct {
	store interfaces.RepoStore
}

var _ interfaces.OnboardingTrigger = (*OrgOnboarder)(nil)

func NewOrgOnboarder(store interfaces.RepoStore) *OrgOnboarder {
	return &OrgOnboarder{store: store}
}

func (x *OrgOnboarder) TriggerOnboarding(ctx context.Context, org types.OrgName, orgID types.OrgID) error {
	o := &model.Org{
		ID:               orgID,
		Name:             org,
		OnboardComplete:  false,
		PaginateComplete: false,
		UpdatedAt:        logging.CtxTime(ctx),
	}
	if err := x.store.SaveOrg(ctx, o); err != nil {
		return goerr.Wrap(err, "failed to save org for onboarding",
			goerr.V("org", org),
			goerr.V("orgID", orgID),
		)
	}

	logging.From(ctx).Info("triggered org onboarding",
		slog.Any("org", org),
		slog.Any("orgID", orgID),
	)

	return nil
}
