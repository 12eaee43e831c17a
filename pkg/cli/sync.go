package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/repostate/repostate/pkg/cli/config"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/infra"
	"github.com/repostate/repostate/pkg/repository/memory"
	"github.com/repostate/repostate/pkg/usecase"
	"github.com/repostate/repostate/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		org         string
		orgID       int64
		installID   int64
		provisional bool
		refresh     bool

		githubApp config.GitHubApp
		firestore config.Firestore
	)
	syncFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "org",
			Usage:       "Organization to sync",
			Sources:     cli.EnvVars("REPOSTATE_SYNC_ORG"),
			Destination: &org,
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "org-id",
			Usage:       "Organization ID",
			Sources:     cli.EnvVars("REPOSTATE_SYNC_ORG_ID"),
			Destination: &orgID,
		},
		&cli.Int64Flag{
			Name:        "installation-id",
			Usage:       "GitHub App installation ID for the organization",
			Sources:     cli.EnvVars("REPOSTATE_SYNC_INSTALLATION_ID"),
			Destination: &installID,
			Required:    true,
		},
		&cli.BoolFlag{
			Name:        "provisional",
			Usage:       "Write into the provisional (staging) collection instead of the live one",
			Destination: &provisional,
		},
		&cli.BoolFlag{
			Name:        "refresh",
			Usage:       "Only refresh details of already-tracked repositories, without inserting new records",
			Destination: &refresh,
		},
	}

	return &cli.Command{
		Name:  "sync",
		Usage: "One-shot full repository list resync for an organization",
		Flags: slice.Flatten(
			syncFlags,
			githubApp.Flags(),
			firestore.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting sync",
				slog.String("org", org),
				slog.Int64("installationID", installID),
				slog.Bool("provisional", provisional),
				slog.Bool("refresh", refresh),
			)

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			var repoStore interfaces.RepoStore
			if firestore.Enabled() {
				fsClient, err := firestore.NewClient(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := fsClient.Close(); err != nil {
						logging.Default().Error("failed to close firestore client", "error", err)
					}
				}()
				repoStore = fsClient
			} else {
				logging.Default().Warn("firestore is not configured, syncing into an in-memory store")
				repoStore = memory.New()
			}

			uc := usecase.New(infra.New(
				infra.WithGitHubApp(ghApp),
				infra.WithRepoStore(repoStore),
			))

			input := &model.SyncOrgReposInput{
				Org:       types.OrgName(org),
				OrgID:     types.OrgID(orgID),
				InstallID: types.GitHubAppInstallID(installID),
				Scope:     model.NewScope(types.OrgName(org), !provisional),
				Refresh:   refresh,
			}
			return uc.SyncOrgRepos(ctx, input)
		},
	}
}
