package infra

import (
	"net/http"

	"github.com/repostate/repostate/pkg/domain/interfaces"
)

type Clients struct {
	githubApp     interfaces.GitHubApp
	httpClient    HTTPClient
	bqClient      interfaces.BigQuery
	repoStore     interfaces.RepoStore
	commitSource  interfaces.CommitSource
	deliveryQueue interfaces.DeliveryQueue
	onboarding    interfaces.OnboardingTrigger
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) RepoStore() interfaces.RepoStore {
	return x.repoStore
}
func (x *Clients) CommitSource() interfaces.CommitSource {
	return x.commitSource
}
func (x *Clients) DeliveryQueue() interfaces.DeliveryQueue {
	return x.deliveryQueue
}
func (x *Clients) Onboarding() interfaces.OnboardingTrigger {
	return x.onboarding
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithRepoStore(store interfaces.RepoStore) Option {
	return func(x *Clients) {
		x.repoStore = store
	}
}

func WithCommitSource(source interfaces.CommitSource) Option {
	return func(x *Clients) {
		x.commitSource = source
	}
}

func WithDeliveryQueue(queue interfaces.DeliveryQueue) Option {
	return func(x *Clients) {
		x.deliveryQueue = queue
	}
}

func WithOnboarding(trigger interfaces.OnboardingTrigger) Option {
	return func(x *Clients) {
		x.onboarding = trigger
	}
}
