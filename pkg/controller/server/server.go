package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/types"
	"github.com/repostate/repostate/pkg/utils/errutil"
	"github.com/repostate/repostate/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret      types.GitHubAppSecret
	deliveryQueue interfaces.DeliveryQueue
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithDeliveryQueue enables webhook delivery tracking. Without it deliveries
// are still reconciled but never recorded or acknowledged.
func WithDeliveryQueue(queue interfaces.DeliveryQueue) Option {
	return func(cfg *config) {
		cfg.deliveryQueue = queue
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Validate and parse the webhook delivery synchronously
			input, err := validateGitHubEvent(r, cfg.ghSecret)
			if err != nil {
				errutil.HandleError(ctx, "fail to validate GitHub event", err)
				safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
				return
			}

			if input == nil {
				safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"ignored"}`))
				return
			}

			if input.UpdatedAt != nil {
				// Push deliveries only bump the record's updated_at
				if err := uc.SetRepoUpdatedAt(ctx, input.Scope, input.RepoID(), *input.UpdatedAt); err != nil {
					errutil.HandleError(ctx, "fail to set repo updated_at", err)
					safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
					return
				}
				safeWrite(w, http.StatusOK, []byte(`{"status":"ok"}`))
				return
			}

			if cfg.deliveryQueue != nil && input.Delivery != nil {
				if err := cfg.deliveryQueue.SaveDelivery(ctx, input.Delivery); err != nil {
					errutil.HandleError(ctx, "fail to save delivery", err)
					safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
					return
				}
			}

			// Reconcile in the background: the request context dies with the
			// response, each delivery is an independent unit of work.
			bgCtx := DetachContext(ctx)
			go runReconcile(bgCtx, uc, cfg.deliveryQueue, input)

			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted"}`))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
