package memory

import (
	"sync"

	"github.com/repostate/repostate/pkg/domain/model"
)

// Store is an in-memory implementation of the repository-state store, the
// commit history source and the delivery queue. It mirrors the Firestore
// implementation's semantics and is used by unit tests and local runs.
type Store struct {
	mu         sync.RWMutex
	repos      map[string]map[string]*model.Repository // org/collection -> repo_id -> record
	orgs       map[string]*model.Org
	commits    map[string][]model.Commit // org + "/" + repo_id, earliest first
	deliveries map[string]*model.Delivery
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		repos:      make(map[string]map[string]*model.Repository),
		orgs:       make(map[string]*model.Org),
		commits:    make(map[string][]model.Commit),
		deliveries: make(map[string]*model.Delivery),
	}
}
