package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/domain/model"
	"github.com/repostate/repostate/pkg/repository"
	"github.com/repostate/repostate/pkg/utils/logging"
)

const collectionDeliveries = "deliveries"

var _ interfaces.DeliveryQueue = (*Client)(nil)

func (r *Client) deliveryDoc(d *model.Delivery) *firestore.DocumentRef {
	return r.orgDoc(d.Org).Collection(collectionDeliveries).Doc(string(d.ID))
}

func (r *Client) SaveDelivery(ctx context.Context, d *model.Delivery) error {
	if d.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is empty")
	}

	if _, err := r.deliveryDoc(d).Set(ctx, d); err != nil {
		return goerr.Wrap(err, "failed to save delivery", goerr.V("deliveryID", d.ID))
	}

	return nil
}

func (r *Client) NotifyProcessed(ctx context.Context, d *model.Delivery) error {
	if d.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is empty")
	}

	_, err := r.deliveryDoc(d).Update(ctx, []firestore.Update{
		{Path: "processed", Value: true},
		{Path: "processed_at", Value: logging.CtxTime(ctx)},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to mark delivery processed", goerr.V("deliveryID", d.ID))
	}

	return nil
}

func (r *Client) MarkFailed(ctx context.Context, d *model.Delivery, reason string) error {
	if d.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "delivery ID is empty")
	}

	_, err := r.deliveryDoc(d).Update(ctx, []firestore.Update{
		{Path: "attempts", Value: firestore.Increment(1)},
		{Path: "last_error", Value: reason},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to mark delivery failed", goerr.V("deliveryID", d.ID))
	}

	return nil
}
