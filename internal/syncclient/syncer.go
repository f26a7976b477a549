package syncclient

import (
	"context"

	"github.com/saulo-duarte/rpm-planner/internal/config"
	"github.com/saulo-duarte/rpm-planner/internal/datestore"
)

// Syncer moves the whole local date store to and from the server.
//
// Pull does not lock the local store while the download is in flight. Edits
// made in that window are overwritten when the downloaded map is applied.
type Syncer struct {
	client *Client
	store  *datestore.Store
}

func NewSyncer(client *Client, store *datestore.Store) *Syncer {
	return &Syncer{client: client, store: store}
}

// Push uploads every stored day and returns how many were sent.
func (s *Syncer) Push(ctx context.Context) (int, error) {
	data, err := s.store.LoadAll()
	if err != nil {
		return 0, err
	}
	if err := s.client.Upload(ctx, data); err != nil {
		return 0, err
	}
	config.WithContext(ctx).WithField("days", len(data)).Info("Pushed local data")
	return len(data), nil
}

// Pull replaces the local date namespace with the server copy. Local state is
// only touched once the download has fully succeeded.
func (s *Syncer) Pull(ctx context.Context) (int, error) {
	data, err := s.client.Download(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.store.SaveAll(data); err != nil {
		return 0, err
	}
	config.WithContext(ctx).WithField("days", len(data)).Info("Pulled remote data")
	return len(data), nil
}
