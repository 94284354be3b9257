package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/xid"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/logger"
)

const bucketName = "steuerpilot_returns"

// ErrNotFound is returned when no return exists under the requested ID.
var ErrNotFound = errors.New("store: return not found")

// Store is the return repository. One Store owns the embedded server; open
// it once per process and close it on exit.
type Store struct {
	ns *server.Server
	nc *nats.Conn
	kv jetstream.KeyValue
}

// Open starts the embedded server and binds the returns bucket.
func Open(ctx context.Context, dataDir string) (*Store, error) {
	ns, err := startEmbedded(dataDir)
	if err != nil {
		return nil, err
	}
	nc, err := connectInProcess(ns)
	if err != nil {
		shutdown(nil, ns)
		return nil, err
	}
	js, err := newJetStream(nc)
	if err != nil {
		shutdown(nc, ns)
		return nil, err
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:  bucketName,
		Storage: jetstream.FileStorage,
	})
	if err != nil {
		shutdown(nc, ns)
		return nil, fmt.Errorf("store: binding bucket: %w", err)
	}
	return &Store{ns: ns, nc: nc, kv: kv}, nil
}

// Close drains and stops the embedded server.
func (s *Store) Close() error {
	return shutdown(s.nc, s.ns)
}

// Save writes a return document under its ID.
func (s *Store) Save(ctx context.Context, id string, doc document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encoding return %s: %w", id, err)
	}
	if _, err := s.kv.Put(ctx, id, data); err != nil {
		return fmt.Errorf("store: saving return %s: %w", id, err)
	}
	logger.Debug("store: saved return %s (%d bytes)", id, len(data))
	return nil
}

// Load reads a return document by ID.
func (s *Store) Load(ctx context.Context, id string) (document.Document, error) {
	entry, err := s.kv.Get(ctx, id)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return document.Document{}, ErrNotFound
		}
		return document.Document{}, fmt.Errorf("store: loading return %s: %w", id, err)
	}
	var doc document.Document
	if err := json.Unmarshal(entry.Value(), &doc); err != nil {
		return document.Document{}, fmt.Errorf("store: decoding return %s: %w", id, err)
	}
	return doc, nil
}

// List returns the IDs of all stored returns.
func (s *Store) List(ctx context.Context) ([]string, error) {
	lister, err := s.kv.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: listing returns: %w", err)
	}
	var ids []string
	for key := range lister.Keys() {
		ids = append(ids, key)
	}
	return ids, nil
}

// Delete removes a return and its history.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.kv.Purge(ctx, id); err != nil {
		return fmt.Errorf("store: deleting return %s: %w", id, err)
	}
	return nil
}

// ReturnID derives a KV-safe ID from a human name ("Steuern 2025" becomes
// "steuern-2025"). Names that slug down to nothing get a generated ID.
func ReturnID(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return xid.New().String()
}
