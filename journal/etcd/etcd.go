// Package etcd provides an etcd implementation of the pending transaction journal.
package etcd

import (
	"context"
	"fmt"
	"time"

	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/tarantool/go-txflow/journal"
	"github.com/tarantool/go-txflow/marshaller"
	"github.com/tarantool/go-txflow/namer"
	"github.com/tarantool/go-txflow/txn"
)

// DefaultDialTimeout is the dial timeout used by Connect.
const DefaultDialTimeout = 5 * time.Second

// Client defines the minimal interface needed for journal operations.
// It is satisfied by *etcd.Client and etcd.KV.
type Client interface {
	Put(ctx context.Context, key, val string, opts ...etcd.OpOption) (*etcd.PutResponse, error)
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	Delete(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.DeleteResponse, error)
}

// Journal stores entries as msgpack values under <prefix>/pending/<handle>.
type Journal struct {
	client     Client
	namer      namer.Namer
	marshaller marshaller.TypedMarshaller[journal.Entry]
}

var _ journal.Journal = &Journal{} //nolint:exhaustruct

// New creates a journal over the etcd client.
func New(client Client, prefix string) *Journal {
	return &Journal{
		client:     client,
		namer:      namer.NewDefaultNamer(prefix),
		marshaller: marshaller.NewTypedMsgpackMarshaller[journal.Entry](),
	}
}

// Connect creates an etcd client logging through the logger.
func Connect(endpoints []string, logger *zap.Logger) (*etcd.Client, error) {
	client, err := etcd.New(etcd.Config{ //nolint:exhaustruct
		Endpoints:   endpoints,
		DialTimeout: DefaultDialTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	return client, nil
}

// Record implements journal.Journal.
func (j *Journal) Record(ctx context.Context, entry journal.Entry) error {
	key, err := j.namer.Name(entry.Handle)
	if err != nil {
		return fmt.Errorf("failed to name journal entry: %w", err)
	}

	value, err := j.marshaller.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode journal entry: %w", err)
	}

	_, err = j.client.Put(ctx, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}

	return nil
}

// Retire implements journal.Journal.
func (j *Journal) Retire(ctx context.Context, handle txn.Handle) error {
	key, err := j.namer.Name(handle)
	if err != nil {
		return fmt.Errorf("failed to name journal entry: %w", err)
	}

	_, err = j.client.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

// Pending implements journal.Journal.
func (j *Journal) Pending(ctx context.Context) ([]journal.Entry, error) {
	resp, err := j.client.Get(ctx, j.namer.Prefix(), etcd.WithPrefix())
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", j.namer.Prefix(), err)
	}

	entries := make([]journal.Entry, 0, len(resp.Kvs))

	for _, kv := range resp.Kvs {
		handle, err := j.namer.Parse(string(kv.Key))
		if err != nil {
			return nil, fmt.Errorf("failed to parse journal key: %w", err)
		}

		entry, err := j.marshaller.Unmarshal(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode journal entry %s: %w", kv.Key, err)
		}

		if entry.Handle != handle {
			return nil, fmt.Errorf("%w: key %s holds %s", ErrHandleMismatch, kv.Key, entry.Handle)
		}

		entries = append(entries, entry)
	}

	journal.SortEntries(entries)

	return entries, nil
}
