package etcd_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/mvccpb"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-txflow/journal"
	journalEtcd "github.com/tarantool/go-txflow/journal/etcd"
	"github.com/tarantool/go-txflow/marshaller"
)

// fakeKV is an in-memory subset of the etcd KV API.
type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{mu: sync.Mutex{}, data: map[string]string{}, err: nil}
}

func (f *fakeKV) Put(_ context.Context, key, val string, _ ...etcd.OpOption) (*etcd.PutResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	f.data[key] = val

	return &etcd.PutResponse{}, nil //nolint:exhaustruct
}

func (f *fakeKV) Get(_ context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	op := etcd.OpGet(key, opts...)
	end := string(op.RangeBytes())

	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		if k == key || (end != "" && k >= key && k < end) {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	kvs := make([]*mvccpb.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &mvccpb.KeyValue{Key: []byte(k), Value: []byte(f.data[k])}) //nolint:exhaustruct
	}

	return &etcd.GetResponse{Kvs: kvs, Count: int64(len(kvs))}, nil //nolint:exhaustruct
}

func (f *fakeKV) Delete(_ context.Context, key string, _ ...etcd.OpOption) (*etcd.DeleteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	delete(f.data, key)

	return &etcd.DeleteResponse{}, nil //nolint:exhaustruct
}

func TestJournal_RecordRetire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := newFakeKV()
	j := journalEtcd.New(kv, "/txflow")
	base := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	second := journal.Entry{Handle: "tx-2", Fingerprint: "f2", SubmittedAt: base.Add(time.Second)}
	first := journal.Entry{Handle: "tx-1", Fingerprint: "f1", SubmittedAt: base}

	require.NoError(t, j.Record(ctx, second))
	require.NoError(t, j.Record(ctx, first))

	assert.Contains(t, kv.data, "/txflow/pending/tx-1")
	assert.Contains(t, kv.data, "/txflow/pending/tx-2")

	pending, err := j.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "tx-1", pending[0].Handle.String())
	assert.True(t, base.Equal(pending[0].SubmittedAt))
	assert.Equal(t, "f2", pending[1].Fingerprint)

	require.NoError(t, j.Retire(ctx, "tx-1"))

	pending, err = j.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "tx-2", pending[0].Handle.String())
}

func TestJournal_IgnoresOtherPrefixes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := newFakeKV()
	kv.data["/other/pending/tx-9"] = "garbage"

	j := journalEtcd.New(kv, "/txflow")

	pending, err := j.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestJournal_Pending_Corrupted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("undecodable value", func(t *testing.T) {
		t.Parallel()

		kv := newFakeKV()
		kv.data["/txflow/pending/tx-1"] = "\xc1"

		_, err := journalEtcd.New(kv, "/txflow").Pending(ctx)

		var unmarshalErr marshaller.UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
	})

	t.Run("foreign handle", func(t *testing.T) {
		t.Parallel()

		value, err := marshaller.NewTypedMsgpackMarshaller[journal.Entry]().Marshal(journal.Entry{
			Handle: "tx-2", Fingerprint: "", SubmittedAt: time.Now(),
		})
		require.NoError(t, err)

		kv := newFakeKV()
		kv.data["/txflow/pending/tx-1"] = string(value)

		_, err = journalEtcd.New(kv, "/txflow").Pending(ctx)
		require.ErrorIs(t, err, journalEtcd.ErrHandleMismatch)
	})
}

func TestJournal_ClientErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := newFakeKV()
	kv.err = errors.New("etcdserver: request timed out")

	j := journalEtcd.New(kv, "/txflow")

	require.ErrorIs(t, j.Record(ctx, journal.Entry{Handle: "tx-1", Fingerprint: "", SubmittedAt: time.Now()}), kv.err)
	require.ErrorIs(t, j.Retire(ctx, "tx-1"), kv.err)

	_, err := j.Pending(ctx)
	require.ErrorIs(t, err, kv.err)
}

func TestJournal_InvalidHandle(t *testing.T) {
	t.Parallel()

	j := journalEtcd.New(newFakeKV(), "/txflow")

	err := j.Record(context.Background(), journal.Entry{Handle: "", Fingerprint: "", SubmittedAt: time.Now()})
	require.Error(t, err)
}
