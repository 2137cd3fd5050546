package watch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louhi-io/louhi/snapshot"
	"github.com/louhi-io/louhi/types"
)

// fakeRunner returns a fresh snapshot per call, timestamped by a fake clock
type fakeRunner struct {
	clock time.Time
	err   error
	runs  int
}

func (f *fakeRunner) Run(ctx context.Context, regions, services []string) (*types.InventorySnapshot, error) {
	f.runs++
	if f.err != nil {
		return nil, f.err
	}
	f.clock = f.clock.Add(time.Minute)
	return types.NewSnapshot(f.clock, regions, services), nil
}

func testStore(t *testing.T) *snapshot.Store {
	t.Helper()
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "watch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestWatcherRunsImmediately(t *testing.T) {
	runner := &fakeRunner{clock: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	store := testStore(t)

	w, err := New(Config{
		Interval: time.Hour,
		Regions:  []string{"us-east-1"},
		Services: []string{"ec2"},
	}, runner, store, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return w.ScanCount() >= 1
	}, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 1, runner.runs)
	assert.Len(t, store.Keys(), 1)
}

func TestWatcherTicks(t *testing.T) {
	runner := &fakeRunner{clock: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
	store := testStore(t)

	w, err := New(Config{Interval: 20 * time.Millisecond}, runner, store, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return w.ScanCount() >= 3
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, len(store.Keys()), 3)
}

func TestWatcherSurvivesScanFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("credentials expired")}
	store := testStore(t)

	w, err := New(Config{Interval: time.Hour}, runner, store, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, w.Start(ctx))

	assert.Equal(t, int64(1), w.ScanCount())
	assert.Empty(t, store.Keys())
}

// blankRunner returns snapshots the store rejects (no timestamp)
type blankRunner struct{}

func (blankRunner) Run(ctx context.Context, regions, services []string) (*types.InventorySnapshot, error) {
	return &types.InventorySnapshot{}, nil
}

func TestWatcherSurvivesStoreFailure(t *testing.T) {
	store := testStore(t)

	var buf bytes.Buffer
	w, err := New(Config{Interval: time.Hour}, blankRunner{}, store, zerolog.New(&buf))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, w.Start(ctx))

	assert.Equal(t, int64(1), w.ScanCount())
	assert.Empty(t, store.Keys())
	assert.Contains(t, buf.String(), "failed to store snapshot")
	assert.NotContains(t, buf.String(), "scan stored")
}

func TestWatcherHealth(t *testing.T) {
	w, err := New(Config{Interval: time.Hour}, &fakeRunner{}, testStore(t), zerolog.Nop())
	require.NoError(t, err)

	health := w.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.Uptime, int64(0))
}
