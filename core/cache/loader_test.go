package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetOrLoad_HitAndMiss(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(NewMemoryStore(), time.Minute)

	var calls int32
	load := func(context.Context) (payload, error) {
		atomic.AddInt32(&calls, 1)
		return payload{Name: "a", Count: 1}, nil
	}

	v, hit, err := GetOrLoad(ctx, loader, "k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, payload{Name: "a", Count: 1}, v)

	v, hit, err = GetOrLoad(ctx, loader, "k", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "a", Count: 1}, v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.NoError(t, loader.Invalidate(ctx, "k"))
	_, hit, err = GetOrLoad(ctx, loader, "k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetOrLoad_Disabled(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		loader *Loader
	}{
		{"NilLoader", nil},
		{"NilStore", NewLoader(nil, time.Minute)},
		{"ZeroTTL", NewLoader(NewMemoryStore(), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			load := func(context.Context) (int, error) {
				calls++
				return calls, nil
			}

			for i := 1; i <= 3; i++ {
				v, hit, err := GetOrLoad(ctx, tt.loader, "k", load)
				require.NoError(t, err)
				assert.False(t, hit)
				assert.Equal(t, i, v)
			}
			assert.False(t, tt.loader.Enabled())
			assert.NoError(t, tt.loader.Invalidate(ctx, "k"))
		})
	}
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	loader := NewLoader(store, time.Minute)
	boom := errors.New("boom")

	_, _, err := GetOrLoad(ctx, loader, "k", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len())

	v, hit, err := GetOrLoad(ctx, loader, "k", func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 7, v)
}

func TestGetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(NewMemoryStore(), time.Minute)

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "computed", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], _, errs[i] = GetOrLoad(ctx, loader, "k", load)
		}(i)
	}

	// Let the first flight start before releasing it.
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "computed", results[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrLoad_Redis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+mr.Addr(), "tb:")
	require.NoError(t, err)
	defer store.Close()

	loader := NewLoader(store, time.Minute)

	_, hit, err := GetOrLoad(ctx, loader, "compare:abc", func(context.Context) (payload, error) {
		return payload{Name: "x", Count: 3}, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.True(t, mr.Exists("tb:compare:abc"))

	// A second loader over the same redis sees the shared entry.
	other := NewLoader(NewRedisStoreWithClient(newClient(t, mr), "tb:"), time.Minute)
	v, hit, err := GetOrLoad(ctx, other, "compare:abc", func(context.Context) (payload, error) {
		t.Fatal("load must not run on a shared hit")
		return payload{}, nil
	})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "x", Count: 3}, v)
}

func TestGetOrLoad_CorruptEntryRecomputes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", []byte("not json"), time.Minute))

	loader := NewLoader(store, time.Minute)
	v, hit, err := GetOrLoad(ctx, loader, "k", func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 42, v)
}
