package counter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"beautymap/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fakeRedis struct {
	values map[string]int64
	err    error
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.values[key]++

	return redis.NewIntResult(f.values[key], nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
}

type fakePageRepo struct {
	count int64
}

func (f *fakePageRepo) Record(context.Context) error {
	f.count++

	return nil
}

func (f *fakePageRepo) Count(context.Context) (int64, error) {
	return f.count, nil
}

func TestRedisVisitCounter(t *testing.T) {
	ctx := context.Background()
	counter := NewRedisVisitCounter(&fakeRedis{values: map[string]int64{}})

	count, err := counter.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "missing key counts as zero")

	for range 12 {
		require.NoError(t, counter.Increment(ctx))
	}

	count, err = counter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestRedisVisitCounter_Errors(t *testing.T) {
	ctx := context.Background()
	counter := NewRedisVisitCounter(&fakeRedis{err: errors.New("connection refused")})

	assert.Error(t, counter.Increment(ctx))
	_, err := counter.Count(ctx)
	assert.Error(t, err)
}

func TestNewVisitCounter_FallsBackToDatabase(t *testing.T) {
	repo := &fakePageRepo{}
	counter := NewVisitCounter(Params{
		Lc:       fxtest.NewLifecycle(t),
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		PageRepo: repo,
	})

	require.NoError(t, counter.Increment(context.Background()))
	count, err := counter.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
