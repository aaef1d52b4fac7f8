package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kv interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
}

func exerciseStore(t *testing.T, s kv) {
	ctx := context.Background()

	_, ok, err := s.GetString(ctx, "highscore")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetString(ctx, "highscore", "7"))
	v, ok, err := s.GetString(ctx, "highscore")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	require.NoError(t, s.SetString(ctx, "highscore", "12"))
	v, _, err = s.GetString(ctx, "highscore")
	require.NoError(t, err)
	assert.Equal(t, "12", v)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		f, err := NewFile(filepath.Join(t.TempDir(), "data", "highscore.json"))
		require.NoError(t, err)
		exerciseStore(t, f)
	})

	t.Run("survives reopening", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.json")
		f, err := NewFile(path)
		require.NoError(t, err)
		require.NoError(t, f.SetString(context.Background(), "highscore", "3"))

		reopened, err := NewFile(path)
		require.NoError(t, err)
		v, ok, err := reopened.GetString(context.Background(), "highscore")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "3", v)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		f, err := NewFile(path)
		require.NoError(t, err)
		_, _, err = f.GetString(context.Background(), "highscore")
		assert.Error(t, err)
	})

	t.Run("empty file reads as absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "highscore.json")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		f, err := NewFile(path)
		require.NoError(t, err)
		_, ok, err := f.GetString(context.Background(), "highscore")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedis(client, "snake:")
	defer s.Close()

	require.NoError(t, s.Ping(context.Background()))
	exerciseStore(t, s)

	raw, err := mr.Get("snake:highscore")
	require.NoError(t, err)
	assert.Equal(t, "12", raw)
}

func TestRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	s := NewRedis(client, "snake:")
	defer s.Close()

	assert.Error(t, s.Ping(context.Background()))
	_, _, err := s.GetString(context.Background(), "highscore")
	assert.Error(t, err)
	assert.Error(t, s.SetString(context.Background(), "highscore", "1"))
}

func TestCheckBackend(t *testing.T) {
	for _, name := range []string{"memory", "file", "redis"} {
		assert.NoError(t, CheckBackend(name))
	}
	assert.ErrorIs(t, CheckBackend("mongo"), ErrUnknownBackend)
}
