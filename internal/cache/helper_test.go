package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestSetAndGetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	in := testPayload{ID: 7, Name: "alice"}
	require.NoError(t, SetJSON(ctx, "k", in, time.Minute))

	var out testPayload
	found, err := GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var out testPayload
	found, err := GetJSON(context.Background(), "absent", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSONCorruptValueIsMiss(t *testing.T) {
	mr := setupMiniredis(t)
	require.NoError(t, mr.Set("k", "{not json"))

	var out testPayload
	found, err := GetJSON(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSONWithoutClientIsMiss(t *testing.T) {
	SetClient(nil)

	var out testPayload
	found, err := GetJSON(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAsideFetchesOnMissAndCaches(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *testPayload) func() error {
		return func() error {
			fetches++
			*dest = testPayload{ID: 1, Name: "bob"}
			return nil
		}
	}

	var first testPayload
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "bob", first.Name)

	// Second read is served from cache.
	var second testPayload
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "bob", second.Name)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("db down")
	var out testPayload
	err := Aside(context.Background(), "k", &out, time.Minute, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(3), testPayload{ID: 3}, PostTTL))
	InvalidatePost(ctx, 3)

	assert.False(t, mr.Exists(PostKey(3)))
}
