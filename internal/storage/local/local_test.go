package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/dtroode/fintrack-web/internal/model"
)

func newTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenTemp()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStorage_SetGetDelete(t *testing.T) {
	s := newTemp(t)
	ctx := context.Background()

	var got model.AuthTokens
	assert.False(t, s.Get(ctx, model.TokensKey, &got))

	res, err := s.Set(ctx, model.TokensKey, model.AuthTokens{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60})
	require.NoError(t, err)
	assert.Equal(t, model.WriteApplied, res)

	require.True(t, s.Get(ctx, model.TokensKey, &got))
	assert.Equal(t, model.AuthTokens{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60}, got)

	res, err = s.Delete(ctx, model.TokensKey)
	require.NoError(t, err)
	assert.Equal(t, model.WriteApplied, res)
	assert.False(t, s.Get(ctx, model.TokensKey, &got))
}

func TestStorage_GetMalformedValue(t *testing.T) {
	s := newTemp(t)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bktSession).Put([]byte(model.TokensKey), []byte("{not json"))
	})
	require.NoError(t, err)

	var got model.AuthTokens
	assert.False(t, s.Get(context.Background(), model.TokensKey, &got))
}

func TestStorage_SetUnserializable(t *testing.T) {
	s := newTemp(t)

	res, err := s.Set(context.Background(), "bad", make(chan int))
	require.Error(t, err)
	assert.Equal(t, model.WriteDegraded, res)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Set(ctx, model.UserKey, model.User{ID: "u1", Email: "a@b.com"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var u model.User
	require.True(t, s.Get(ctx, model.UserKey, &u))
	assert.Equal(t, "u1", u.ID)
}
