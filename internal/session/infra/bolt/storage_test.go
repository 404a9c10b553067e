package bolt

import (
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/comics-storefront/internal/session/domain"
)

func openTemp(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

// putRaw writes a single key to simulate a torn write from older clients.
func (s *Storage) putRaw(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, value)
	})
}

func TestStorage(t *testing.T) {
	t.Run("empty file loads nothing", func(t *testing.T) {
		s, _ := openTemp(t)
		defer s.Close()

		p, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, p.Token)
		assert.Empty(t, p.Session)
	})

	t.Run("save survives reopen", func(t *testing.T) {
		s, path := openTemp(t)
		require.NoError(t, s.Save(domain.Persisted{Token: "tok", Session: []byte(`{"id":1}`)}))
		require.NoError(t, s.Close())

		s2, err := Open(path)
		require.NoError(t, err)
		defer s2.Close()

		p, err := s2.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok", p.Token)
		assert.JSONEq(t, `{"id":1}`, string(p.Session))
	})

	t.Run("clear removes both keys", func(t *testing.T) {
		s, _ := openTemp(t)
		defer s.Close()

		require.NoError(t, s.Save(domain.Persisted{Token: "tok", Session: []byte(`{}`)}))
		require.NoError(t, s.Clear())

		p, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, p.Token)
		assert.Nil(t, p.Session)
	})

	t.Run("single key is visible to the loader", func(t *testing.T) {
		s, _ := openTemp(t)
		defer s.Close()

		require.NoError(t, s.putRaw(tokenKey, []byte("orphan")))
		p, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, "orphan", p.Token)
		assert.Nil(t, p.Session)
	})
}
