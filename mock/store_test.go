package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sqlkw"
	"github.com/fwojciec/sqlkw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ sqlkw.KeywordStore = &mock.KeywordStore{}
}

func TestKeywordStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var gotName string
		var gotData []byte
		s := &mock.KeywordStore{
			SaveFn: func(_ context.Context, name string, data []byte) error {
				gotName = name
				gotData = data
				return nil
			},
		}

		err := s.Save(context.Background(), "sqlite.txt", []byte("ABORT\n"))

		require.NoError(t, err)
		assert.Equal(t, "sqlite.txt", gotName)
		assert.Equal(t, "ABORT\n", string(gotData))
	})
}
