package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/sqlkw/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns body on first success", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		body, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", body)
		assert.Equal(t, 1, calls)
	})

	t.Run("makes one attempt per delay plus one", func(t *testing.T) {
		t.Parallel()

		var calls int
		var logged []string
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}

		_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, []time.Duration{0, 0})

		require.Error(t, err)
		assert.EqualError(t, err, "boom")
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
		assert.Contains(t, logged[0], "attempt 2")
	})

	t.Run("does not retry without delays", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := pipeline.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, nil)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops retrying when context is done", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var calls int
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			cancel()
			return "", errors.New("boom")
		}

		_, err := pipeline.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	a := pipeline.ComputeHash("<html>a</html>")
	b := pipeline.ComputeHash("<html>b</html>")

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, pipeline.ComputeHash("<html>a</html>"))
}
