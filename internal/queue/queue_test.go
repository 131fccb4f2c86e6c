package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScope/internal/domain"
)

func TestSubmitReportsPosition(t *testing.T) {
	t.Parallel()

	q := New(8)

	pos, err := q.Submit(domain.Job{ID: "j1"})
	require.NoError(t, err)
	assert.Equal(t, 0, pos, "empty queue means processing starts immediately")

	pos, err = q.Submit(domain.Job{ID: "j2"})
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = q.Submit(domain.Job{ID: "j3"})
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	assert.Equal(t, 3, q.Depth())
}

func TestFIFOOrder(t *testing.T) {
	t.Parallel()

	q := New(8)
	for _, id := range []string{"j1", "j2", "j3"} {
		_, err := q.Submit(domain.Job{ID: id})
		require.NoError(t, err)
	}

	ctx := context.Background()
	for _, want := range []string{"j1", "j2", "j3"} {
		job, err := q.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, job.ID)
		q.Done()
	}

	assert.Equal(t, 0, q.Depth())
}

func TestSubmitFullQueue(t *testing.T) {
	t.Parallel()

	q := New(1)
	_, err := q.Submit(domain.Job{ID: "j1"})
	require.NoError(t, err)

	_, err = q.Submit(domain.Job{ID: "j2"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestNextHonorsContext(t *testing.T) {
	t.Parallel()

	q := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
