package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kicks/internal/domain"
)

func TestReviews_FetchMergesWithoutDuplicates(t *testing.T) {
	backend := newFakeBackend()
	backend.reviews = []domain.Review{
		{ID: 1, SneakerID: 1, UserName: "ann", Rating: 4},
		{ID: 2, SneakerID: 1, UserName: "bob", Rating: 5},
	}
	backend.nextReviewID = 3
	s := NewReviewStore(backend, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.FetchReviews(ctx, 1))
	require.NoError(t, s.FetchReviews(ctx, 1))
	assert.Len(t, s.ReviewsBySneaker(1), 2, "refetch must not duplicate known reviews")

	// a review that appeared on the backend between fetches is merged in
	backend.reviews = append(backend.reviews, domain.Review{ID: 3, SneakerID: 1, UserName: "kim", Rating: 3})
	require.NoError(t, s.FetchReviews(ctx, 1))
	assert.Len(t, s.ReviewsBySneaker(1), 3)
}

func TestReviews_BySneakerFiltersForeignKey(t *testing.T) {
	backend := newFakeBackend()
	backend.reviews = []domain.Review{
		{ID: 1, SneakerID: 1, Rating: 4},
		{ID: 2, SneakerID: 2, Rating: 5},
	}
	s := NewReviewStore(backend, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, s.FetchReviews(ctx, 1))
	require.NoError(t, s.FetchReviews(ctx, 2))

	assert.Len(t, s.ReviewsBySneaker(1), 1)
	assert.Len(t, s.ReviewsBySneaker(2), 1)
	assert.Empty(t, s.ReviewsBySneaker(3))
}

func TestReviews_AverageRating(t *testing.T) {
	backend := newFakeBackend()
	s := NewReviewStore(backend, zap.NewNop())

	assert.Equal(t, 0.0, s.AverageRating(1), "no reviews means 0, not NaN")

	for _, rating := range []int{3, 4, 5} {
		ok := s.AddReview(context.Background(), 1, "ann", rating, "ok")
		require.True(t, ok)
	}
	assert.Equal(t, 4.0, s.AverageRating(1))

	require.True(t, s.AddReview(context.Background(), 2, "bob", 4, ""))
	require.True(t, s.AddReview(context.Background(), 2, "kim", 5, ""))
	assert.Equal(t, 4.5, s.AverageRating(2))
}

func TestReviews_AddReviewAppendsServerCopy(t *testing.T) {
	backend := newFakeBackend()
	s := NewReviewStore(backend, zap.NewNop())

	ok := s.AddReview(context.Background(), 1, "ann", 5, "great")
	require.True(t, ok)
	got := s.ReviewsBySneaker(1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID, "id is assigned by the backend")
	assert.False(t, got[0].CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), got[0].CreatedAt, time.Minute)
}

func TestReviews_AddReviewFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.createReviewErr = errors.New("boom")
	s := NewReviewStore(backend, zap.NewNop())

	ok := s.AddReview(context.Background(), 1, "ann", 5, "great")
	assert.False(t, ok)
	assert.Empty(t, s.ReviewsBySneaker(1))
	assert.NotEmpty(t, s.Err())
	assert.False(t, s.Loading())
}
