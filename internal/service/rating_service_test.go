package service

import (
	"context"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_CreateRating_Validation(t *testing.T) {
	t.Parallel()

	for _, score := range []int{0, 6, -1} {
		svc := NewRatingService(noopRatingRepo(), noopSwapRepo())
		_, err := svc.CreateRating(context.Background(), CreateRatingInput{
			RaterID:       5,
			SwapRequestID: 1,
			Rating:        score,
		})
		assertValidationError(t, err)
	}
}

func TestRatingService_CreateRating_RaterMustBeParty(t *testing.T) {
	t.Parallel()
	swaps := noopSwapRepo()
	swaps.getByIDFn = func(context.Context, uint) (*models.SwapRequest, error) {
		return &models.SwapRequest{ID: 1, RequesterID: 5, ProviderID: 9}, nil
	}
	svc := NewRatingService(noopRatingRepo(), swaps)
	_, err := svc.CreateRating(context.Background(), CreateRatingInput{
		RaterID:       77,
		SwapRequestID: 1,
		Rating:        5,
	})
	assertForbiddenError(t, err)
}

func TestRatingService_CreateRating_RateeIsOtherParty(t *testing.T) {
	t.Parallel()

	swap := &models.SwapRequest{ID: 1, RequesterID: 5, ProviderID: 9}

	t.Run("requester rates provider", func(t *testing.T) {
		t.Parallel()
		swaps := noopSwapRepo()
		swaps.getByIDFn = func(context.Context, uint) (*models.SwapRequest, error) { return swap, nil }
		ratings := noopRatingRepo()
		var created *models.Rating
		ratings.createFn = func(_ context.Context, r *models.Rating) error {
			created = r
			return nil
		}
		svc := NewRatingService(ratings, swaps)
		_, err := svc.CreateRating(context.Background(), CreateRatingInput{
			RaterID:       5,
			SwapRequestID: 1,
			Rating:        4,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(9), created.RateeID)
	})

	t.Run("provider rates requester", func(t *testing.T) {
		t.Parallel()
		swaps := noopSwapRepo()
		swaps.getByIDFn = func(context.Context, uint) (*models.SwapRequest, error) { return swap, nil }
		ratings := noopRatingRepo()
		var created *models.Rating
		ratings.createFn = func(_ context.Context, r *models.Rating) error {
			created = r
			return nil
		}
		svc := NewRatingService(ratings, swaps)
		_, err := svc.CreateRating(context.Background(), CreateRatingInput{
			RaterID:       9,
			SwapRequestID: 1,
			Rating:        5,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(5), created.RateeID)
	})
}

func TestRatingService_CreateRating_RecomputesAggregate(t *testing.T) {
	t.Parallel()
	swaps := noopSwapRepo()
	swaps.getByIDFn = func(context.Context, uint) (*models.SwapRequest, error) {
		return &models.SwapRequest{ID: 1, RequesterID: 5, ProviderID: 9}, nil
	}

	ratings := noopRatingRepo()
	ratings.aggregateForRateeFn = func(_ context.Context, rateeID uint) (*repository.RatingAggregate, error) {
		assert.Equal(t, uint(9), rateeID)
		return &repository.RatingAggregate{Average: 4.5, Count: 2}, nil
	}
	var storedAgg *repository.RatingAggregate
	ratings.updateUserAggregateFn = func(_ context.Context, rateeID uint, agg *repository.RatingAggregate) error {
		assert.Equal(t, uint(9), rateeID)
		storedAgg = agg
		return nil
	}

	svc := NewRatingService(ratings, swaps)
	rating, err := svc.CreateRating(context.Background(), CreateRatingInput{
		RaterID:       5,
		SwapRequestID: 1,
		Rating:        5,
		Comment:       "patient and well prepared",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Rating)
	require.NotNil(t, storedAgg)
	assert.Equal(t, 4.5, storedAgg.Average)
	assert.Equal(t, int64(2), storedAgg.Count)
}

func TestRatingService_CreateRating_DuplicatesAllowed(t *testing.T) {
	t.Parallel()
	swaps := noopSwapRepo()
	swaps.getByIDFn = func(context.Context, uint) (*models.SwapRequest, error) {
		return &models.SwapRequest{ID: 1, RequesterID: 5, ProviderID: 9}, nil
	}
	ratings := noopRatingRepo()
	createCount := 0
	ratings.createFn = func(context.Context, *models.Rating) error {
		createCount++
		return nil
	}
	svc := NewRatingService(ratings, swaps)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateRating(context.Background(), CreateRatingInput{
			RaterID:       5,
			SwapRequestID: 1,
			Rating:        3,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, createCount)
}
