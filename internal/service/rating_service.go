package service

import (
	"context"
	"strconv"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
)

type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRequestRepository
}

type CreateRatingInput struct {
	RaterID       uint
	SwapRequestID uint
	Rating        int
	Comment       string
}

func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRequestRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, swapRepo: swapRepo}
}

// CreateRating records a rating against the other party of a swap, then
// recomputes the ratee's stored aggregate from all of their ratings.
func (s *RatingService) CreateRating(ctx context.Context, in CreateRatingInput) (*models.Rating, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}

	swap, err := s.swapRepo.GetByID(ctx, in.SwapRequestID)
	if err != nil {
		return nil, err
	}

	var rateeID uint
	switch in.RaterID {
	case swap.RequesterID:
		rateeID = swap.ProviderID
	case swap.ProviderID:
		rateeID = swap.RequesterID
	default:
		return nil, models.NewForbiddenError("You can only rate swaps you took part in")
	}

	rating := &models.Rating{
		RaterID:       in.RaterID,
		RateeID:       rateeID,
		SwapRequestID: in.SwapRequestID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	agg, err := s.ratingRepo.AggregateForRatee(ctx, rateeID)
	if err != nil {
		return nil, err
	}
	if err := s.ratingRepo.UpdateUserAggregate(ctx, rateeID, agg); err != nil {
		return nil, err
	}

	observability.RatingsRecordedTotal.WithLabelValues(strconv.Itoa(in.Rating)).Inc()
	return rating, nil
}

func (s *RatingService) GetRatingsForUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.GetByRatee(ctx, userID)
}
