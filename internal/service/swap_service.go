package service

import (
	"context"
	"fmt"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SwapService struct {
	swapRepo  repository.SwapRequestRepository
	skillRepo repository.SkillRepository
	userRepo  repository.UserRepository
}

type CreateSwapRequestInput struct {
	RequesterID      uint
	ProviderID       uint
	OfferedSkillID   uint
	RequestedSkillID uint
	Message          string
	PreferredTimes   []string
}

func NewSwapService(swapRepo repository.SwapRequestRepository, skillRepo repository.SkillRepository, userRepo repository.UserRepository) *SwapService {
	return &SwapService{swapRepo: swapRepo, skillRepo: skillRepo, userRepo: userRepo}
}

// CreateSwapRequest opens a pending swap between two users. The offered skill
// must belong to the requester and the requested skill to the provider.
func (s *SwapService) CreateSwapRequest(ctx context.Context, in CreateSwapRequestInput) (*models.SwapRequest, error) {
	if in.RequesterID == in.ProviderID {
		return nil, models.NewValidationError("You cannot request a swap with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	offered, err := s.skillRepo.GetByID(ctx, in.OfferedSkillID)
	if err != nil {
		return nil, err
	}
	if offered.UserID != in.RequesterID {
		return nil, models.NewValidationError("Offered skill must belong to you")
	}

	requested, err := s.skillRepo.GetByID(ctx, in.RequestedSkillID)
	if err != nil {
		return nil, err
	}
	if requested.UserID != in.ProviderID {
		return nil, models.NewValidationError("Requested skill must belong to the provider")
	}

	req := &models.SwapRequest{
		RequesterID:      in.RequesterID,
		ProviderID:       in.ProviderID,
		OfferedSkillID:   in.OfferedSkillID,
		RequestedSkillID: in.RequestedSkillID,
		Message:          in.Message,
		PreferredTimes:   in.PreferredTimes,
		Status:           models.SwapRequestPending,
	}
	if err := s.swapRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	observability.SwapTransitionsTotal.WithLabelValues("none", string(models.SwapRequestPending)).Inc()
	return s.swapRepo.GetByID(ctx, req.ID)
}

func (s *SwapService) GetSwapRequest(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.swapRepo.GetByID(ctx, id)
}

func (s *SwapService) GetSwapRequestsForUser(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.swapRepo.GetByUser(ctx, userID)
}

// UpdateStatus moves a swap through its lifecycle. Accept and reject are
// provider-only; either party may complete an accepted swap.
func (s *SwapService) UpdateStatus(ctx context.Context, swapID, actorID uint, target models.SwapRequestStatus) (*models.SwapRequest, error) {
	span, ctx := observability.NewSpan(ctx, "swap.update_status",
		trace.WithAttributes(
			attribute.Int("swap.id", int(swapID)),
			attribute.String("swap.target_status", string(target)),
		))
	defer span.End()

	if !models.ValidSwapRequestStatus(target) {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown swap status %q", target))
	}

	req, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if actorID != req.RequesterID && actorID != req.ProviderID {
		return nil, models.NewForbiddenError("You are not a participant in this swap")
	}

	switch target {
	case models.SwapRequestAccepted, models.SwapRequestRejected:
		if req.Status != models.SwapRequestPending {
			return nil, models.NewConflictError(fmt.Sprintf("Swap is %s and can no longer be %s", req.Status, target))
		}
		if actorID != req.ProviderID {
			return nil, models.NewForbiddenError("Only the provider can accept or reject a swap request")
		}
	case models.SwapRequestCompleted:
		if req.Status != models.SwapRequestAccepted {
			return nil, models.NewConflictError(fmt.Sprintf("Only accepted swaps can be completed, this one is %s", req.Status))
		}
	default:
		return nil, models.NewValidationError(fmt.Sprintf("Cannot move a swap to %q", target))
	}

	if err := s.swapRepo.UpdateStatus(ctx, swapID, target); err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.SwapTransitionsTotal.WithLabelValues(string(req.Status), string(target)).Inc()

	req.Status = target
	return req, nil
}

// CancelSwapRequest deletes a pending swap. Only the requester may cancel.
func (s *SwapService) CancelSwapRequest(ctx context.Context, swapID, actorID uint) error {
	req, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return err
	}

	if actorID != req.RequesterID {
		return models.NewForbiddenError("Only the requester can cancel a swap request")
	}
	if req.Status != models.SwapRequestPending {
		return models.NewConflictError(fmt.Sprintf("Only pending swaps can be cancelled, this one is %s", req.Status))
	}

	if err := s.swapRepo.Delete(ctx, swapID); err != nil {
		return err
	}

	observability.SwapTransitionsTotal.WithLabelValues(string(models.SwapRequestPending), "cancelled").Inc()
	return nil
}
