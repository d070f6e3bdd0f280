package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/roomlens/backend/internal/domain"
)

// RestyleService composes the full restyle operation: credit check, image
// transformation via the external provider, and product recommendations.
// The image and recommendation halves are decoupled: a provider failure is
// surfaced in the response while recommendations are still returned, and
// no credit is burned for a failed transformation.
type RestyleService struct {
	recommender *RecommendationService
	ledger      domain.CreditLedger
	provider    domain.ImageProvider
}

// NewRestyleService creates a restyle service with its dependencies.
func NewRestyleService(
	recommender *RecommendationService,
	ledger domain.CreditLedger,
	provider domain.ImageProvider,
) *RestyleService {
	return &RestyleService{
		recommender: recommender,
		ledger:      ledger,
		provider:    provider,
	}
}

// Restyle validates the request, verifies the user still has credits,
// requests the transformed image and assembles the combined response.
func (s *RestyleService) Restyle(ctx context.Context, req *domain.RestyleRequest) (*domain.RestyleResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if req.ImageURL == "" && req.ImageData == "" {
		return nil, fmt.Errorf("%w: imageUrl or imageData is required", domain.ErrInvalidRequest)
	}

	balance, err := s.ledger.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check credits: %w", err)
	}
	if balance <= 0 {
		return nil, domain.ErrNoCredits
	}

	response := &domain.RestyleResponse{}

	intensity := NormalizeIntensity(req.Intensity)
	if s.provider != nil && s.provider.Enabled() {
		result, err := s.provider.Transform(ctx, domain.TransformRequest{
			ImageURL:  req.ImageURL,
			ImageData: req.ImageData,
			Prompt:    BuildPrompt(req.Style, req.RoomType, intensity),
			Strength:  StrengthFor(intensity),
		})
		if err != nil {
			logrus.WithError(err).Warnf("image transformation failed for user %s", req.UserID)
			response.ImageError = err.Error()
		} else {
			response.Image = result
			if err := s.ledger.Decrement(ctx, req.UserID); err != nil {
				logrus.WithError(err).Errorf("decrement credits for user %s", req.UserID)
			}
		}
	} else {
		response.ImageError = domain.ErrProviderDisabled.Error()
	}

	recommendation := s.recommender.Recommend(domain.SelectionCriteria{
		Style:     req.Style,
		RoomType:  req.RoomType,
		Intensity: req.Intensity,
		KeepItems: req.KeepItems,
	})
	response.Products = recommendation.Products
	response.ProductCount = recommendation.ProductCount
	response.IntensityInfo = recommendation.IntensityInfo

	remaining, err := s.ledger.Get(ctx, req.UserID)
	if err != nil {
		logrus.WithError(err).Warnf("read remaining credits for user %s", req.UserID)
		remaining = balance
	}
	response.CreditsRemaining = remaining

	return response, nil
}
