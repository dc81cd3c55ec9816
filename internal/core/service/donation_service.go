package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

const notApplicable = "Not applicable"

// DonationService handles donation submission and donor listing.
type DonationService struct {
	donors ports.DonorRepository
	logger zerolog.Logger
}

func NewDonationService(donors ports.DonorRepository, logger zerolog.Logger) *DonationService {
	return &DonationService{donors: donors, logger: logger}
}

// Create persists a donation submission. Food type and quantity only apply to
// donations destined for humans; anything else is stored as "Not applicable".
func (s *DonationService) Create(ctx context.Context, input ports.CreateDonationInput) (*domain.Donor, error) {
	if input.DonorName == "" || input.ContactNumber == "" || input.DonorType == "" ||
		input.FoodFor == "" || input.Address == "" {
		return nil, domain.ErrValidation
	}

	foodType, quantity := notApplicable, notApplicable
	if input.FoodFor == "humans" {
		foodType, quantity = input.FoodType, input.Quantity
		if foodType == "" {
			foodType = "Not specified"
		}
		if quantity == "" {
			quantity = "Not specified"
		}
	}

	var image *domain.FoodImage
	if input.Image != nil && len(input.Image.Data) > 0 {
		image = &domain.FoodImage{
			Image:       input.Image.Data,
			ContentType: input.Image.ContentType,
		}
	}

	donor := &domain.Donor{
		DonorName:     input.DonorName,
		ContactNumber: input.ContactNumber,
		DonorType:     input.DonorType,
		Donation: domain.Donation{
			FoodFor:   input.FoodFor,
			FoodType:  foodType,
			Quantity:  quantity,
			FoodImage: image,
		},
		Location: domain.Location{
			Address: input.Address,
			Coordinates: domain.Coordinates{
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
			},
		},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.donors.Create(ctx, donor)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create donation")
		return nil, err
	}

	s.logger.Info().Str("donor_name", created.DonorName).Str("food_for", created.Donation.FoodFor).Msg("donation created")
	return created, nil
}

// ListDonors returns every donor record for the NGO dashboard.
func (s *DonationService) ListDonors(ctx context.Context) ([]*domain.Donor, error) {
	return s.donors.FindAll(ctx)
}
