package ports

import (
	"context"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

// FoodImageInput carries an optional uploaded photo.
type FoodImageInput struct {
	Data        []byte
	ContentType string
}

// CreateDonationInput is the DTO passed from the transport layer to DonationService.
type CreateDonationInput struct {
	DonorName     string
	ContactNumber string
	DonorType     string
	FoodFor       string
	FoodType      string
	Quantity      string
	Address       string
	Latitude      float64
	Longitude     float64
	Image         *FoodImageInput
}

// DonationService handles donation submission and listing.
type DonationService interface {
	Create(ctx context.Context, input CreateDonationInput) (*domain.Donor, error)
	ListDonors(ctx context.Context) ([]*domain.Donor, error)
}

// DonorRepository defines the persistence contract for donation records.
type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	FindAll(ctx context.Context) ([]*domain.Donor, error)
}

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
