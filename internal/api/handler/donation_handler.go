package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/api/metrics"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// maxImageBytes caps uploaded food photos at 5 MiB.
const maxImageBytes = 5 << 20

type DonationHandler struct {
	donations ports.DonationService
}

func NewDonationHandler(donations ports.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

type foodImageResponse struct {
	Image       string `json:"image"`
	ContentType string `json:"content_type"`
}

type donationResponse struct {
	FoodFor   string             `json:"food_for"`
	FoodType  string             `json:"food_type"`
	Quantity  string             `json:"quantity"`
	FoodImage *foodImageResponse `json:"food_image"`
}

type coordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationResponse struct {
	Address     string              `json:"address"`
	Coordinates coordinatesResponse `json:"coordinates"`
}

type donorResponse struct {
	ID            string           `json:"_id"`
	DonorName     string           `json:"donor_name"`
	ContactNumber string           `json:"contact_number"`
	DonorType     string           `json:"donor_type"`
	Donation      donationResponse `json:"donation"`
	Location      locationResponse `json:"location"`
	CreatedAt     string           `json:"created_at"`
}

// Create accepts a multipart donation submission with an optional food photo.
//
// @Summary      Submit a donation
// @Tags         donations
// @Accept       multipart/form-data
// @Produce      json
// @Param        donorName      formData  string  true   "Donor display name"
// @Param        contactNumber  formData  string  true   "Contact phone number"
// @Param        donorType      formData  string  true   "Donor category"
// @Param        foodFor        formData  string  true   "Beneficiary (humans/animals)"
// @Param        address        formData  string  true   "Pickup address"
// @Param        latitude       formData  number  true   "Pickup latitude"
// @Param        longitude      formData  number  true   "Pickup longitude"
// @Param        foodImage      formData  file    false  "Food photo (max 5MB)"
// @Success      201  {object}  donorResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/donations [post]
func (h *DonationHandler) Create(c echo.Context) error {
	required := []string{"donorName", "contactNumber", "donorType", "foodFor", "address", "latitude", "longitude"}
	for _, field := range required {
		if c.FormValue(field) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": field + " is required"})
		}
	}

	lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "latitude must be a number"})
	}
	lng, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "longitude must be a number"})
	}

	image, err := h.readImage(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	donor, err := h.donations.Create(c.Request().Context(), ports.CreateDonationInput{
		DonorName:     c.FormValue("donorName"),
		ContactNumber: c.FormValue("contactNumber"),
		DonorType:     c.FormValue("donorType"),
		FoodFor:       c.FormValue("foodFor"),
		FoodType:      c.FormValue("foodType"),
		Quantity:      c.FormValue("quantity"),
		Address:       c.FormValue("address"),
		Latitude:      lat,
		Longitude:     lng,
		Image:         image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.DonationsCreatedTotal.WithLabelValues(donor.Donation.FoodFor).Inc()
	return c.JSON(http.StatusCreated, toDonorResponse(donor))
}

// ListDonors returns every donor record for the NGO dashboard.
//
// @Summary      List donors
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   donorResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/donors [get]
func (h *DonationHandler) ListDonors(c echo.Context) error {
	donors, err := h.donations.ListDonors(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]donorResponse, 0, len(donors))
	for _, d := range donors {
		out = append(out, toDonorResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}

// readImage pulls the optional foodImage part, enforcing the size cap before
// the content is read into memory.
func (h *DonationHandler) readImage(c echo.Context) (*ports.FoodImageInput, error) {
	fh, err := c.FormFile("foodImage")
	if err != nil {
		// absent part is fine; the image is optional
		return nil, nil
	}
	if fh.Size > maxImageBytes {
		return nil, errors.New("file too large. Max 5MB allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("could not read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, errors.New("could not read uploaded file")
	}
	if len(data) > maxImageBytes {
		return nil, errors.New("file too large. Max 5MB allowed")
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &ports.FoodImageInput{
		Data:        data,
		ContentType: fh.Header.Get(echo.HeaderContentType),
	}, nil
}

func toDonorResponse(d *domain.Donor) donorResponse {
	resp := donorResponse{
		ID:            d.ID,
		DonorName:     d.DonorName,
		ContactNumber: d.ContactNumber,
		DonorType:     d.DonorType,
		Donation: donationResponse{
			FoodFor:  d.Donation.FoodFor,
			FoodType: d.Donation.FoodType,
			Quantity: d.Donation.Quantity,
		},
		Location: locationResponse{
			Address: d.Location.Address,
			Coordinates: coordinatesResponse{
				Latitude:  d.Location.Coordinates.Latitude,
				Longitude: d.Location.Coordinates.Longitude,
			},
		},
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if img := d.Donation.FoodImage; img != nil && len(img.Image) > 0 {
		resp.Donation.FoodImage = &foodImageResponse{
			Image:       base64.StdEncoding.EncodeToString(img.Image),
			ContentType: img.ContentType,
		}
	}
	return resp
}
