package domain

import "time"

// Coordinates represents a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Location is the pickup address of a donation.
type Location struct {
	Address     string      `json:"address" bson:"address"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}

// FoodImage holds an optional photo attached to a donation.
type FoodImage struct {
	Image       []byte `json:"-" bson:"image"`
	ContentType string `json:"content_type" bson:"content_type"`
}

// Donation describes what is being donated. FoodType and Quantity only apply
// when the food is destined for humans; otherwise both read "Not applicable".
type Donation struct {
	FoodFor   string     `json:"food_for" bson:"food_for"`
	FoodType  string     `json:"food_type" bson:"food_type"`
	Quantity  string     `json:"quantity" bson:"quantity"`
	FoodImage *FoodImage `json:"food_image,omitempty" bson:"food_image,omitempty"`
}

// Donor is the aggregate persisted per donation submission.
type Donor struct {
	ID            string    `json:"_id" bson:"_id,omitempty"`
	DonorName     string    `json:"donor_name" bson:"donor_name"`
	ContactNumber string    `json:"contact_number" bson:"contact_number"`
	DonorType     string    `json:"donor_type" bson:"donor_type"`
	Donation      Donation  `json:"donation" bson:"donation"`
	Location      Location  `json:"location" bson:"location"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// AuditEvent records the outcome of an authentication attempt.
type AuditEvent struct {
	Username  string    `json:"username" bson:"username"`
	Action    string    `json:"action" bson:"action"`
	Success   bool      `json:"success" bson:"success"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Audit actions.
const (
	AuditActionLogin    = "login"
	AuditActionRegister = "register"
)
