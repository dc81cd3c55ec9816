package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
)

const collectionDonors = "donors"

// DonorRepository implements ports.DonorRepository on MongoDB.
type DonorRepository struct {
	coll *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{coll: db.Collection(collectionDonors)}
}

// Create inserts a donor document and returns it with the assigned id.
func (r *DonorRepository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// let Mongo assign the _id
	doc := *donor
	doc.ID = ""

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert donor: %w", err)
	}

	created := *donor
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindAll returns all donor records, newest first.
func (r *DonorRepository) FindAll(ctx context.Context) ([]*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Donor
	for cur.Next(ctx) {
		var doc struct {
			ID            primitive.ObjectID `bson:"_id"`
			DonorName     string             `bson:"donor_name"`
			ContactNumber string             `bson:"contact_number"`
			DonorType     string             `bson:"donor_type"`
			Donation      domain.Donation    `bson:"donation"`
			Location      domain.Location    `bson:"location"`
			CreatedAt     time.Time          `bson:"created_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode donor: %w", err)
		}
		out = append(out, &domain.Donor{
			ID:            doc.ID.Hex(),
			DonorName:     doc.DonorName,
			ContactNumber: doc.ContactNumber,
			DonorType:     doc.DonorType,
			Donation:      doc.Donation,
			Location:      doc.Location,
			CreatedAt:     doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return out, nil
}
