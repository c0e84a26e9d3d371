package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

type reviewDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Company   string    `bson:"company"`
	Rating    int       `bson:"rating"`
	Message   string    `bson:"message"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newReviewDocument(r *entity.Review) reviewDocument {
	return reviewDocument{
		ID:        r.ID.String(),
		Name:      r.Name,
		Company:   r.Company,
		Rating:    r.Rating,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (d reviewDocument) toEntity() (entity.Review, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Review{}, fmt.Errorf("decode review id %q: %w", d.ID, err)
	}
	return entity.Review{
		ID:        id,
		Name:      d.Name,
		Company:   d.Company,
		Rating:    d.Rating,
		Message:   d.Message,
		Status:    d.Status,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}, nil
}

// MongoReviewsRepository implements ReviewsRepository on a MongoDB collection.
type MongoReviewsRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewsRepository wires a repository on the reviews collection of db.
func NewMongoReviewsRepository(db *mongo.Database) *MongoReviewsRepository {
	return &MongoReviewsRepository{coll: db.Collection(reviewsCollection)}
}

// Create inserts a fully built review.
func (r *MongoReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return fmt.Errorf("review payload is nil")
	}
	if _, err := r.coll.InsertOne(ctx, newReviewDocument(review)); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListApproved returns approved reviews oldest first, capped at limit.
func (r *MongoReviewsRepository) ListApproved(ctx context.Context, limit int) ([]entity.Review, error) {
	opts := sortByCreatedAt(1).SetLimit(int64(limit))
	return r.find(ctx, bson.D{{Key: "status", Value: entity.ReviewStatusApproved}}, opts)
}

// ListAll returns every review newest first.
func (r *MongoReviewsRepository) ListAll(ctx context.Context) ([]entity.Review, error) {
	return r.find(ctx, bson.D{}, sortByCreatedAt(-1))
}

func (r *MongoReviewsRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]entity.Review, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]entity.Review, 0, len(docs))
	for _, d := range docs {
		review, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// UpdateStatus sets the moderation status and returns the updated document.
func (r *MongoReviewsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*entity.Review, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updatedAt", Value: updatedAt},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc reviewDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id.String()}}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review status: %w", err)
	}
	review, err := doc.toEntity()
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review by id.
func (r *MongoReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}
