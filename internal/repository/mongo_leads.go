package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/entity"
)

// leadDocument is the stored shape of a lead; ids are kept as UUID strings.
type leadDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	CountryCode string    `bson:"countryCode"`
	Phone       string    `bson:"phone"`
	PhoneE164   string    `bson:"phoneE164,omitempty"`
	Company     string    `bson:"company"`
	Message     string    `bson:"message"`
	Service     string    `bson:"service"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

func newLeadDocument(l *entity.Lead) leadDocument {
	return leadDocument{
		ID:          l.ID.String(),
		Name:        l.Name,
		Email:       l.Email,
		CountryCode: l.CountryCode,
		Phone:       l.Phone,
		PhoneE164:   l.PhoneE164,
		Company:     l.Company,
		Message:     l.Message,
		Service:     l.Service,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (d leadDocument) toEntity() (entity.Lead, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("decode lead id %q: %w", d.ID, err)
	}
	return entity.Lead{
		ID:          id,
		Name:        d.Name,
		Email:       d.Email,
		CountryCode: d.CountryCode,
		Phone:       d.Phone,
		PhoneE164:   d.PhoneE164,
		Company:     d.Company,
		Message:     d.Message,
		Service:     d.Service,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}, nil
}

// MongoLeadsRepository implements LeadsRepository on a MongoDB collection.
type MongoLeadsRepository struct {
	coll *mongo.Collection
}

// NewMongoLeadsRepository wires a repository on the leads collection of db.
func NewMongoLeadsRepository(db *mongo.Database) *MongoLeadsRepository {
	return &MongoLeadsRepository{coll: db.Collection(leadsCollection)}
}

// Create inserts a fully built lead.
func (r *MongoLeadsRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if lead == nil {
		return fmt.Errorf("lead payload is nil")
	}
	if _, err := r.coll.InsertOne(ctx, newLeadDocument(lead)); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// List returns all leads ordered by creation date (desc).
func (r *MongoLeadsRepository) List(ctx context.Context) ([]entity.Lead, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, sortByCreatedAt(-1))
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	var docs []leadDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}

	leads := make([]entity.Lead, 0, len(docs))
	for _, d := range docs {
		lead, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// FindByID retrieves a lead by identifier.
func (r *MongoLeadsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var doc leadDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("query lead by id: %w", err)
	}
	lead, err := doc.toEntity()
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
