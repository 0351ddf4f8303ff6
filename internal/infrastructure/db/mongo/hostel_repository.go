package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
)

const hostelsCollection = "hostels"

// HostelRepository implements ports.HostelRepository on MongoDB.
type HostelRepository struct {
	coll *mongo.Collection
}

func NewHostelRepository(db *mongo.Database) *HostelRepository {
	return &HostelRepository{coll: db.Collection(hostelsCollection)}
}

type hostelDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d hostelDoc) toDomain() *domain.Hostel {
	return &domain.Hostel{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Type:      d.Type,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *HostelRepository) Create(ctx context.Context, h *domain.Hostel) (*domain.Hostel, error) {
	doc := hostelDoc{
		Name:      h.Name,
		Type:      h.Type,
		IsActive:  h.IsActive,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hostel: %w", err)
	}

	created := *h
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *HostelRepository) FindByID(ctx context.Context, id string) (*domain.Hostel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHostelNotFound
	}

	var d hostelDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHostelNotFound
		}
		return nil, fmt.Errorf("find hostel: %w", err)
	}
	return d.toDomain(), nil
}

func (r *HostelRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Hostel, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list hostels: %w", err)
	}
	defer cur.Close(ctx)

	var hostels []*domain.Hostel
	for cur.Next(ctx) {
		var d hostelDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode hostel: %w", err)
		}
		hostels = append(hostels, d.toDomain())
	}
	return hostels, cur.Err()
}

func (r *HostelRepository) Update(ctx context.Context, h *domain.Hostel) error {
	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return domain.ErrHostelNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       h.Name,
		"type":       h.Type,
		"updated_at": h.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update hostel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHostelNotFound
	}
	return nil
}

func (r *HostelRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHostelNotFound
	}

	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("toggle hostel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHostelNotFound
	}
	return nil
}

func (r *HostelRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHostelNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hostel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHostelNotFound
	}
	return nil
}
