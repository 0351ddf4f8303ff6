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

const complaintsCollection = "complaints"

// ComplaintRepository implements ports.ComplaintRepository on MongoDB.
type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type updateEntryDoc struct {
	Status    string    `bson:"status"`
	Comment   string    `bson:"comment"`
	UpdatedBy string    `bson:"updated_by"`
	Timestamp time.Time `bson:"timestamp"`
}

type complaintDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
	Hostel      string             `bson:"hostel"`
	RoomNumber  string             `bson:"room_number"`
	Status      string             `bson:"status"`
	CreatedBy   string             `bson:"created_by"`
	HandledBy   string             `bson:"handled_by,omitempty"`
	Images      []string           `bson:"images"`
	Updates     []updateEntryDoc   `bson:"updates"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toComplaintDoc(c *domain.Complaint) complaintDoc {
	updates := make([]updateEntryDoc, 0, len(c.Updates))
	for _, u := range c.Updates {
		updates = append(updates, updateEntryDoc{
			Status:    string(u.Status),
			Comment:   u.Comment,
			UpdatedBy: u.UpdatedBy,
			Timestamp: u.Timestamp,
		})
	}
	return complaintDoc{
		Title:       c.Title,
		Category:    c.Category,
		Description: c.Description,
		Hostel:      c.Hostel,
		RoomNumber:  c.RoomNumber,
		Status:      string(c.Status),
		CreatedBy:   c.CreatedBy,
		HandledBy:   c.HandledBy,
		Images:      c.Images,
		Updates:     updates,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (d complaintDoc) toDomain() *domain.Complaint {
	updates := make([]domain.UpdateEntry, 0, len(d.Updates))
	for _, u := range d.Updates {
		updates = append(updates, domain.UpdateEntry{
			Status:    domain.ComplaintStatus(u.Status),
			Comment:   u.Comment,
			UpdatedBy: u.UpdatedBy,
			Timestamp: u.Timestamp,
		})
	}
	return &domain.Complaint{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
		Hostel:      d.Hostel,
		RoomNumber:  d.RoomNumber,
		Status:      domain.ComplaintStatus(d.Status),
		CreatedBy:   d.CreatedBy,
		HandledBy:   d.HandledBy,
		Images:      d.Images,
		Updates:     updates,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	res, err := r.coll.InsertOne(ctx, toComplaintDoc(c))
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	var d complaintDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return d.toDomain(), nil
}

// List returns complaints matching scope, newest first.
func (r *ComplaintRepository) List(ctx context.Context, scope domain.ComplaintScope) ([]*domain.Complaint, error) {
	filter := bson.M{}
	if scope.CreatedBy != "" {
		filter["created_by"] = scope.CreatedBy
	}
	if scope.Hostel != "" {
		filter["hostel"] = scope.Hostel
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	var complaints []*domain.Complaint
	for cur.Next(ctx) {
		var d complaintDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		complaints = append(complaints, d.toDomain())
	}
	return complaints, cur.Err()
}

// AppendTransition sets the new status and handler and pushes the audit
// entry in one UpdateOne, so the status field and the trail can never
// disagree, even under concurrent transitions. The updated document is read
// back atomically via findAndModify.
func (r *ComplaintRepository) AppendTransition(ctx context.Context, id string, handledBy string, entry domain.UpdateEntry) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status":     string(entry.Status),
			"handled_by": handledBy,
			"updated_at": entry.Timestamp,
		},
		"$push": bson.M{"updates": updateEntryDoc{
			Status:    string(entry.Status),
			Comment:   entry.Comment,
			UpdatedBy: entry.UpdatedBy,
			Timestamp: entry.Timestamp,
		}},
	}

	var d complaintDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("append transition: %w", err)
	}
	return d.toDomain(), nil
}

func (r *ComplaintRepository) CountByHostel(ctx context.Context, hostel string, activeOnly bool) (int64, error) {
	filter := bson.M{"hostel": hostel}
	if activeOnly {
		filter["status"] = bson.M{"$in": []string{
			string(domain.StatusSubmitted),
			string(domain.StatusInProgress),
		}}
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes the role-scoped listings rely on.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "hostel", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
