package repository

import (
	"context"
	"time"

	"campusfaq/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FAQRepo handles MongoDB operations for FAQ entries
type FAQRepo interface {
	Create(ctx context.Context, entry *model.FAQEntry) (string, error)
	GetByID(ctx context.Context, id string) (*model.FAQEntry, error)
	Update(ctx context.Context, entry *model.FAQEntry) error
	Delete(ctx context.Context, id string) error

	GetAll(ctx context.Context) ([]*model.FAQEntry, error)
	GetActive(ctx context.Context) ([]*model.FAQEntry, error)
	GetByCategory(ctx context.Context, category model.Category) ([]*model.FAQEntry, error)
}

type faqRepo struct {
	collection *mongo.Collection
}

// NewFAQRepo creates a new FAQ repository
func NewFAQRepo(db *mongo.Database) FAQRepo {
	return &faqRepo{
		collection: db.Collection("faqs"),
	}
}

func (r *faqRepo) Create(ctx context.Context, entry *model.FAQEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *faqRepo) GetByID(ctx context.Context, id string) (*model.FAQEntry, error) {
	var entry model.FAQEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // entry not found
		}
		return nil, err
	}
	return &entry, nil
}

func (r *faqRepo) Update(ctx context.Context, entry *model.FAQEntry) error {
	entry.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	return err
}

func (r *faqRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *faqRepo) GetAll(ctx context.Context) ([]*model.FAQEntry, error) {
	return r.find(ctx, bson.M{})
}

// GetActive returns the matchable corpus: the engine never sees inactive
// entries.
func (r *faqRepo) GetActive(ctx context.Context) ([]*model.FAQEntry, error) {
	return r.find(ctx, bson.M{"isActive": true})
}

func (r *faqRepo) GetByCategory(ctx context.Context, category model.Category) ([]*model.FAQEntry, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *faqRepo) find(ctx context.Context, filter bson.M) ([]*model.FAQEntry, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.FAQEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
