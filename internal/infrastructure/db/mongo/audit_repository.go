package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

const auditCollection = "admin_audit"

type auditDocument struct {
	Action     string    `bson:"action"`
	Resource   string    `bson:"resource"`
	ResourceID int64     `bson:"resource_id"`
	ActorID    int64     `bson:"actor_id"`
	At         time.Time `bson:"at"`
}

// AuditRepository implements ports.AuditLog using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// EnsureIndexes creates the descending time index used by Recent.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("audit index: %w", err)
	}
	return nil
}

func (r *AuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDocument{
		Action:     string(entry.Action),
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		ActorID:    entry.ActorID,
		At:         entry.At.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}
	return nil
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("audit find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []auditDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("audit decode: %w", err)
	}

	entries := make([]domain.AuditEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, domain.AuditEntry{
			Action:     domain.AuditAction(d.Action),
			Resource:   d.Resource,
			ResourceID: d.ResourceID,
			ActorID:    d.ActorID,
			At:         d.At.UTC(),
		})
	}
	return entries, nil
}
