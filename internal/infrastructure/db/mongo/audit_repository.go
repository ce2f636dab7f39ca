package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

const auditCollection = "auth_audit"

// MongoAuditRepository is the append-only store for the authentication audit
// trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Phone     string    `bson:"phone,omitempty"`
	Kind      string    `bson:"kind"`
	Reason    string    `bson:"reason,omitempty"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Phone:     event.Phone,
		Kind:      string(event.Kind),
		Reason:    event.Reason,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListByPhone(ctx context.Context, phone string, limit int) ([]domain.AuthEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	cursor, err := r.coll.Find(ctx, bson.M{"phone": phone},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAuthEvent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auth events: %w", err)
	}

	events := make([]domain.AuthEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.AuthEvent{
			Phone:     d.Phone,
			Kind:      domain.AuthEventKind(d.Kind),
			Reason:    d.Reason,
			RemoteIP:  d.RemoteIP,
			Timestamp: d.Timestamp,
		})
	}
	return events, nil
}
