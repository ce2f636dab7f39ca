package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

const roomCollection = "rooms"

type MongoRoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *MongoRoomRepository {
	return &MongoRoomRepository{coll: db.Collection(roomCollection)}
}

type mongoRoom struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Floor      int                `bson:"floor"`
	PriceVND   int64              `bson:"price_vnd"`
	Status     string             `bson:"status"`
	TenantName string             `bson:"tenant_name,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (r *MongoRoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	doc := mongoRoom{
		Name:       room.Name,
		Floor:      room.Floor,
		PriceVND:   room.PriceVND,
		Status:     string(room.Status),
		TenantName: room.TenantName,
		CreatedAt:  room.CreatedAt.Unix(),
		UpdatedAt:  room.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	var mr mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	return toDomainRoom(mr), nil
}

func (r *MongoRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "floor", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRoom
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(docs))
	for _, mr := range docs {
		rooms = append(rooms, *toDomainRoom(mr))
	}
	return rooms, nil
}

func (r *MongoRoomRepository) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus, tenantName string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(status),
		"tenant_name": tenantName,
		"updated_at":  time.Now().UTC().Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func toDomainRoom(mr mongoRoom) *domain.Room {
	return &domain.Room{
		ID:         mr.ID.Hex(),
		Name:       mr.Name,
		Floor:      mr.Floor,
		PriceVND:   mr.PriceVND,
		Status:     domain.RoomStatus(mr.Status),
		TenantName: mr.TenantName,
		CreatedAt:  unixToTime(mr.CreatedAt),
		UpdatedAt:  unixToTime(mr.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
