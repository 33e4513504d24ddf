package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/google/uuid"
)

// AuditLog is a durable, append-only record of solve requests, independent
// of the cache's short-lived entries.
type AuditLog struct {
	collection *mongo.Collection
}

// NewAuditLog connects to uri and returns an AuditLog backed by db's
// "solve_records" collection.
func NewAuditLog(ctx context.Context, uri, db string) (*AuditLog, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping mongo: %w", err)
	}
	return &AuditLog{collection: client.Database(db).Collection("solve_records")}, nil
}

// Append inserts rec into the audit log.
func (a *AuditLog) Append(ctx context.Context, rec *SolveRecord) error {
	_, err := a.collection.InsertOne(ctx, rec)
	return err
}

// FindByJobID retrieves a previously appended record by job ID.
func (a *AuditLog) FindByJobID(ctx context.Context, jobID uuid.UUID) (*SolveRecord, error) {
	var rec SolveRecord
	err := a.collection.FindOne(ctx, bson.M{"job_id": jobID}).Decode(&rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Close disconnects the underlying Mongo client.
func (a *AuditLog) Close(ctx context.Context) error {
	return a.collection.Database().Client().Disconnect(ctx)
}
