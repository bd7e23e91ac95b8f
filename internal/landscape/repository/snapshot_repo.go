package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

const (
	recordsKey     = "landscape:snapshot:records"     // full system record set
	catalogKey     = "landscape:snapshot:catalog"     // capability tuple catalog
	assignmentsKey = "landscape:snapshot:assignments" // per-system capability records
)

// ErrSnapshotMiss reports that no cached snapshot exists.
var ErrSnapshotMiss = errors.New("no cached snapshot")

// snapshotEnvelope wraps a cached payload with its identity and fetch time.
type snapshotEnvelope struct {
	SnapshotID string          `json:"snapshot_id"`
	FetchedAt  time.Time       `json:"fetched_at"`
	Payload    json.RawMessage `json:"payload"`
}

// SnapshotRepository caches upstream review-service snapshots in Redis. The
// cache sits at the retrieval boundary only: diagram and tree computation
// always runs on the full decoded record set.
type SnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository creates a repository with the given entry TTL.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{client: client, ttl: ttl}
}

// StoreRecords caches the full system record set.
func (r *SnapshotRepository) StoreRecords(ctx context.Context, records []domain.SystemRecord) error {
	return r.store(ctx, recordsKey, records)
}

// LoadRecords returns the cached record set, or ErrSnapshotMiss.
func (r *SnapshotRepository) LoadRecords(ctx context.Context) ([]domain.SystemRecord, error) {
	var records []domain.SystemRecord
	if err := r.load(ctx, recordsKey, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// StoreCatalog caches the capability tuple catalog.
func (r *SnapshotRepository) StoreCatalog(ctx context.Context, catalog []domain.CapabilityTuple) error {
	return r.store(ctx, catalogKey, catalog)
}

// LoadCatalog returns the cached catalog, or ErrSnapshotMiss.
func (r *SnapshotRepository) LoadCatalog(ctx context.Context) ([]domain.CapabilityTuple, error) {
	var catalog []domain.CapabilityTuple
	if err := r.load(ctx, catalogKey, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// StoreAssignments caches the per-system capability assignments.
func (r *SnapshotRepository) StoreAssignments(ctx context.Context, assignments []domain.CapabilityAssignment) error {
	return r.store(ctx, assignmentsKey, assignments)
}

// LoadAssignments returns the cached assignments, or ErrSnapshotMiss.
func (r *SnapshotRepository) LoadAssignments(ctx context.Context) ([]domain.CapabilityAssignment, error) {
	var assignments []domain.CapabilityAssignment
	if err := r.load(ctx, assignmentsKey, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *SnapshotRepository) store(ctx context.Context, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}
	env := snapshotEnvelope{
		SnapshotID: uuid.New().String(),
		FetchedAt:  time.Now().UTC(),
		Payload:    raw,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot envelope: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) load(ctx context.Context, key string, out any) error {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrSnapshotMiss
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	var env snapshotEnvelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot envelope: %w", err)
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot payload: %w", err)
	}
	return nil
}
