// Package store persists solve outcomes: a short-lived Redis cache keyed by
// request hash, and a durable MongoDB audit log keyed by job ID.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alex-panda/knuthplass/breaker"
)

// SolveRecord captures one solve request and its outcome, for both the
// cache and the audit log.
type SolveRecord struct {
	JobID       uuid.UUID       `json:"job_id" bson:"job_id"`
	RequestedAt time.Time       `json:"requested_at" bson:"requested_at"`
	ItemHash    string          `json:"item_hash" bson:"item_hash"`
	LineLengths []float64       `json:"line_lengths" bson:"line_lengths"`
	Options     breaker.Options `json:"options" bson:"options"`
	Breaks      []breaker.Break `json:"breaks,omitempty" bson:"breaks,omitempty"`
	Err         string          `json:"err,omitempty" bson:"err,omitempty"`
}

// NewRecord builds a SolveRecord with a fresh job ID and the current time.
func NewRecord(items []breaker.Item, lineLengths []float64, opts breaker.Options) *SolveRecord {
	return &SolveRecord{
		JobID:       uuid.New(),
		RequestedAt: time.Now(),
		ItemHash:    HashItems(items, lineLengths, opts),
		LineLengths: lineLengths,
		Options:     opts,
	}
}

// HashItems derives a stable cache key from a solve request's inputs.
func HashItems(items []breaker.Item, lineLengths []float64, opts breaker.Options) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(items)
	_ = enc.Encode(lineLengths)
	_ = enc.Encode(opts.Tolerance)
	_ = enc.Encode(opts.Looseness)
	_ = enc.Encode(opts.FitnessDemerit)
	_ = enc.Encode(opts.FlaggedDemerit)
	return hex.EncodeToString(h.Sum(nil))
}

func cacheKey(itemHash string) string {
	return fmt.Sprintf("knuthplass:solve:%s", itemHash)
}
