package model

import "context"

// WriteResult reports how a storage write was applied.
type WriteResult int

const (
	// WriteApplied means the value reached the medium.
	WriteApplied WriteResult = iota
	// WriteDegraded means the medium could not accept the write and it was dropped.
	WriteDegraded
)

func (r WriteResult) String() string {
	switch r {
	case WriteApplied:
		return "applied"
	case WriteDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Storage is a key-value medium bound to one execution context.
//
// Get decodes the stored value into dst and reports whether it was found.
// Malformed values are reported as absent.
type Storage interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any) (WriteResult, error)
	Delete(ctx context.Context, key string) (WriteResult, error)
}
