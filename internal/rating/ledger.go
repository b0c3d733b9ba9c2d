/*
Package rating implements the per-tool star rating ledger.

A rating is the local user's current 1-5 star value for a tool. Re-rating
replaces the user's previous value in the aggregate instead of accumulating
another event, so a tool's count reflects distinct raters, not rating events.

The ledger is authoritative in memory. Every successful mutation is flushed
write-through to the key-value store; flush failures degrade persistence but
never roll back or fail the mutation.
*/
package rating

import (
	"encoding/json"
	"log"
	"math"

	"github.com/khanglvm/tool-advisor/internal/storage"
)

// Aggregate is a tool's rating summary: the sum of each rater's current
// stars and the number of distinct raters.
type Aggregate struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// Ledger holds rating aggregates for all tools plus the local user's own
// current ratings, backed by two slots in the key-value store.
type Ledger struct {
	kv          storage.KV
	userKey     string
	aggregates  map[string]Aggregate
	userRatings map[string]int
}

// NewLedger creates a ledger for the shared default user slot.
//
// Absent or malformed persisted state initializes the corresponding map to
// empty; startup never fails on bad state.
func NewLedger(kv storage.KV) *Ledger {
	return NewLedgerForUser(kv, "")
}

// NewLedgerForUser creates a ledger whose current-rating map lives in a
// per-user slot. Aggregates are shared across all users of the store.
func NewLedgerForUser(kv storage.KV, userID string) *Ledger {
	l := &Ledger{
		kv:          kv,
		userKey:     storage.UserRatingsKey(userID),
		aggregates:  make(map[string]Aggregate),
		userRatings: make(map[string]int),
	}

	loadSlot(kv, storage.KeyRatings, &l.aggregates)
	loadSlot(kv, l.userKey, &l.userRatings)

	return l
}

// loadSlot reads one persisted map, falling back to empty on any failure.
func loadSlot[V any](kv storage.KV, key string, dst *map[string]V) {
	data, ok, err := kv.Get(key)
	if err != nil {
		log.Printf("Warning: failed to load %s: %v", key, err)
		return
	}
	if !ok {
		return
	}

	parsed := make(map[string]V)
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("Warning: discarding malformed %s state: %v", key, err)
		return
	}
	*dst = parsed
}

// Rate records the local user's current stars for a tool and returns the
// updated aggregate.
//
// If the user rated this tool before, the previous value is replaced in the
// total and the rater count is unchanged; otherwise the user joins the count.
// Stars outside 1-5 are rejected, never clamped.
func (l *Ledger) Rate(toolName string, stars int) (Aggregate, error) {
	if stars < 1 || stars > 5 {
		return Aggregate{}, &InvalidRatingError{Stars: stars}
	}

	agg := l.aggregates[toolName]
	if prev, rated := l.userRatings[toolName]; rated {
		agg.Total = agg.Total - prev + stars
	} else {
		agg.Total += stars
		agg.Count++
	}

	l.userRatings[toolName] = stars
	l.aggregates[toolName] = agg
	l.flush()

	return agg, nil
}

// Average returns a tool's average stars rounded to one decimal place.
//
// The second return value is false when the tool has never been rated;
// "never rated" is distinct from any numeric average.
func (l *Ledger) Average(toolName string) (float64, bool) {
	agg, ok := l.aggregates[toolName]
	if !ok || agg.Count == 0 {
		return 0, false
	}

	avg := float64(agg.Total) / float64(agg.Count)
	return math.Round(avg*10) / 10, true
}

// Count returns the number of distinct users who have rated a tool.
func (l *Ledger) Count(toolName string) int {
	return l.aggregates[toolName].Count
}

// UserRating returns the local user's current stars for a tool, if any.
func (l *Ledger) UserRating(toolName string) (int, bool) {
	stars, ok := l.userRatings[toolName]
	return stars, ok
}

// flush writes both maps through to the key-value store.
//
// Failures are logged and swallowed: the in-memory ledger remains the
// source of truth for the session even if persistence degrades.
func (l *Ledger) flush() {
	writeSlot(l.kv, storage.KeyRatings, l.aggregates)
	writeSlot(l.kv, l.userKey, l.userRatings)
}

func writeSlot[V any](kv storage.KV, key string, value map[string]V) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Warning: failed to encode %s: %v", key, err)
		return
	}
	if err := kv.Put(key, data); err != nil {
		log.Printf("Warning: failed to persist %s: %v", key, err)
	}
}
