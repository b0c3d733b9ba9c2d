package rating

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/khanglvm/tool-advisor/internal/storage"
)

// TestRateFirstTime verifies a fresh rating creates the aggregate.
func TestRateFirstTime(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryKV())

	agg, err := ledger.Rate("Paratext", 4)
	if err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	if agg.Total != 4 || agg.Count != 1 {
		t.Errorf("expected {4 1}, got %+v", agg)
	}

	avg, ok := ledger.Average("Paratext")
	if !ok {
		t.Fatal("expected average to be present")
	}
	if avg != 4.0 {
		t.Errorf("expected average 4.0, got %v", avg)
	}
}

// TestRateReplacesNotAccumulates verifies the re-rate semantics: the user's
// previous stars leave the total and the rater count stays at one.
func TestRateReplacesNotAccumulates(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryKV())

	if _, err := ledger.Rate("PTXprint", 3); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}
	agg, err := ledger.Rate("PTXprint", 5)
	if err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	if agg.Total != 5 || agg.Count != 1 {
		t.Errorf("expected {5 1} after re-rate, got %+v", agg)
	}

	avg, _ := ledger.Average("PTXprint")
	if avg != 5.0 {
		t.Errorf("expected average 5.0, got %v", avg)
	}
	if ledger.Count("PTXprint") != 1 {
		t.Errorf("expected count 1, got %d", ledger.Count("PTXprint"))
	}
}

// TestRateTwoUsers verifies aggregation across raters: a second user's
// rating joins a seeded aggregate from another user.
func TestRateTwoUsers(t *testing.T) {
	kv := storage.NewMemoryKV()

	// Another user already rated the tool 2 stars.
	seed, _ := json.Marshal(map[string]Aggregate{
		"FieldWorks": {Total: 2, Count: 1},
	})
	if err := kv.Put(storage.KeyRatings, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ledger := NewLedger(kv)
	if _, err := ledger.Rate("FieldWorks", 4); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	avg, ok := ledger.Average("FieldWorks")
	if !ok {
		t.Fatal("expected average to be present")
	}
	if avg != 3.0 {
		t.Errorf("expected average 3.0, got %v", avg)
	}
	if ledger.Count("FieldWorks") != 2 {
		t.Errorf("expected count 2, got %d", ledger.Count("FieldWorks"))
	}
}

// TestLedgersPerUserSlot verifies two users of the same store keep separate
// current-rating maps but share the aggregate.
func TestLedgersPerUserSlot(t *testing.T) {
	kv := storage.NewMemoryKV()

	alice := NewLedgerForUser(kv, "alice")
	if _, err := alice.Rate("Paratext", 2); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	bob := NewLedgerForUser(kv, "bob")
	if _, ok := bob.UserRating("Paratext"); ok {
		t.Error("bob should not see alice's current rating")
	}

	agg, err := bob.Rate("Paratext", 4)
	if err != nil {
		t.Fatalf("Rate failed: %v", err)
	}
	if agg.Total != 6 || agg.Count != 2 {
		t.Errorf("expected shared aggregate {6 2}, got %+v", agg)
	}
}

// TestRateOutOfRange verifies stars outside 1-5 are rejected, not clamped.
func TestRateOutOfRange(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryKV())

	for _, stars := range []int{0, 6, -1, 100} {
		_, err := ledger.Rate("Paratext", stars)
		if err == nil {
			t.Errorf("expected error for %d stars", stars)
			continue
		}
		if !IsInvalidRating(err) {
			t.Errorf("expected InvalidRatingError for %d stars, got %v", stars, err)
		}
	}

	// The rejected calls must leave no trace.
	if _, ok := ledger.Average("Paratext"); ok {
		t.Error("rejected rating mutated the ledger")
	}
}

// TestAverageAbsent verifies never-rated tools report absence, not zero.
func TestAverageAbsent(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryKV())

	if _, ok := ledger.Average("never-rated-tool"); ok {
		t.Error("expected absent average for never-rated tool")
	}
	if ledger.Count("never-rated-tool") != 0 {
		t.Error("expected zero count for never-rated tool")
	}
}

// TestAverageRounding verifies one-decimal rounding.
func TestAverageRounding(t *testing.T) {
	kv := storage.NewMemoryKV()

	// Three raters: 5 + 5 + 4 = 14, 14/3 = 4.666... -> 4.7
	seed, _ := json.Marshal(map[string]Aggregate{
		"PTXprint": {Total: 14, Count: 3},
	})
	if err := kv.Put(storage.KeyRatings, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ledger := NewLedger(kv)
	avg, ok := ledger.Average("PTXprint")
	if !ok {
		t.Fatal("expected average to be present")
	}
	if avg != 4.7 {
		t.Errorf("expected 4.7, got %v", avg)
	}
}

// TestWriteThroughPersistence verifies a rate call flushes both slots.
func TestWriteThroughPersistence(t *testing.T) {
	kv := storage.NewMemoryKV()

	ledger := NewLedger(kv)
	if _, err := ledger.Rate("Paratext", 4); err != nil {
		t.Fatalf("Rate failed: %v", err)
	}

	// A fresh ledger over the same store sees the persisted state.
	reloaded := NewLedger(kv)
	avg, ok := reloaded.Average("Paratext")
	if !ok || avg != 4.0 {
		t.Errorf("expected persisted average 4.0, got %v (present=%v)", avg, ok)
	}
	stars, ok := reloaded.UserRating("Paratext")
	if !ok || stars != 4 {
		t.Errorf("expected persisted user rating 4, got %d (present=%v)", stars, ok)
	}
}

// TestFlushFailureNonFatal verifies a persistence failure does not roll back
// the in-memory mutation.
func TestFlushFailureNonFatal(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.PutErr = errors.New("disk full")

	ledger := NewLedger(kv)
	agg, err := ledger.Rate("Paratext", 5)
	if err != nil {
		t.Fatalf("Rate failed despite non-fatal flush contract: %v", err)
	}
	if agg.Total != 5 || agg.Count != 1 {
		t.Errorf("expected {5 1}, got %+v", agg)
	}

	// In-memory state stays authoritative for the session.
	if avg, ok := ledger.Average("Paratext"); !ok || avg != 5.0 {
		t.Errorf("expected in-memory average 5.0, got %v (present=%v)", avg, ok)
	}
}

// TestMalformedStateRecovered verifies startup tolerates unparseable slots.
func TestMalformedStateRecovered(t *testing.T) {
	kv := storage.NewMemoryKV()
	if err := kv.Put(storage.KeyRatings, []byte("not json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := kv.Put(storage.KeyUserRatings, []byte(`["wrong","shape"]`)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ledger := NewLedger(kv)
	if _, ok := ledger.Average("Paratext"); ok {
		t.Error("malformed state should initialize an empty ledger")
	}

	// The recovered ledger must still accept ratings.
	if _, err := ledger.Rate("Paratext", 3); err != nil {
		t.Errorf("Rate after recovery failed: %v", err)
	}
}
