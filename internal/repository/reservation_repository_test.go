package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func newTestRepo(t *testing.T) *ReservationRepo {
	t.Helper()
	return NewReservationRepo(filepath.Join(t.TempDir(), "reservations.json"))
}

func TestListReservedSeatsEmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	seats, err := repo.ListReservedSeats(context.Background(), "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seats) != 0 {
		t.Fatalf("expected no seats, got %v", seats)
	}
	if seats == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestCreateThenList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	res, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1", "A2"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if res.ID == "" {
		t.Fatal("expected a generated id")
	}
	if res.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}

	seats, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(seats, []string{"A1", "A2"}) {
		t.Fatalf("expected [A1 A2], got %v", seats)
	}
}

func TestListFiltersByDateAndOutlet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []struct {
		date, outlet string
		seats        []string
	}{
		{"2025-10-06", "Main", []string{"A1"}},
		{"2025-10-06", "Cabang", []string{"A2"}},
		{"2025-10-07", "Main", []string{"A3"}},
	}
	for _, s := range seed {
		if _, err := repo.Create(ctx, "Ann", "0811", s.date, "19:00", s.outlet, s.seats); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	tests := []struct {
		name         string
		date, outlet string
		want         []string
	}{
		{"exact pair match", "2025-10-06", "Main", []string{"A1"}},
		{"other outlet same date", "2025-10-06", "Cabang", []string{"A2"}},
		{"other date same outlet", "2025-10-07", "Main", []string{"A3"}},
		{"no match", "2025-10-08", "Main", []string{}},
		{"case sensitive outlet", "2025-10-06", "main", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seats, err := repo.ListReservedSeats(ctx, tt.date, tt.outlet)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if !reflect.DeepEqual(seats, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, seats)
			}
		})
	}
}

func TestListKeepsDuplicatesWithinReservation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// The conflict check runs against the store, not within the request,
	// so a duplicated seat in one reservation is stored and listed as-is.
	if _, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"C1", "C1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	seats, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(seats, []string{"C1", "C1"}) {
		t.Fatalf("expected [C1 C1], got %v", seats)
	}
}

func TestListIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1", "B2"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	first, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	second, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("lists differ: %v vs %v", first, second)
	}
}

func TestCreateConflictReportsFirstSubmittedSeat(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1", "A2", "A3"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	// Both A3 and A2 conflict; A3 comes first in submission order and must
	// be the one reported.
	_, err := repo.Create(ctx, "Bob", "0812", "2025-10-06", "20:00", "Main", []string{"B1", "A3", "A2"})
	var conflict *SeatConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SeatConflictError, got %v", err)
	}
	if conflict.Seat != "A3" {
		t.Fatalf("expected conflict on A3, got %s", conflict.Seat)
	}
	if got, want := conflict.Error(), "Seat A3 already reserved"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	// A rejected request must not touch the store.
	seats, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(seats, []string{"A1", "A2", "A3"}) {
		t.Fatalf("store changed after rejected create: %v", seats)
	}
}

func TestCreateAllowsSameSeatOtherPartition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1"}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if _, err := repo.Create(ctx, "Bob", "0812", "2025-10-07", "19:00", "Main", []string{"A1"}); err != nil {
		t.Fatalf("same seat on another date should succeed: %v", err)
	}
	if _, err := repo.Create(ctx, "Cid", "0813", "2025-10-06", "19:00", "Cabang", []string{"A1"}); err != nil {
		t.Fatalf("same seat at another outlet should succeed: %v", err)
	}
}

func TestCorruptStoreReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reservations.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	repo := NewReservationRepo(path)
	ctx := context.Background()

	seats, err := repo.ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(seats) != 0 {
		t.Fatalf("expected empty store, got %v", seats)
	}

	// A create over the corrupt file starts from an empty store and
	// leaves a valid one behind.
	if _, err := repo.Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(raw, &arr); err != nil {
		t.Fatalf("store is not a JSON array: %v", err)
	}
	if len(arr) != 1 {
		t.Fatalf("expected one reservation on disk, got %d", len(arr))
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reservations.json")
	ctx := context.Background()

	if _, err := NewReservationRepo(path).Create(ctx, "Ann", "0811", "2025-10-06", "19:00", "Main", []string{"A1", "A2"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// A fresh repo over the same file sees the persisted reservation.
	seats, err := NewReservationRepo(path).ListReservedSeats(ctx, "2025-10-06", "Main")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(seats, []string{"A1", "A2"}) {
		t.Fatalf("expected [A1 A2] after reopen, got %v", seats)
	}
}

func TestConcurrentOverlappingCreates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, "Racer", "0811", "2025-10-06", "19:00", "Main", []string{"A1"})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var conflict *SeatConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful create, got %d", successes)
	}
}
