package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/barbermx/appointment-api/internal/httperr"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(rdb), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	w := New("sess-1", 10)
	w.ServiceID = 3

	if err := store.Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ClientID != 10 || got.ServiceID != 3 || got.Step != StepService {
		t.Errorf("session mismatch: %+v", got)
	}

	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "sess-1"); !httperr.IsBusiness(err, "booking_session_not_found") {
		t.Errorf("expected booking_session_not_found, got %v", err)
	}
}

func TestHoldSlotBlocksOtherSessions(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	held, err := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A")
	if err != nil || !held {
		t.Fatalf("first hold: (%v, %v)", held, err)
	}

	held, err = store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-B")
	if err != nil {
		t.Fatalf("second hold: %v", err)
	}
	if held {
		t.Error("another session acquired an already-held slot")
	}
}

// a sessão que já segura o hold pode escolher o mesmo horário de novo
// (volta do passo de pagamento, por exemplo); o TTL é renovado
func TestHoldSlotSameSessionReholds(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if held, err := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); err != nil || !held {
		t.Fatalf("first hold: (%v, %v)", held, err)
	}

	mr.FastForward(2 * time.Minute)

	held, err := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A")
	if err != nil {
		t.Fatalf("rehold: %v", err)
	}
	if !held {
		t.Fatal("owner session rejected by its own hold")
	}

	key := holdKey(1, "2026-09-14", "10:00")
	if ttl := mr.TTL(key); ttl != holdTTL {
		t.Errorf("ttl not refreshed: got %v, want %v", ttl, holdTTL)
	}
}

func TestHoldSlotExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); !held {
		t.Fatal("first hold failed")
	}

	mr.FastForward(holdTTL + time.Second)

	held, err := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-B")
	if err != nil || !held {
		t.Errorf("expired hold should be reacquirable: (%v, %v)", held, err)
	}
}

func TestReleaseSlotOnlyOwner(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); !held {
		t.Fatal("hold failed")
	}

	// release de quem não é dono não derruba o hold
	if err := store.ReleaseSlot(ctx, 1, "2026-09-14", "10:00", "sess-B"); err != nil {
		t.Fatalf("foreign release: %v", err)
	}
	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-B"); held {
		t.Fatal("hold dropped by non-owner release")
	}

	if err := store.ReleaseSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); err != nil {
		t.Fatalf("owner release: %v", err)
	}
	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-B"); !held {
		t.Error("released slot not reacquirable")
	}
}

// release atrasado do dono antigo não pode derrubar o hold novo
func TestReleaseSlotStaleOwner(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); !held {
		t.Fatal("hold failed")
	}

	mr.FastForward(holdTTL + time.Second)

	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-B"); !held {
		t.Fatal("reacquire after expiry failed")
	}

	// sess-A já perdeu o hold; o release dela é um no-op
	if err := store.ReleaseSlot(ctx, 1, "2026-09-14", "10:00", "sess-A"); err != nil {
		t.Fatalf("stale release: %v", err)
	}

	if held, _ := store.HoldSlot(ctx, 1, "2026-09-14", "10:00", "sess-C"); held {
		t.Error("stale release dropped the current owner's hold")
	}
}
