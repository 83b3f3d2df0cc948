package clients

import (
	"errors"
	"testing"

	"vetclinic-reception/internal/events"
)

func seedClients() []Client {
	return []Client{
		{ID: 1, DNI: "12345678", FirstName: "Juan", LastName: "Pérez García", Status: StatusActive},
		{ID: 2, DNI: "87654321", FirstName: "María", LastName: "López Silva", Status: StatusActive},
		{ID: 3, DNI: "45678912", FirstName: "Carlos", LastName: "Mendoza Ruiz", Status: StatusInactive},
	}
}

func newTestStore(t *testing.T) (*events.Bus, *Store) {
	t.Helper()
	bus := events.NewBus(nil)
	return bus, NewStore(bus, seedClients(), nil)
}

func TestStore_AddedAssignsMaxPlusOne(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Added{Client: Client{DNI: "11112222", FirstName: "Ana", LastName: "Torres Vega", Status: StatusActive}})

	if store.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", store.Len())
	}
	got := store.Snapshot()[3]
	if got.ID != 4 {
		t.Fatalf("expected id 4, got %d", got.ID)
	}
}

func TestStore_AddedToEmptyStartsAtOne(t *testing.T) {
	bus := events.NewBus(nil)
	store := NewStore(bus, nil, nil)

	bus.Emit(Added{Client: Client{FirstName: "Ana"}})

	if got := store.Snapshot()[0].ID; got != 1 {
		t.Fatalf("expected id 1, got %d", got)
	}
}

func TestStore_AddedAfterDeletionUsesCurrentMax(t *testing.T) {
	bus, store := newTestStore(t)

	// El siguiente ID sale del máximo vigente, no de un contador.
	bus.Emit(Deleted{ID: 3})
	bus.Emit(Added{Client: Client{FirstName: "Nuevo"}})

	got := store.Snapshot()
	if got[len(got)-1].ID != 3 {
		t.Fatalf("expected id 3, got %d", got[len(got)-1].ID)
	}

	bus.Emit(Deleted{ID: 1})
	bus.Emit(Added{Client: Client{FirstName: "Otro"}})
	got = store.Snapshot()
	if got[len(got)-1].ID != 4 {
		t.Fatalf("expected id 4, got %d", got[len(got)-1].ID)
	}
}

func TestStore_AddedKeepsExplicitID(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Added{Client: Client{ID: 9, FirstName: "Ana"}})

	if _, err := store.Get(9); err != nil {
		t.Fatalf("expected client 9 to exist: %v", err)
	}
	if store.NextID() != 10 {
		t.Fatalf("expected next id 10, got %d", store.NextID())
	}
}

func TestStore_UpdatedMergesByID(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Updated{Client: Client{ID: 2, DNI: "87654321", FirstName: "María Elena", LastName: "López Silva", Status: StatusActive}})

	got, err := store.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if got.FirstName != "María Elena" {
		t.Fatalf("expected merged name, got %q", got.FirstName)
	}
	if store.Len() != 3 {
		t.Fatalf("update must not change length, got %d", store.Len())
	}
}

func TestStore_UpdatedUnknownIDIsNoOp(t *testing.T) {
	bus, store := newTestStore(t)
	before := store.Snapshot()

	bus.Emit(Updated{Client: Client{ID: 99, FirstName: "Fantasma"}})

	after := store.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestStore_DeletedFiltersByID(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Deleted{ID: 2})

	if store.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Len())
	}
	if _, err := store.Get(2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DeletedUnknownIDIsNoOp(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Deleted{ID: 99})

	if store.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", store.Len())
	}
}

func TestStore_ActiveFiltersByStatus(t *testing.T) {
	_, store := newTestStore(t)

	active := store.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active clients, got %d", len(active))
	}
	for _, c := range active {
		if c.Status != StatusActive {
			t.Fatalf("unexpected status %q", c.Status)
		}
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	_, store := newTestStore(t)

	snap := store.Snapshot()
	snap[0].FirstName = "Mutado"

	got, _ := store.Get(1)
	if got.FirstName != "Juan" {
		t.Fatalf("snapshot mutation leaked into store: %q", got.FirstName)
	}
}

func TestStore_Reset(t *testing.T) {
	bus, store := newTestStore(t)

	bus.Emit(Deleted{ID: 1})
	store.Reset(seedClients())

	if store.Len() != 3 {
		t.Fatalf("expected 3 records after reset, got %d", store.Len())
	}
}
