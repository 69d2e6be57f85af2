package cats

import (
	"context"
	"testing"
	"time"

	"cat-map-api/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory, con contador de accesos)
// -------------------------

type testRepo struct {
	byID map[string]Cat

	// writes cuenta operaciones de mutación: sirve para verificar que
	// un guard fallido nunca llega al store.
	writes int

	lastBounds *Polygon
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Cat{}}
}

func (r *testRepo) Insert(ctx context.Context, c Cat) error {
	r.writes++
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) FindAll(ctx context.Context) ([]Cat, error) {
	out := make([]Cat, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (Cat, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) FindByOwner(ctx context.Context, ownerID string) ([]Cat, error) {
	out := make([]Cat, 0)
	for _, c := range r.byID {
		if c.Owner == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) FindWithin(ctx context.Context, bounds Polygon) ([]Cat, error) {
	r.lastBounds = &bounds
	return nil, nil
}

func (r *testRepo) FindOneAndUpdate(ctx context.Context, id, ownerID string, p Patch) (Cat, error) {
	r.writes++
	c, ok := r.byID[id]
	if !ok || c.Owner != ownerID {
		return Cat{}, ErrNotFound
	}
	c = r.apply(c, p)
	r.byID[id] = c
	return c, nil
}

func (r *testRepo) FindOneAndDelete(ctx context.Context, id, ownerID string) (Cat, error) {
	r.writes++
	c, ok := r.byID[id]
	if !ok || c.Owner != ownerID {
		return Cat{}, ErrNotFound
	}
	delete(r.byID, id)
	return c, nil
}

func (r *testRepo) FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Cat, error) {
	r.writes++
	c, ok := r.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	c = r.apply(c, p)
	r.byID[id] = c
	return c, nil
}

func (r *testRepo) FindByIDAndDelete(ctx context.Context, id string) (Cat, error) {
	r.writes++
	c, ok := r.byID[id]
	if !ok {
		return Cat{}, ErrNotFound
	}
	delete(r.byID, id)
	return c, nil
}

func (r *testRepo) apply(c Cat, p Patch) Cat {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Breed != nil {
		c.Breed = *p.Breed
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.Birthdate != nil {
		t := *p.Birthdate
		c.Birthdate = &t
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	return c
}

// -------------------------
// Helpers
// -------------------------

func ownerClaims(id string) auth.Claims {
	return auth.Claims{UserID: id, Token: "token-" + id}
}

func adminClaims(id string) auth.Claims {
	return auth.Claims{UserID: id, Role: auth.RoleAdmin, Token: "token-" + id}
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_WithoutToken_NeverTouchesStore(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), auth.Claims{}, CreateInput{
		Name:     "Siiri",
		Location: Point{Lng: 5, Lat: 5},
	})
	if err != auth.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("store was touched %d times after failed guard", repo.writes)
	}
}

func TestService_Create_ForcesOwnerFromClaims(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	bd := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{
		Name:      "Siiri",
		Breed:     "siberian",
		Weight:    4.2,
		Birthdate: &bd,
		Location:  Point{Lng: 24.9, Lat: 60.2},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.Owner != "user-a" {
		t.Fatalf("expected owner forced to user-a, got %q", created.Owner)
	}

	// round-trip por id: iguales todos los campos del caller
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Name != "Siiri" || got.Breed != "siberian" || got.Weight != 4.2 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Birthdate == nil || !got.Birthdate.Equal(bd) {
		t.Fatalf("birthdate mismatch: %v", got.Birthdate)
	}
	if got.Location != (Point{Lng: 24.9, Lat: 60.2}) {
		t.Fatalf("location mismatch: %+v", got.Location)
	}
}

func TestService_Update_OtherOwner_LooksNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{Name: "Siiri"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// user-b (no admin) intenta tocar el cat de user-a
	_, err = svc.Update(context.Background(), ownerClaims("user-b"), created.ID, UpdateInput{
		Name: strPtr("Hacked"),
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound (not forbidden), got %v", err)
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Name != "Siiri" {
		t.Fatalf("cat was modified by non-owner: %+v", got)
	}
}

func TestService_Update_Owner_Succeeds(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, _ := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{Name: "Siiri", Weight: 4})

	w := 4.5
	updated, err := svc.Update(context.Background(), ownerClaims("user-a"), created.ID, UpdateInput{
		Name:   strPtr("Siiri II"),
		Weight: &w,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Siiri II" || updated.Weight != 4.5 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Breed != created.Breed {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestService_Delete_OtherOwner_LooksNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, _ := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{Name: "Siiri"})

	_, err := svc.Delete(context.Background(), ownerClaims("user-b"), created.ID)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("cat should still exist: %v", err)
	}
}

func TestService_AdminOps_BypassOwnership(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, _ := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{Name: "Siiri"})

	updated, err := svc.UpdateAsAdmin(context.Background(), adminClaims("user-b"), created.ID, UpdateInput{
		Name: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("admin patch not applied: %+v", updated)
	}
	if updated.Owner != "user-a" {
		t.Fatalf("owner must not change on admin update: %+v", updated)
	}

	if _, err := svc.DeleteAsAdmin(context.Background(), adminClaims("user-b"), created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != ErrNotFound {
		t.Fatalf("cat should be gone, got %v", err)
	}
}

func TestService_AdminOps_RejectNonAdmin(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, _ := svc.Create(context.Background(), ownerClaims("user-a"), CreateInput{Name: "Siiri"})
	writesAfterCreate := repo.writes

	_, err := svc.UpdateAsAdmin(context.Background(), ownerClaims("user-b"), created.ID, UpdateInput{
		Name: strPtr("Nope"),
	})
	if err != auth.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	_, err = svc.DeleteAsAdmin(context.Background(), ownerClaims("user-b"), created.ID)
	if err != auth.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.writes != writesAfterCreate {
		t.Fatalf("store touched after failed admin guard")
	}
}

func TestService_ListByArea_PassesRectangleBounds(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.ListByArea(context.Background(), Point{Lng: 10, Lat: 10}, Point{Lng: 0, Lat: 0})
	if err != nil {
		t.Fatalf("list by area: %v", err)
	}
	if repo.lastBounds == nil {
		t.Fatal("repo never received bounds")
	}

	want := RectangleBounds(Point{Lng: 10, Lat: 10}, Point{Lng: 0, Lat: 0})
	if len(repo.lastBounds.Ring) != len(want.Ring) {
		t.Fatalf("bounds ring mismatch: %+v", repo.lastBounds)
	}
	for i := range want.Ring {
		if repo.lastBounds.Ring[i] != want.Ring[i] {
			t.Fatalf("bounds point %d mismatch: %+v", i, repo.lastBounds.Ring[i])
		}
	}
}
