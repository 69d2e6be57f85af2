package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"cat-map-api/internal/domain/cats"
)

type catRepo struct {
	mu   sync.RWMutex
	byID map[string]cats.Cat
}

// NewCatRepo crea el repo in-memory (dev/tests).
func NewCatRepo() cats.Repository {
	return &catRepo{
		byID: make(map[string]cats.Cat),
	}
}

func (r *catRepo) Insert(ctx context.Context, c cats.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("cat already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *catRepo) FindAll(ctx context.Context) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.Cat, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sortByCreated(out)
	return out, nil
}

func (r *catRepo) FindByID(ctx context.Context, id string) (cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cats.Cat{}, cats.ErrNotFound
	}
	return c, nil
}

func (r *catRepo) FindByOwner(ctx context.Context, ownerID string) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.Cat, 0)
	for _, c := range r.byID {
		if c.Owner == ownerID {
			out = append(out, c)
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *catRepo) FindWithin(ctx context.Context, bounds cats.Polygon) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.Cat, 0)
	for _, c := range r.byID {
		if ringContains(bounds.Ring, c.Location) {
			out = append(out, c)
		}
	}
	sortByCreated(out)
	return out, nil
}

func (r *catRepo) FindOneAndUpdate(ctx context.Context, id, ownerID string, p cats.Patch) (cats.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.Owner != ownerID {
		// mismo resultado exista o no: no confirmamos cats ajenos
		return cats.Cat{}, cats.ErrNotFound
	}
	c = applyPatch(c, p)
	r.byID[id] = c
	return c, nil
}

func (r *catRepo) FindOneAndDelete(ctx context.Context, id, ownerID string) (cats.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.Owner != ownerID {
		return cats.Cat{}, cats.ErrNotFound
	}
	delete(r.byID, id)
	return c, nil
}

func (r *catRepo) FindByIDAndUpdate(ctx context.Context, id string, p cats.Patch) (cats.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return cats.Cat{}, cats.ErrNotFound
	}
	c = applyPatch(c, p)
	r.byID[id] = c
	return c, nil
}

func (r *catRepo) FindByIDAndDelete(ctx context.Context, id string) (cats.Cat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return cats.Cat{}, cats.ErrNotFound
	}
	delete(r.byID, id)
	return c, nil
}

func applyPatch(c cats.Cat, p cats.Patch) cats.Cat {
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
	c.UpdatedAt = time.Now()
	return c
}

func sortByCreated(out []cats.Cat) {
	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

// ringContains: even-odd sobre el anillo cerrado, con borde inclusivo
// (mismo criterio que el operador de contención del store real).
func ringContains(ring []cats.Point, pt cats.Point) bool {
	if len(ring) < 4 {
		return false
	}

	inside := false
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]

		if onSegment(a, b, pt) {
			return true
		}

		if (a.Lat > pt.Lat) != (b.Lat > pt.Lat) {
			x := a.Lng + (pt.Lat-a.Lat)/(b.Lat-a.Lat)*(b.Lng-a.Lng)
			if pt.Lng < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, pt cats.Point) bool {
	cross := (b.Lng-a.Lng)*(pt.Lat-a.Lat) - (b.Lat-a.Lat)*(pt.Lng-a.Lng)
	if cross != 0 {
		return false
	}
	if pt.Lng < min(a.Lng, b.Lng) || pt.Lng > max(a.Lng, b.Lng) {
		return false
	}
	if pt.Lat < min(a.Lat, b.Lat) || pt.Lat > max(a.Lat, b.Lat) {
		return false
	}
	return true
}
