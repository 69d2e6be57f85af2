package cats

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"cat-map-api/internal/ports/auth"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateInput no tiene campo Owner a propósito: el owner sale siempre
// del credential context, nunca del caller.
type CreateInput struct {
	Name      string
	Breed     string
	Weight    float64
	Birthdate *time.Time
	Location  Point
}

// UpdateInput: punteros para patch real, nil = no tocar.
type UpdateInput struct {
	Name      *string
	Breed     *string
	Weight    *float64
	Birthdate *time.Time
	Location  *Point
}

// ----- lado de lectura (sin auth) -----

func (s *Service) List(ctx context.Context) ([]Cat, error) {
	// Sin filtro ni paginación: el resultado puede ser grande y eso
	// es una limitación aceptada, no se capea en silencio.
	return s.repo.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Cat, error) {
	if strings.TrimSpace(id) == "" {
		return Cat{}, ErrInvalidInput
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Cat, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *Service) ListByArea(ctx context.Context, topRight, bottomLeft Point) ([]Cat, error) {
	bounds := RectangleBounds(topRight, bottomLeft)
	return s.repo.FindWithin(ctx, bounds)
}

// ----- lado de escritura (guard primero, siempre) -----

func (s *Service) Create(ctx context.Context, claims auth.Claims, in CreateInput) (Cat, error) {
	if err := auth.RequireAuthenticated(claims); err != nil {
		return Cat{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return Cat{}, ErrInvalidInput
	}

	now := s.now()
	c := Cat{
		ID:        uuid.NewString(),
		Owner:     claims.UserID, // siempre del credential context
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Weight:    in.Weight,
		Birthdate: in.Birthdate,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

// Update usa el predicado dual id+owner: autorización y acción colapsadas
// en una sola operación del store, sin read-then-check-then-write.
// Un caller tocando el cat de otro ve ErrNotFound, no "forbidden".
func (s *Service) Update(ctx context.Context, claims auth.Claims, id string, in UpdateInput) (Cat, error) {
	if err := auth.RequireAuthenticated(claims); err != nil {
		return Cat{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Cat{}, ErrInvalidInput
	}
	return s.repo.FindOneAndUpdate(ctx, id, claims.UserID, s.patchFrom(in))
}

func (s *Service) Delete(ctx context.Context, claims auth.Claims, id string) (Cat, error) {
	if err := auth.RequireAuthenticated(claims); err != nil {
		return Cat{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Cat{}, ErrInvalidInput
	}
	return s.repo.FindOneAndDelete(ctx, id, claims.UserID)
}

// UpdateAsAdmin: la elevación de rol saltea ownership por completo,
// el predicado es solo por id.
func (s *Service) UpdateAsAdmin(ctx context.Context, claims auth.Claims, id string, in UpdateInput) (Cat, error) {
	if err := auth.RequireAdmin(claims); err != nil {
		return Cat{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Cat{}, ErrInvalidInput
	}
	return s.repo.FindByIDAndUpdate(ctx, id, s.patchFrom(in))
}

func (s *Service) DeleteAsAdmin(ctx context.Context, claims auth.Claims, id string) (Cat, error) {
	if err := auth.RequireAdmin(claims); err != nil {
		return Cat{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Cat{}, ErrInvalidInput
	}
	return s.repo.FindByIDAndDelete(ctx, id)
}

func (s *Service) patchFrom(in UpdateInput) Patch {
	p := Patch{
		Breed:     in.Breed,
		Weight:    in.Weight,
		Birthdate: in.Birthdate,
		Location:  in.Location,
	}
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		p.Name = &trimmed
	}
	return p
}
