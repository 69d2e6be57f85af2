package cats

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound: el predicado no matcheó ningún registro.
// En los paths owner-scoped esto NO distingue "no existe" de "existe pero
// es de otro owner"; esa ambigüedad es deliberada (information hiding).
var ErrNotFound = errors.New("cat not found")

// Patch son los campos mutables de un Cat; nil = no tocar.
type Patch struct {
	Name      *string
	Breed     *string
	Weight    *float64
	Birthdate *time.Time
	Location  *Point
}

// Repository sigue las formas de query del document store:
// filtros por id, por owner, por contención geométrica, y las variantes
// find-one-and-{update,delete} que colapsan autorización y acción en una
// sola operación atómica (predicado dual id+owner).
type Repository interface {
	Insert(ctx context.Context, c Cat) error

	FindAll(ctx context.Context) ([]Cat, error)
	FindByID(ctx context.Context, id string) (Cat, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Cat, error)

	// FindWithin devuelve los cats cuya location cae dentro (o en el borde)
	// del polígono dado.
	FindWithin(ctx context.Context, bounds Polygon) ([]Cat, error)

	// FindOneAndUpdate: predicado dual (id AND owner). Si no matchea,
	// ErrNotFound; nunca "forbidden".
	FindOneAndUpdate(ctx context.Context, id, ownerID string, p Patch) (Cat, error)
	FindOneAndDelete(ctx context.Context, id, ownerID string) (Cat, error)

	// Variantes admin: solo predicado por id, sin constraint de owner.
	FindByIDAndUpdate(ctx context.Context, id string, p Patch) (Cat, error)
	FindByIDAndDelete(ctx context.Context, id string) (Cat, error)
}
