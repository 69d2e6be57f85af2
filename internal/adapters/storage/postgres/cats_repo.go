package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cat-map-api/internal/domain/cats"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

const catColumns = `
	id, owner_user_id,
	name, breed, weight, birthdate,
	lng, lat,
	created_at, updated_at
`

func (r *CatsRepo) Insert(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, weight, birthdate,
			lng, lat,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID,
		c.Owner,
		c.Name,
		c.Breed,
		c.Weight,
		toNullTime(c.Birthdate),
		c.Location.Lng,
		c.Location.Lat,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *CatsRepo) FindAll(ctx context.Context) ([]cats.Cat, error) {
	return r.list(ctx, `
		SELECT `+catColumns+`
		FROM cats
		ORDER BY created_at ASC
	`)
}

func (r *CatsRepo) FindByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+catColumns+`
		FROM cats
		WHERE id = $1
	`, id)

	return scanCat(row)
}

func (r *CatsRepo) FindByOwner(ctx context.Context, ownerID string) ([]cats.Cat, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	return r.list(ctx, `
		SELECT `+catColumns+`
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerID)
}

func (r *CatsRepo) FindWithin(ctx context.Context, bounds cats.Polygon) ([]cats.Cat, error) {
	// Contención con la geometría nativa de Postgres: point <@ polygon.
	// El operador incluye el borde, igual que $geoWithin en el store mongo.
	return r.list(ctx, `
		SELECT `+catColumns+`
		FROM cats
		WHERE point(lng, lat) <@ $1::polygon
		ORDER BY created_at ASC
	`, polygonLiteral(bounds))
}

func (r *CatsRepo) FindOneAndUpdate(ctx context.Context, id, ownerID string, p cats.Patch) (cats.Cat, error) {
	return r.update(ctx, `id = $1 AND owner_user_id = $2`, []any{id, ownerID}, p)
}

func (r *CatsRepo) FindOneAndDelete(ctx context.Context, id, ownerID string) (cats.Cat, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM cats
		WHERE id = $1 AND owner_user_id = $2
		RETURNING `+catColumns,
		id, ownerID,
	)
	return scanCat(row)
}

func (r *CatsRepo) FindByIDAndUpdate(ctx context.Context, id string, p cats.Patch) (cats.Cat, error) {
	return r.update(ctx, `id = $1`, []any{id}, p)
}

func (r *CatsRepo) FindByIDAndDelete(ctx context.Context, id string) (cats.Cat, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM cats
		WHERE id = $1
		RETURNING `+catColumns,
		id,
	)
	return scanCat(row)
}

// update arma el UPDATE con COALESCE por campo (nil = conservar) y
// RETURNING para devolver el registro ya actualizado en el mismo viaje.
func (r *CatsRepo) update(ctx context.Context, where string, whereArgs []any, p cats.Patch) (cats.Cat, error) {
	n := len(whereArgs)
	args := append([]any{}, whereArgs...)

	var lng, lat *float64
	if p.Location != nil {
		lng = &p.Location.Lng
		lat = &p.Location.Lat
	}
	args = append(args,
		p.Name,
		p.Breed,
		p.Weight,
		toNullTime(p.Birthdate),
		lng,
		lat,
		time.Now(),
	)

	query := fmt.Sprintf(`
		UPDATE cats
		SET
			name = COALESCE($%d::text, name),
			breed = COALESCE($%d::text, breed),
			weight = COALESCE($%d::float8, weight),
			birthdate = COALESCE($%d::timestamptz, birthdate),
			lng = COALESCE($%d::float8, lng),
			lat = COALESCE($%d::float8, lat),
			updated_at = $%d
		WHERE `+where+`
		RETURNING `+catColumns,
		n+1, n+2, n+3, n+4, n+5, n+6, n+7,
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	return scanCat(row)
}

func (r *CatsRepo) list(ctx context.Context, query string, args ...any) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(row rowScanner) (cats.Cat, error) {
	var c cats.Cat
	var bd sql.NullTime

	if err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.Name,
		&c.Breed,
		&c.Weight,
		&bd,
		&c.Location.Lng,
		&c.Location.Lat,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}

	if bd.Valid {
		t := bd.Time
		c.Birthdate = &t
	}
	return c, nil
}

// polygonLiteral arma el literal polygon de Postgres: ((x1,y1),(x2,y2),...)
func polygonLiteral(bounds cats.Polygon) string {
	parts := make([]string, 0, len(bounds.Ring))
	for _, p := range bounds.Ring {
		parts = append(parts, fmt.Sprintf("(%g,%g)", p.Lng, p.Lat))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
