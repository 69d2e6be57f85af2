package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"cat-map-api/internal/domain/cats"
	"cat-map-api/internal/middleware"
	"cat-map-api/internal/ports/identity"
)

type PointInput struct {
	Lng float64
	Lat float64
}

type CatInput struct {
	Name      string
	Breed     string
	Weight    float64
	Birthdate *graphql.Time
	Location  PointInput
}

type CatPatchInput struct {
	Name      *string
	Breed     *string
	Weight    *float64
	Birthdate *graphql.Time
	Location  *PointInput
}

// ----- queries -----

func (r *Resolver) Cats(ctx context.Context) ([]*catResolver, error) {
	list, err := r.cats.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return r.wrapAll(list), nil
}

func (r *Resolver) CatByID(ctx context.Context, args struct{ ID graphql.ID }) (*catResolver, error) {
	c, err := r.cats.GetByID(ctx, string(args.ID))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			// ausencia es un resultado válido en esta query, no un error
			return nil, nil
		}
		return nil, translate(err)
	}
	return r.wrap(c), nil
}

func (r *Resolver) CatsByOwner(ctx context.Context, args struct{ OwnerID graphql.ID }) ([]*catResolver, error) {
	list, err := r.cats.ListByOwner(ctx, string(args.OwnerID))
	if err != nil {
		return nil, translate(err)
	}
	return r.wrapAll(list), nil
}

func (r *Resolver) CatsByArea(ctx context.Context, args struct {
	TopRight   PointInput
	BottomLeft PointInput
}) ([]*catResolver, error) {
	list, err := r.cats.ListByArea(ctx,
		cats.Point{Lng: args.TopRight.Lng, Lat: args.TopRight.Lat},
		cats.Point{Lng: args.BottomLeft.Lng, Lat: args.BottomLeft.Lat},
	)
	if err != nil {
		return nil, translate(err)
	}
	return r.wrapAll(list), nil
}

// ----- mutations -----

func (r *Resolver) CreateCat(ctx context.Context, args struct{ Input CatInput }) (*catResolver, error) {
	claims, _ := middleware.GetClaims(ctx)

	in := cats.CreateInput{
		Name:     args.Input.Name,
		Breed:    args.Input.Breed,
		Weight:   args.Input.Weight,
		Location: cats.Point{Lng: args.Input.Location.Lng, Lat: args.Input.Location.Lat},
	}
	if args.Input.Birthdate != nil {
		t := args.Input.Birthdate.Time
		in.Birthdate = &t
	}

	c, err := r.cats.Create(ctx, claims, in)
	if err != nil {
		return nil, translate(err)
	}

	r.log.Info("cat created", map[string]any{"cat_id": c.ID, "owner": c.Owner})
	return r.wrap(c), nil
}

func (r *Resolver) UpdateCat(ctx context.Context, args struct {
	ID    graphql.ID
	Input CatPatchInput
}) (*catResolver, error) {
	claims, _ := middleware.GetClaims(ctx)

	c, err := r.cats.Update(ctx, claims, string(args.ID), patchInput(args.Input))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			// no-match en el predicado dual => resultado ausente,
			// nunca "forbidden": no se confirma la existencia de
			// cats ajenos
			return nil, nil
		}
		return nil, translate(err)
	}
	return r.wrap(c), nil
}

func (r *Resolver) DeleteCat(ctx context.Context, args struct{ ID graphql.ID }) (*catResolver, error) {
	claims, _ := middleware.GetClaims(ctx)

	c, err := r.cats.Delete(ctx, claims, string(args.ID))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return r.wrap(c), nil
}

func (r *Resolver) UpdateCatAsAdmin(ctx context.Context, args struct {
	ID    graphql.ID
	Input CatPatchInput
}) (*catResolver, error) {
	claims, _ := middleware.GetClaims(ctx)

	c, err := r.cats.UpdateAsAdmin(ctx, claims, string(args.ID), patchInput(args.Input))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return r.wrap(c), nil
}

func (r *Resolver) DeleteCatAsAdmin(ctx context.Context, args struct{ ID graphql.ID }) (*catResolver, error) {
	claims, _ := middleware.GetClaims(ctx)

	c, err := r.cats.DeleteAsAdmin(ctx, claims, string(args.ID))
	if err != nil {
		if errors.Is(err, cats.ErrNotFound) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return r.wrap(c), nil
}

func patchInput(in CatPatchInput) cats.UpdateInput {
	out := cats.UpdateInput{
		Name:   in.Name,
		Breed:  in.Breed,
		Weight: in.Weight,
	}
	if in.Birthdate != nil {
		t := in.Birthdate.Time
		out.Birthdate = &t
	}
	if in.Location != nil {
		out.Location = &cats.Point{Lng: in.Location.Lng, Lat: in.Location.Lat}
	}
	return out
}

func (r *Resolver) wrap(c cats.Cat) *catResolver {
	return &catResolver{c: c, users: r.users}
}

func (r *Resolver) wrapAll(list []cats.Cat) []*catResolver {
	out := make([]*catResolver, 0, len(list))
	for _, c := range list {
		out = append(out, r.wrap(c))
	}
	return out
}

// ----- type resolvers -----

type catResolver struct {
	c     cats.Cat
	users identity.UserService
}

func (r *catResolver) ID() graphql.ID { return graphql.ID(r.c.ID) }
func (r *catResolver) Name() string { return r.c.Name }
func (r *catResolver) Breed() string { return r.c.Breed }
func (r *catResolver) Weight() float64 { return r.c.Weight }

func (r *catResolver) Birthdate() *graphql.Time {
	if r.c.Birthdate == nil {
		return nil
	}
	return &graphql.Time{Time: *r.c.Birthdate}
}

func (r *catResolver) Location() *pointResolver {
	return &pointResolver{p: r.c.Location}
}

// Owner es el field resolver federado: un GET al auth-server por cat.
// N+1 asumido: esto es un boundary de federación, no un hot path, y no
// hay batching ni cache por contrato (el auth-server es el system of
// record y el dato se quiere fresco).
func (r *catResolver) Owner(ctx context.Context) (*userResolver, error) {
	u, err := r.users.UserByID(ctx, r.c.Owner)
	if err != nil {
		return nil, translate(err)
	}
	return &userResolver{u: u}, nil
}

type pointResolver struct {
	p cats.Point
}

func (r *pointResolver) Lng() float64 { return r.p.Lng }
func (r *pointResolver) Lat() float64 { return r.p.Lat }
