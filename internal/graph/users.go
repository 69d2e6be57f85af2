package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"cat-map-api/internal/middleware"
	"cat-map-api/internal/ports/auth"
	"cat-map-api/internal/ports/identity"
)

type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

type CredentialsInput struct {
	Username string
	Password string
}

type UserPatchInput struct {
	UserName *string
	Email    *string
	Password *string
}

// ----- queries (proxy directo al auth-server) -----

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.users.Users(ctx)
	if err != nil {
		return nil, translate(err)
	}

	out := make([]*userResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &userResolver{u: u})
	}
	return out, nil
}

func (r *Resolver) UserByID(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	u, err := r.users.UserByID(ctx, string(args.ID))
	if err != nil {
		return nil, translate(err)
	}
	return &userResolver{u: u}, nil
}

func (r *Resolver) CheckToken(ctx context.Context) (*userResolver, error) {
	claims, _ := middleware.GetClaims(ctx)
	if err := auth.RequireAuthenticated(claims); err != nil {
		return nil, translate(err)
	}

	// la verificación es enteramente del auth-server; acá solo se reenvía
	u, err := r.users.CheckToken(ctx, claims.Token)
	if err != nil {
		return nil, translate(err)
	}
	return &userResolver{u: u}, nil
}

// ----- mutations (pass-through) -----

func (r *Resolver) Register(ctx context.Context, args struct{ User RegisterInput }) (*loginResolver, error) {
	resp, err := r.users.Register(ctx, identity.User{
		UserName: args.User.UserName,
		Email:    args.User.Email,
		Password: args.User.Password,
	})
	if err != nil {
		return nil, translate(err)
	}

	r.log.Info("user registered", map[string]any{"user_id": resp.User.ID})
	return &loginResolver{resp: resp}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Credentials CredentialsInput }) (*loginResolver, error) {
	resp, err := r.users.Login(ctx, identity.LoginInput{
		Username: args.Credentials.Username,
		Password: args.Credentials.Password,
	})
	if err != nil {
		return nil, translate(err)
	}
	return &loginResolver{resp: resp}, nil
}

// UpdateUser exige token presente y lo reenvía; el auth-server decide
// de quién es la cuenta a partir del token. Nunca se manda un user id.
func (r *Resolver) UpdateUser(ctx context.Context, args struct{ User UserPatchInput }) (*loginResolver, error) {
	claims, _ := middleware.GetClaims(ctx)
	if err := auth.RequireAuthenticated(claims); err != nil {
		return nil, translate(auth.ErrUnauthorized)
	}

	var u identity.User
	if args.User.UserName != nil {
		u.UserName = *args.User.UserName
	}
	if args.User.Email != nil {
		u.Email = *args.User.Email
	}
	if args.User.Password != nil {
		u.Password = *args.User.Password
	}

	resp, err := r.users.UpdateUser(ctx, claims.Token, u)
	if err != nil {
		return nil, translate(err)
	}
	return &loginResolver{resp: resp}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context) (*loginResolver, error) {
	claims, _ := middleware.GetClaims(ctx)
	if err := auth.RequireAuthenticated(claims); err != nil {
		return nil, translate(auth.ErrUnauthorized)
	}

	resp, err := r.users.DeleteUser(ctx, claims.Token)
	if err != nil {
		return nil, translate(err)
	}

	r.log.Info("user deleted", map[string]any{"user_id": resp.User.ID})
	return &loginResolver{resp: resp}, nil
}

// ----- type resolvers -----

type userResolver struct {
	u identity.User
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID) }
func (r *userResolver) UserName() string { return r.u.UserName }
func (r *userResolver) Email() string { return r.u.Email }

func (r *userResolver) Role() *string {
	if r.u.Role == "" {
		return nil
	}
	role := r.u.Role
	return &role
}

type loginResolver struct {
	resp identity.LoginResponse
}

func (r *loginResolver) Message() string { return r.resp.Message }
func (r *loginResolver) Token() string { return r.resp.Token }

func (r *loginResolver) User() *userResolver {
	return &userResolver{u: r.resp.User}
}
