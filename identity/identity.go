// Package identity resolves the current actor from the Firebase Auth session
// token. The actor is only used to pre-fill and stamp snapshots; it is never
// consulted for authorization decisions inside the pricing or wizard logic.
package identity

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/ferremax/portal/common"
)

// Portal roles. Role gating happens at the route group level, not inside the
// domain services.
const (
	RoleAdmin         = "admin"
	RoleHR            = "hr"
	RoleBranchManager = "branch_manager"
	RoleVendor        = "vendor"
)

// Gin context keys populated by the identity middleware.
const (
	CtxKeyUID   = "uid"
	CtxKeyEmail = "email"
	CtxKeyName  = "name"
	CtxKeyRole  = "role"
)

var ErrInvalidToken = errors.New("invalid identity token")

// Actor is the authenticated portal user as seen by the domain services.
type Actor struct {
	UID   string
	Name  string
	Email string
	Role  string
}

//go:generate mockery --name Service --output ./mocks
type Service interface {
	VerifyToken(ctx context.Context, idToken string) (*Actor, error)
}

type service struct {
	authClient *auth.Client
}

// NewService initializes the Firebase Auth backed identity service.
func NewService(ctx context.Context) (Service, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &service{authClient: authClient}, nil
}

func (s *service) VerifyToken(ctx context.Context, idToken string) (*Actor, error) {
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	actor := Actor{UID: token.UID, Role: RoleVendor}

	if v, ok := token.Claims["name"].(string); ok {
		actor.Name = v
	}

	if v, ok := token.Claims["email"].(string); ok {
		actor.Email = v
	}

	if v, ok := token.Claims["role"].(string); ok {
		actor.Role = v
	}

	return &actor, nil
}

// FromContext rebuilds the actor from the gin context keys set by the
// identity middleware. Missing keys yield zero fields, never an error, so
// pre-fill degrades gracefully for anonymous public pages.
func FromContext(ctx context.Context) Actor {
	actor := Actor{}

	if v, ok := ctx.Value(CtxKeyUID).(string); ok {
		actor.UID = v
	}

	if v, ok := ctx.Value(CtxKeyName).(string); ok {
		actor.Name = v
	}

	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		actor.Email = v
	}

	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		actor.Role = v
	}

	return actor
}
