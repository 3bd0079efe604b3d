package mid

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/identity"
)

// Identity verifies the Firebase ID token on the Authorization header and
// stores the actor fields in the gin context for pre-fill and stamping.
func Identity(svc identity.Service) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			header := ctx.GetHeader("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			actor, err := svc.VerifyToken(ctx, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			ctx.Set(identity.CtxKeyUID, actor.UID)
			ctx.Set(identity.CtxKeyName, actor.Name)
			ctx.Set(identity.CtxKeyEmail, actor.Email)
			ctx.Set(identity.CtxKeyRole, actor.Role)

			return before(ctx)
		}

		return h
	}

	return f
}

// RequireRoles rejects requests whose actor role is not in the allowed set.
// Role gating guards route groups only; domain services stay role-agnostic.
func RequireRoles(roles ...string) web.Middleware {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if !allowed[ctx.GetString(identity.CtxKeyRole)] {
				return web.NewRequestError(web.ErrForbidden, http.StatusForbidden)
			}

			return before(ctx)
		}

		return h
	}

	return f
}
