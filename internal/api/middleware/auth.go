package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/pkg/jwthelper"
)

const (
	CtxKeySubject = "subject"
	CtxKeyRole    = "role"
)

var (
	errMissingBearer = errors.New("missing bearer token")
	errAdminOnly     = errors.New("admin access required")
	errUserOnly      = errors.New("only users can access this resource")
)

// Authenticate rejects requests without a valid bearer token and stores the
// token subject and role on the context.
func Authenticate(signingKey string) gin.HandlerFunc {
	key := []byte(signingKey)

	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearer))
			return
		}

		claims, err := jwthelper.ParseToken(key, raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		id, err := claims.ID()
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(CtxKeySubject, id)
		ctx.Set(CtxKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(jwthelper.RoleAdmin, errAdminOnly)
}

// RequireUser must run after Authenticate. Admin tokens are rejected too.
func RequireUser() gin.HandlerFunc {
	return requireRole(jwthelper.RoleUser, errUserOnly)
}

func requireRole(role string, denied error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(CtxKeyRole) != role {
			response.RenderErr(ctx, response.ErrForbidden(denied))
			return
		}

		ctx.Next()
	}
}

func Subject(ctx *gin.Context) (uint, error) {
	v, ok := ctx.Get(CtxKeySubject)
	if !ok {
		return 0, errors.New("no authenticated subject")
	}

	id, ok := v.(uint)
	if !ok {
		return 0, fmt.Errorf("unexpected subject type %T", v)
	}

	return id, nil
}
