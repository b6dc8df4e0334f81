package http

import (
	"fmt"
	"net/http"
	"strings"

	"bizza/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Roles carried in the "role" claim of the bearer token.
const (
	RoleClient  = "client"
	RoleForeman = "foreman"
	RoleAdmin   = "admin"
)

const (
	principalKey = "principal_id"
	roleKey      = "principal_role"
)

// Claims is the token payload: the principal's id rides in the standard
// subject claim, the role in a custom one.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// BearerAuth validates the Authorization header and stashes the principal
// id and role in the request context for the route handlers.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return unauthorized(ctx, "missing bearer token")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid token")
			}

			principal, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return unauthorized(ctx, "invalid token subject")
			}

			ctx.Set(principalKey, principal)
			ctx.Set(roleKey, claims.Role)
			return next(ctx)
		}
	}
}

// RequireRole gates a route to the given roles. Runs after BearerAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, _ := ctx.Get(roleKey).(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: fmt.Sprintf("role %q is not allowed to perform this operation", role),
			})
		}
	}
}

func principalID(ctx echo.Context) (kernel.UUID, error) {
	principal, ok := ctx.Get(principalKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("no authenticated principal in request context")
	}
	return principal, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
