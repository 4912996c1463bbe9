package auth

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/repository"
)

// currentUserKey is the request-scoped context key holding the resolved user.
const currentUserKey = "currentUser"

// SessionConfig returns the echo-jwt configuration for session-gated routes.
// Token parsing is delegated to JWTService so that signature and expiry checks
// match the issuer; any failure surfaces as a uniform 401.
func SessionConfig(jwtService *JWTService) echojwt.Config {
	return echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "not authorized, no valid token",
				Code:  "UNAUTHORIZED",
			})
		},
	}
}

// LoadUser resolves the authenticated user from the store on every request.
// The token only proves identity at issuance time; the fresh lookup makes
// deletion, deactivation, and role changes effective without a re-login.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthorized()
			}
			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return unauthorized()
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return unauthorized()
			}
			if !user.IsActive {
				return unauthorized()
			}
			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the admin role. It must run after LoadUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return unauthorized()
			}
			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "admin access required",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by LoadUser, or nil outside a session.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: "not authorized, no valid token",
		Code:  "UNAUTHORIZED",
	})
}
