package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/umithief/motovibe6/internal/delivery/api/response"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/service"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUserName = "userName"
	contextKeyRoles    = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", domainerrors.ErrUnauthorized.Message())
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Geçersiz yetkilendirme başlığı.")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Oturumun süresi dolmuş, lütfen tekrar giriş yapın.")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// Identify attaches the caller's identity when a valid token is present and
// lets anonymous requests through unchanged.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if found && tokenString != "" {
			if claims, err := m.tokenSvc.ValidateToken(tokenString); err == nil && claims.UserID != uuid.Nil {
				setIdentity(c, claims)
			}
		}

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetRoles(c).Contains(role) {
				return response.Fail(c, http.StatusForbidden, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message(), nil)
			}

			return next(c)
		}
	}
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyUserName, claims.Name)
	c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetUserName returns the display name carried by the token.
func GetUserName(c echo.Context) string {
	name, _ := c.Get(contextKeyUserName).(string)

	return name
}

// GetRoles returns the caller's roles, empty for anonymous requests.
func GetRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(contextKeyRoles).(entity.Roles)

	return roles
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(c echo.Context) bool {
	return GetRoles(c).Contains(entity.RoleAdmin)
}
