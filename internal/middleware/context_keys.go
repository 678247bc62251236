package middleware

import (
	"github.com/SscSPs/share_registry_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// principalKey is the key used to store the authenticated principal in the
// request context. Using a custom type prevents collisions.
const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal from the Gin
// context. It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return domain.Principal{}, false
	}

	principal, ok := val.(domain.Principal)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return domain.Principal{}, false
	}

	return principal, true
}
