package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/raj8888/Ecommerce-API/internal/apperrors"
)

// RequireRoles rejects requests whose resolved role is not in the allowed
// set. It must run after Auth; it performs no identity resolution of its own.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		roleValue, _ := role.(string)

		if !roleAllowed(allowed, roleValue) {
			log.Printf("[AUTH] [ERROR] role %q not permitted", roleValue)
			abortWithError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

func roleAllowed(allowed []string, role string) bool {
	if role == "" {
		return false
	}
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
