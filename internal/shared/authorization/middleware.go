package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/shared/constants"
)

// RequireAdmin aborts requests whose authenticated role is not admin or
// super admin. Must run after the auth middleware has set the role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin aborts requests whose authenticated role is not
// super admin. Role assignment is restricted to super admins.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "super admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnedResource is implemented by aggregates with a single owning user.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether the user may act on the resource: admins
// always, everyone else only on resources they own.
func CanAccessResource(userID uint, role UserRole, resource OwnedResource) bool {
	if role.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

// CanAccessResourceByOwnerID is CanAccessResource for callers that only have
// the owner id.
func CanAccessResourceByOwnerID(userID uint, role UserRole, ownerID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return userID == ownerID
}
