package middleware

import (
	"net/http"

	"loanlink/loan_marketplace/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// CapabilityChecker decides whether the caller of the current request may
// perform an administrative operation. Authorization enforcement itself is
// out of scope, so the default checker allows everything; the seam exists so
// a real policy can be injected without touching business logic.
type CapabilityChecker interface {
	Allowed(c *gin.Context, capability string) bool
}

type AllowAllChecker struct{}

func (AllowAllChecker) Allowed(*gin.Context, string) bool { return true }

func RequireCapability(checker CapabilityChecker, capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.Allowed(c, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": consts.ErrCapabilityDenied.Message})
			return
		}
		c.Next()
	}
}
