package handlers

import (
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"
	"loanlink/loan_marketplace/internal/pkg/services"
	"loanlink/loan_marketplace/internal/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UsersHandler answers under the "message" key on errors, matching the
// contract the user routes have always had.
type UsersHandler struct {
	service services.UserServiceInterface
}

func NewUsersHandler(service services.UserServiceInterface) *UsersHandler {
	return &UsersHandler{service: service}
}

// SignIn upserts the user record keyed by email. New users get the default
// role; returning users only have last_loggedIn refreshed.
func (h *UsersHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.ErrEmptyEmail.Message})
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}

	if result.UpsertedCount > 0 {
		c.JSON(http.StatusCreated, gin.H{"message": "user created", "upsertedId": result.UpsertedID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "modifiedCount": result.ModifiedCount})
}

func (h *UsersHandler) ListUsers(c *gin.Context) {
	users, err := h.service.All(c.Request.Context())
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	user, err := h.service.ByEmail(c.Request.Context(), email)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UsersHandler) GetUserRole(c *gin.Context) {
	email := c.Param("email")

	role, err := h.service.RoleByEmail(c.Request.Context(), email)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *UsersHandler) UpdateUserRole(c *gin.Context) {
	email := c.Param("email")

	var req models.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !utils.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.ErrInvalidRole.Message})
		return
	}

	result, err := h.service.UpdateRole(c.Request.Context(), email, req.Role)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user role updated", "modifiedCount": result.ModifiedCount})
}

func (h *UsersHandler) DeleteUser(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.ErrEmptyEmail.Message})
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), email)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
