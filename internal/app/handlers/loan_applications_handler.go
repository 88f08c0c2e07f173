package handlers

import (
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"
	"loanlink/loan_marketplace/internal/pkg/services"
	"loanlink/loan_marketplace/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type LoanApplicationsHandler struct {
	service services.LoanApplicationServiceInterface
}

func NewLoanApplicationsHandler(service services.LoanApplicationServiceInterface) *LoanApplicationsHandler {
	return &LoanApplicationsHandler{service: service}
}

func (h *LoanApplicationsHandler) ApplyLoan(c *gin.Context) {
	var req models.ApplyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if missing := utils.MissingFields(map[string]string{
		"loanTitle":  req.LoanTitle,
		"loanAmount": req.LoanAmount,
		"category":   req.Category,
		"firstName":  req.FirstName,
		"lastName":   req.LastName,
		"userEmail":  req.UserEmail,
	}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": missing})
		return
	}

	id, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

func (h *LoanApplicationsHandler) ListLoanApplications(c *gin.Context) {
	applications, err := h.service.All(c.Request.Context())
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *LoanApplicationsHandler) ListPendingApplications(c *gin.Context) {
	applications, err := h.service.Pending(c.Request.Context())
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *LoanApplicationsHandler) ListApplicationsByUser(c *gin.Context) {
	email := c.Param("email")

	applications, err := h.service.ByUserEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *LoanApplicationsHandler) GetLoanApplication(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.service.ByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "loan application not found"})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, application)
}

// UpdateApplicationStatus answers under the "message" key; the status routes
// always have.
func (h *LoanApplicationsHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !utils.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.ErrInvalidStatus.Message})
		return
	}

	approvedAt := decideApprovedAt(req)

	result, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, approvedAt)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "loan application not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application status updated", "modifiedCount": result.ModifiedCount})
}

// decideApprovedAt keeps approvedAt null unless the application is being
// approved; an unparseable client timestamp falls back to now.
func decideApprovedAt(req models.StatusUpdateRequest) *time.Time {
	if req.Status != consts.StatusApproved {
		return nil
	}

	now := time.Now().UTC()
	if req.ApprovedAt == nil {
		return &now
	}
	parsed, err := time.Parse(time.RFC3339, *req.ApprovedAt)
	if err != nil {
		return &now
	}
	return &parsed
}

func (h *LoanApplicationsHandler) RecordPayment(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var req models.PaymentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "transactionId is required"})
		return
	}

	result, err := h.service.RecordPayment(c.Request.Context(), id, req.TransactionID)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"message": err.Error()})
		return
	}
	// Raw update result, no existence check: the legacy route behaved this
	// way and clients inspect the counts.
	c.JSON(http.StatusOK, models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

func (h *LoanApplicationsHandler) DeleteLoanApplication(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan application not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
