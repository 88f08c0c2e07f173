package handlers

import (
	"loanlink/loan_marketplace/internal/pkg/services"
	"loanlink/loan_marketplace/internal/pkg/utils"
	"net/http"

	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Product routes answer errors under the "error" key; that asymmetry with the
// user routes is part of the published contract.
type LoanProductsHandler struct {
	service services.LoanProductServiceInterface
}

func NewLoanProductsHandler(service services.LoanProductServiceInterface) *LoanProductsHandler {
	return &LoanProductsHandler{service: service}
}

func (h *LoanProductsHandler) ListLoanProducts(c *gin.Context) {
	search := c.Query("search")

	products, err := h.service.Search(c.Request.Context(), search)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *LoanProductsHandler) GetLoanProduct(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.service.ByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "loan product not found"})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *LoanProductsHandler) CreateLoanProduct(c *gin.Context) {
	var product models.LoanProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if missing := utils.MissingFields(map[string]string{
		"loanTitle": product.LoanTitle,
		"category":  product.Category,
	}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields", "fields": missing})
		return
	}

	id, err := h.service.Create(c.Request.Context(), product)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

func (h *LoanProductsHandler) UpdateLoanProduct(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// _id is immutable; clients sometimes echo the whole document back.
	delete(fields, "_id")

	result, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "loan product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

func (h *LoanProductsHandler) DeleteLoanProduct(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "loan product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
