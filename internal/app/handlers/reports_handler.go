package handlers

import (
	"errors"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	reports services.ReportServiceInterface
	imports services.ProductImportServiceInterface
}

func NewReportsHandler(reports services.ReportServiceInterface, imports services.ProductImportServiceInterface) *ReportsHandler {
	return &ReportsHandler{reports: reports, imports: imports}
}

// GenerateApplicationsReport renders the recent applications window as CSV
// and uploads it to the report bucket.
func (h *ReportsHandler) GenerateApplicationsReport(c *gin.Context) {
	objectName, rows, err := h.reports.GenerateApplicationsReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, consts.ErrReportBucketNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": consts.ErrReportBucketNotConfigured.Message})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"object": objectName, "rowCount": rows})
}

// ImportLoanProducts pulls the partner's product CSV from the SFTP drop and
// upserts each row by loan title.
func (h *ReportsHandler) ImportLoanProducts(c *gin.Context) {
	imported, err := h.imports.Import(c.Request.Context())
	if err != nil {
		if errors.Is(err, consts.ErrImportNoFile) {
			c.JSON(http.StatusNotFound, gin.H{"error": consts.ErrImportNoFile.Message})
			return
		}
		c.JSON(storeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"importedCount": imported})
}
