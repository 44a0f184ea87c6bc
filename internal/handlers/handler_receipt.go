package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pravaha_expense_app/internal/core/ports/services"
	"github.com/SscSPs/pravaha_expense_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := &receiptHandler{receiptService: receiptService}
	rg.POST("/ocr/process", h.processReceipt)
}

// processReceipt godoc
// @Summary Scan a receipt
// @Description Runs text detection on a base64 image and suggests amount, currency and category.
// @Tags ocr
// @Accept json
// @Produce json
// @Param receipt body dto.ProcessReceiptRequest true "Base64 image"
// @Success 200 {object} dto.ReceiptSuggestionResponse
// @Failure 400 {object} ErrorResponse "Image data could not be decoded"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Text detection not initialised"
// @Security BearerAuth
// @Router /ocr/process [post]
func (h *receiptHandler) processReceipt(c *gin.Context) {
	if _, ok := principalOrAbort(c); !ok {
		return
	}

	var req dto.ProcessReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	suggestion, err := h.receiptService.ExtractReceipt(c.Request.Context(), req.ImageData)
	if err != nil {
		respondError(c, err, "process receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptSuggestionResponse(suggestion))
}
