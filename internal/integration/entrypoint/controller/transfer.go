// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/usecase/transfer"
	"github.com/walletbook/backend/internal/integration/entrypoint/dto"
	"github.com/walletbook/backend/internal/integration/entrypoint/middleware"
)

// TransferController handles transfer endpoints.
type TransferController struct {
	createUseCase *transfer.CreateTransferUseCase
	listUseCase   *transfer.ListTransfersUseCase
	deleteUseCase *transfer.DeleteTransferUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	createUseCase *transfer.CreateTransferUseCase,
	listUseCase *transfer.ListTransfersUseCase,
	deleteUseCase *transfer.DeleteTransferUseCase,
) *TransferController {
	return &TransferController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	fromWalletID, err := uuid.Parse(req.FromWalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source wallet ID format",
		})
		return
	}

	toWalletID, err := uuid.Parse(req.ToWalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid destination wallet ID format",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	date, err := time.Parse(entryDateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	input := transfer.CreateTransferInput{
		UserID:       userID,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Amount:       amount,
		Date:         &date,
		Description:  req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "Failed to create transfer")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output.Transfer))
}

// List handles GET /transfers requests.
func (c *TransferController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transfer.ListTransfersInput{
		UserID: userID,
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse(entryDateLayout, startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse(entryDateLayout, endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transfers",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferListResponse(output.Transfers))
}

// Delete handles DELETE /transfers/:id requests.
func (c *TransferController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transferID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transfer ID format",
		})
		return
	}

	input := transfer.DeleteTransferInput{
		TransferID: transferID,
		UserID:     userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleDomainError(ctx, err, "Failed to delete transfer")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transfer deleted successfully"})
}
