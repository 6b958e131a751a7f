// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletbook/backend/internal/application/usecase/entry"
	"github.com/walletbook/backend/internal/domain/entity"
	"github.com/walletbook/backend/internal/integration/entrypoint/dto"
	"github.com/walletbook/backend/internal/integration/entrypoint/middleware"
)

// entryDateLayout is the wire format for entry dates.
const entryDateLayout = "2006-01-02"

// EntryController handles entry endpoints.
type EntryController struct {
	createUseCase *entry.CreateEntryUseCase
	listUseCase   *entry.ListEntriesUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
	payUseCase    *entry.PayEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	payUseCase *entry.PayEntryUseCase,
) *EntryController {
	return &EntryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		payUseCase:    payUseCase,
	}
}

// Create handles POST /entries requests. A request with a series flag set
// returns every generated member, not just the first.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wallet ID format",
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
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

	dueDate, err := time.Parse(entryDateLayout, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
		})
		return
	}

	input := entry.CreateEntryInput{
		UserID:        userID,
		WalletID:      walletID,
		CategoryID:    categoryID,
		Description:   req.Description,
		Amount:        amount,
		Type:          entity.EntryType(req.Type),
		DueDate:       dueDate,
		Notes:         req.Notes,
		IsPaid:        req.IsPaid,
		IsRecurring:   req.IsRecurring,
		IsInstallment: req.IsInstallment,
	}

	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paymentDate, err := time.Parse(entryDateLayout, *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}

	if req.Recurrence != nil {
		recurrence := entity.Recurrence(*req.Recurrence)
		input.Recurrence = &recurrence
	}
	input.InstallmentCount = req.InstallmentCount

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "Failed to create entry")
		return
	}

	if len(output.Entries) == 1 {
		ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entries[0]))
		return
	}
	ctx.JSON(http.StatusCreated, dto.EntrySeriesResponse{
		Entries: dto.ToEntryResponses(output.Entries),
	})
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := entry.ListEntriesInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if walletIDStr := ctx.Query("walletId"); walletIDStr != "" {
		if id, err := uuid.Parse(walletIDStr); err == nil {
			input.WalletID = &id
		}
	}
	if categoryIDStr := ctx.Query("categoryId"); categoryIDStr != "" {
		if id, err := uuid.Parse(categoryIDStr); err == nil {
			input.CategoryID = &id
		}
	}
	if isPaidStr := ctx.Query("isPaid"); isPaidStr != "" {
		isPaid := isPaidStr == "true"
		input.IsPaid = &isPaid
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
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.EntryListResponse{
		Entries:    dto.ToEntryResponses(output.Entries),
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	})
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := entry.UpdateEntryInput{
		EntryID:      entryID,
		UserID:       userID,
		ApplyToGroup: req.ApplyToGroup,
		Description:  req.Description,
		Notes:        req.Notes,
		IsPaid:       req.IsPaid,
	}

	if req.WalletID != nil {
		id, err := uuid.Parse(*req.WalletID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid wallet ID format",
			})
			return
		}
		input.WalletID = &id
	}
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &id
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
			})
			return
		}
		input.Amount = &amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(entryDateLayout, *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paymentDate, err := time.Parse(entryDateLayout, *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "Failed to update entry")
		return
	}

	if len(output.Entries) == 1 {
		ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entries[0]))
		return
	}
	ctx.JSON(http.StatusOK, dto.EntrySeriesResponse{
		Entries: dto.ToEntryResponses(output.Entries),
	})
}

// Delete handles DELETE /entries/:id requests. Passing applyToGroup=true
// deletes every member of the entry's series.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	input := entry.DeleteEntryInput{
		EntryID:      entryID,
		UserID:       userID,
		ApplyToGroup: ctx.Query("applyToGroup") == "true",
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "Failed to delete entry")
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteEntryResponse{
		DeletedCount: output.DeletedCount,
	})
}

// Pay handles POST /entries/:id/pay requests.
func (c *EntryController) Pay(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.PayEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := entry.PayEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paymentDate, err := time.Parse(entryDateLayout, *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}

	output, err := c.payUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err, "Failed to pay entry")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}
