// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/walletbook/backend/internal/domain/error"
	"github.com/walletbook/backend/internal/integration/entrypoint/dto"
)

// errorCode extracts the machine-readable code from a coded domain error.
func errorCode(err error) string {
	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		return string(walletErr.Code)
	}
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		return string(categoryErr.Code)
	}
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		return string(entryErr.Code)
	}
	var transferErr *domainerror.TransferError
	if errors.As(err, &transferErr) {
		return string(transferErr.Code)
	}
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return string(authErr.Code)
	}
	return ""
}

// handleDomainError maps a use-case error to an HTTP response. Missing and
// not-owned records share the same 404 so record IDs cannot be probed across
// accounts.
func handleDomainError(ctx *gin.Context, err error, fallback string) {
	switch {
	case domainerror.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  errorCode(err),
		})
	case domainerror.IsConflict(err):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: err.Error(),
			Code:  errorCode(err),
		})
	case domainerror.IsInvalidRequest(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  errorCode(err),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fallback,
		})
	}
}
