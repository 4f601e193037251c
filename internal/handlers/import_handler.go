package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apierrors "commerce-insights/internal/errors"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler handles order ledger file uploads
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ImportOrders replaces the stored dataset with an uploaded CSV ledger
//
// Method: POST /api/v1/orders/import
// Authentication: Required (Bearer token)
// Content-Type: multipart/form-data
//
// Form fields:
//   - file: CSV ledger export with header Invoice_Number,Invoice_Date,
//     Customer_ID,Country,Quantity,Amount and optional Product
//
// Success Response: 200 OK
//   - data: rowsRead, rowsImported, rowsSkipped, deletedLines (size of
//     the replaced dataset), per-row skip reasons and elapsed import time
//
// Error Responses:
//   - 400: Missing file, empty file, bad header, malformed CSV, or no
//     row survived cleaning
//   - 401: Missing or invalid token
//   - 413: File exceeds the upload size limit
//   - 500: Internal server error
func (h *ImportHandler) ImportOrders(c echo.Context) error {
	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("file: multipart field is required"))
	}

	if fileHeader.Size > h.maxUploadBytes {
		return SendError(c, apierrors.ImportFileTooLarge,
			apierrors.WithDetails(fmt.Sprintf("file is %d bytes, limit is %d", fileHeader.Size, h.maxUploadBytes)))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer src.Close()

	summary, err := h.importService.ImportCSV(c.Request().Context(), src)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	slog.Info("dataset imported",
		"client_id", clientID,
		"file", fileHeader.Filename,
		"rows_imported", summary.RowsImported,
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    summary,
		Message: "Dataset replaced successfully",
	})
}

func (h *ImportHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrImportEmptyFile) {
		return SendError(c, apierrors.ImportEmptyFile)
	}

	if errors.Is(err, services.ErrImportInvalidHeader) {
		return SendError(c, apierrors.ImportInvalidHeader)
	}

	if errors.Is(err, services.ErrImportNoValidRows) {
		return SendError(c, apierrors.ImportNoValidRows)
	}

	if errors.Is(err, services.ErrImportMalformedCSV) {
		return SendError(c, apierrors.ImportMalformedCSV, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
