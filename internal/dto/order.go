package dto

import (
	"time"

	"commerce-insights/internal/models"
)

// Order query DTOs

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total   int64 `json:"total"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"hasMore"`
}

// ListOrdersResponse represents the response for listing order lines
type ListOrdersResponse struct {
	Orders     []models.Order `json:"orders"`
	Pagination PaginationInfo `json:"pagination"`
}

// Import DTOs

// ImportSummary reports the outcome of a ledger file import
type ImportSummary struct {
	RowsRead     int      `json:"rowsRead"`
	RowsImported int      `json:"rowsImported"`
	RowsSkipped  int      `json:"rowsSkipped"`
	DeletedLines int64    `json:"deletedLines"`
	Errors       []string `json:"errors,omitempty"`
	ElapsedMs    int64    `json:"elapsedMs"`
}

// Generator DTOs

// GenerateDataRequest configures the development dataset generator
type GenerateDataRequest struct {
	Customers int    `json:"customers" validate:"omitempty,min=1,max=10000"`
	Orders    int    `json:"orders" validate:"omitempty,min=1,max=200000"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Seed      int64  `json:"seed"`
}

// GenerateDataSummary reports what the generator produced
type GenerateDataSummary struct {
	DeletedLines   int64     `json:"deletedLines"`
	Customers      int       `json:"customers"`
	Orders         int       `json:"orders"`
	LinesInserted  int       `json:"linesInserted"`
	FirstOccurred  time.Time `json:"firstOccurred"`
	LastOccurred   time.Time `json:"lastOccurred"`
	ElapsedMs      int64     `json:"elapsedMs"`
}
