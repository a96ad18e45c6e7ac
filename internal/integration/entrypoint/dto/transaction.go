// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Date        string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes       string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description   *string          `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	Date          *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	CategoryID   *string   `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	CategoryIcon *string   `json:"category_icon"`
	Date         string    `json:"date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction with its category to a TransactionResponse DTO.
func ToTransactionResponse(twc *entity.TransactionWithCategory) TransactionResponse {
	tx := twc.Transaction
	response := TransactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      money(tx.Amount),
		Type:        string(tx.Type),
		Date:        tx.Date.Format(DateLayout),
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.CategoryID != nil {
		id := tx.CategoryID.String()
		response.CategoryID = &id
	}

	if twc.Category != nil {
		response.CategoryName = &twc.Category.Name
		response.CategoryIcon = &twc.Category.Icon
	}

	return response
}

// ToTransactionListResponse converts a list of transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		items[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}
