package domain

import (
	"encoding/json"
	"time"
)

// BankTransfer is an interbank money transfer.
type BankTransfer struct {
	ID              int64           `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	UserID          int64           `json:"user_id"`
	FromBank        string          `json:"from_bank"`
	ToBank          string          `json:"to_bank"`
	ToAccountNumber string          `json:"to_account_number"`
	ToAccountName   string          `json:"to_account_name"`
	Amount          int64           `json:"amount"`
	TransferFee     int64           `json:"transfer_fee"`
	TotalAmount     int64           `json:"total_amount"`
	Status          TxStatus        `json:"status"`
	InquiryData     json.RawMessage `json:"inquiry_data,omitempty"`
	TransferData    json.RawMessage `json:"transfer_data,omitempty"`
	ExternalRef     *string         `json:"external_ref,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Bank describes a supported destination bank and its transfer limits.
type Bank struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	TransferFee int64  `json:"transfer_fee"`
	MinAmount   int64  `json:"min_amount"`
	MaxAmount   int64  `json:"max_amount"`
}

// BankAccountInfo is the result of a destination account inquiry.
type BankAccountInfo struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
