package domain

import (
	"encoding/json"
	"time"
)

// PpobTransaction is a bill payment (electricity, water, BPJS, internet).
// TransactionID is generated at creation and unique; ExternalRef is the
// provider's reference once known.
type PpobTransaction struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	UserID        int64           `json:"user_id"`
	ProductCode   string          `json:"product_code"`
	CustomerID    string          `json:"customer_id"` // bill number, meter number
	Amount        int64           `json:"amount"`
	AdminFee      int64           `json:"admin_fee"`
	TotalAmount   int64           `json:"total_amount"`
	Status        TxStatus        `json:"status"`
	BillData      json.RawMessage `json:"bill_data,omitempty"`    // inquiry snapshot
	PaymentData   json.RawMessage `json:"payment_data,omitempty"` // provider response
	ExternalRef   *string         `json:"external_ref,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PpobProduct is one payable product in the provider catalog.
type PpobProduct struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"` // pln, pdam, bpjs, internet
	AdminFee int64  `json:"admin_fee"`
}

// BillInfo is the result of a bill inquiry before payment.
type BillInfo struct {
	ProductCode  string          `json:"product_code"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Amount       int64           `json:"amount"`
	AdminFee     int64           `json:"admin_fee"`
	TotalAmount  int64           `json:"total_amount"`
	Detail       json.RawMessage `json:"detail,omitempty"`
}
