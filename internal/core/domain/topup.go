package domain

import (
	"encoding/json"
	"time"
)

// WalletTopup is a mobile credit (pulsa) or data package topup.
type WalletTopup struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	UserID        int64           `json:"user_id"`
	PhoneNumber   string          `json:"phone_number"`
	Operator      string          `json:"operator"`
	ProductCode   string          `json:"product_code"`
	Denomination  int64           `json:"denomination"`
	Amount        int64           `json:"amount"` // sell price including margin
	Status        TxStatus        `json:"status"`
	TopupData     json.RawMessage `json:"topup_data,omitempty"`
	ExternalRef   *string         `json:"external_ref,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PulsaProduct is one topup denomination in the provider catalog.
type PulsaProduct struct {
	Code         string `json:"code"`
	Operator     string `json:"operator"`
	Denomination int64  `json:"denomination"`
	Price        int64  `json:"price"`
}

// operatorPrefixes maps Indonesian mobile number prefixes to operators.
var operatorPrefixes = map[string]string{
	"0811": "telkomsel", "0812": "telkomsel", "0813": "telkomsel", "0821": "telkomsel", "0822": "telkomsel",
	"0814": "indosat", "0815": "indosat", "0816": "indosat", "0855": "indosat", "0856": "indosat",
	"0817": "xl", "0818": "xl", "0819": "xl", "0859": "xl", "0877": "xl", "0878": "xl",
	"0838": "axis", "0831": "axis", "0832": "axis",
	"0881": "smartfren", "0882": "smartfren", "0883": "smartfren",
	"0895": "three", "0896": "three", "0897": "three", "0898": "three", "0899": "three",
}

// OperatorForPhone resolves the mobile operator from a phone number prefix.
// Returns "" when the prefix is unknown.
func OperatorForPhone(phone string) string {
	if len(phone) < 4 {
		return ""
	}
	return operatorPrefixes[phone[:4]]
}
