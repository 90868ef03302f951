package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The Wallet Service speaks plain JSON numbers for money, exactly as
	// entered, so decimals must not be quoted on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// User is a directory entry used for recipient selection.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// WalletSnapshot is a read-only balance projection. It is stale the moment
// it is fetched and must be re-fetched after every mutation, never computed
// locally.
type WalletSnapshot struct {
	ID       string          `json:"id,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency,omitempty"`
}

// Transaction statuses as reported by the Wallet Service.
const (
	StatusSuccess = "success"
	StatusPending = "pending"
	StatusFailed  = "failed"
)

// Transaction types.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

type Transaction struct {
	ID        string          `json:"id"`
	WalletID  string          `json:"walletId"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	ToUserID  string          `json:"toUserId,omitempty"`
	Status    string          `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionPage is one page of filtered transaction history.
type TransactionPage struct {
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Data  []Transaction `json:"data"`
}

// TransferReceipt is the server acknowledgment of a transfer.
type TransferReceipt struct {
	TransactionID string          `json:"transactionId"`
	Fee           decimal.Decimal `json:"fee"`
	TotalDeducted decimal.Decimal `json:"totalDeducted"`
}

// BusinessRules are server-enforced limits, fetched for display only;
// the client never pre-judges a transfer against them.
type BusinessRules struct {
	MaxTransferLimit decimal.Decimal `json:"maxTransferLimit"`
	FeePercentage    decimal.Decimal `json:"feePercentage"`
}

// Session is the result of a login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
