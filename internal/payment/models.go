// Package payment accepts validated international payment submissions and
// hands them to the transaction store as Pending. Settlement and status
// transitions happen downstream; this core only validates, normalizes, and
// appends.
package payment

import "time"

// Status values a transaction can carry. This core only ever writes
// StatusPending; terminal states belong to the settlement pipeline.
const StatusPending = "Pending"

// Transaction is one accepted payment submission.
type Transaction struct {
	ID            string    `json:"transactionId"`
	RecipientName string    `json:"recipientName,omitempty"`
	PayeeAccount  string    `json:"payeeAccountNumber"`
	SwiftCode     string    `json:"swiftCode"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Memo          string    `json:"memo,omitempty"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
