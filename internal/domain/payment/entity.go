// internal/domain/payment/entity.go
package payment

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Status is the payment session lifecycle state
type Status string

// Payment status lifecycle:
// initial -> processing -> {pending, otp_sent} -> verifying ->
// {completed | failed | expired | cancelled}
const (
	StatusInitial    Status = "initial"
	StatusProcessing Status = "processing"
	StatusPending    Status = "pending"
	StatusOTPSent    Status = "otp_sent"
	StatusVerifying  Status = "verifying"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusExpired    Status = "expired"
	StatusCancelled  Status = "cancelled"
)

var statusMessages = map[Status]string{
	StatusInitial:    "Ready to process payment",
	StatusProcessing: "Processing your payment...",
	StatusPending:    "Payment is pending verification",
	StatusOTPSent:    "OTP sent, awaiting confirmation",
	StatusVerifying:  "Verifying payment details...",
	StatusCompleted:  "Payment completed successfully",
	StatusFailed:     "Payment failed. Please try again",
	StatusExpired:    "Payment session expired",
	StatusCancelled:  "Payment was cancelled",
}

// Message returns the display message for a status
func (s Status) Message() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return string(s)
}

// Terminal reports whether the status ends the attempt. The shopper may
// re-submit after failed/expired/cancelled, which produces a fresh
// transaction identifier and a new pass through the machine.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// Record is one entry in the payment history
type Record struct {
	ID            string    `json:"id"`
	Method        Method    `json:"method"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

// Session is one payment attempt's owned state. It is created on a valid
// submission and discarded when the attempt ends or a new one starts.
type Session struct {
	ID                   string
	ShopperID            string
	Method               Method
	Status               Status
	Amount               int64
	TransactionID        string
	Attempt              int
	VerificationAttempts int
	LastVerification     time.Time
	QRValue              string
	QRDeadline           time.Time

	cancelTimers   func()
	onComplete     func()
	completionSent bool
}

// SessionView is the externally visible snapshot of a payment session
type SessionView struct {
	ID                   string    `json:"id"`
	Method               Method    `json:"method"`
	Status               Status    `json:"status"`
	Message              string    `json:"message"`
	Amount               int64     `json:"amount"`
	TransactionID        string    `json:"transaction_id"`
	Attempt              int       `json:"attempt"`
	VerificationAttempts int       `json:"verification_attempts"`
	LastVerification     time.Time `json:"last_verification,omitempty"`
	QRValue              string    `json:"qr_value,omitempty"`
	QRSecondsLeft        int       `json:"qr_seconds_left,omitempty"`
}

// GenerateTransactionID builds a transaction identifier from a base36
// time prefix and a random suffix. Collisions are treated as negligible;
// uniqueness is not guaranteed.
func GenerateTransactionID(now time.Time) string {
	timestamp := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := randomBase36(5)
	return strings.ToUpper(fmt.Sprintf("TXN%s%s", timestamp, suffix))
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Chars[rand.Intn(len(base36Chars))]
	}
	return string(b)
}
