// internal/domain/payment/methods_test.go
package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCardDetailsValidate(t *testing.T) {
	tests := []struct {
		name    string
		details CardDetails
		fields  []string
	}{
		{
			name:    "valid card",
			details: CardDetails{Number: "4111 1111 1111 1111", Name: "A Shopper", Expiry: "12/27", CVV: "123"},
		},
		{
			name:    "short number",
			details: CardDetails{Number: "4111", Name: "A Shopper", Expiry: "12/27", CVV: "123"},
			fields:  []string{"cardNumber"},
		},
		{
			name:    "letters in number",
			details: CardDetails{Number: "4111abcd11111111", Name: "A Shopper", Expiry: "12/27", CVV: "123"},
			fields:  []string{"cardNumber"},
		},
		{
			name:    "blank name",
			details: CardDetails{Number: "4111111111111111", Name: "   ", Expiry: "12/27", CVV: "123"},
			fields:  []string{"cardName"},
		},
		{
			name:    "bad expiry",
			details: CardDetails{Number: "4111111111111111", Name: "A Shopper", Expiry: "2027-12", CVV: "123"},
			fields:  []string{"expiry"},
		},
		{
			name:    "bad cvv",
			details: CardDetails{Number: "4111111111111111", Name: "A Shopper", Expiry: "12/27", CVV: "12"},
			fields:  []string{"cvv"},
		},
		{
			name:    "everything wrong",
			details: CardDetails{},
			fields:  []string{"cardNumber", "cardName", "expiry", "cvv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.details.Validate()
			assert.Len(t, errs, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestUPIDetailsValidate(t *testing.T) {
	tests := []struct {
		upiID string
		valid bool
	}{
		{"shopper@okaxis", true},
		{"a.b-c_1@ybl", true},
		{"bad id", false},
		{"nosuffix", false},
		{"shopper@ok", false},  // suffix too short
		{"shopper@ok1", false}, // digits not allowed in suffix
		{"@okaxis", false},
	}

	for _, tt := range tests {
		t.Run(tt.upiID, func(t *testing.T) {
			errs := UPIDetails{UPIID: tt.upiID}.Validate()
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, "upiId")
			}
		})
	}
}

func TestNetBankingDetailsValidate(t *testing.T) {
	valid := NetBankingDetails{Bank: "hdfc", AccountNumber: "123456789", IFSC: "HDFC0001234"}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name    string
		details NetBankingDetails
		field   string
	}{
		{
			name:    "unknown bank",
			details: NetBankingDetails{Bank: "monopoly", AccountNumber: "123456789", IFSC: "HDFC0001234"},
			field:   "bank",
		},
		{
			name:    "account too short",
			details: NetBankingDetails{Bank: "sbi", AccountNumber: "12345678", IFSC: "SBIN0001234"},
			field:   "accountNumber",
		},
		{
			name:    "account too long",
			details: NetBankingDetails{Bank: "sbi", AccountNumber: strings.Repeat("1", 19), IFSC: "SBIN0001234"},
			field:   "accountNumber",
		},
		{
			name:    "ifsc missing zero",
			details: NetBankingDetails{Bank: "sbi", AccountNumber: "123456789", IFSC: "SBIN1001234"},
			field:   "ifsc",
		},
		{
			name:    "lowercase ifsc",
			details: NetBankingDetails{Bank: "sbi", AccountNumber: "123456789", IFSC: "sbin0001234"},
			field:   "ifsc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.details.Validate(), tt.field)
		})
	}
}

func TestWalletDetailsValidate(t *testing.T) {
	valid := WalletDetails{Provider: "paytm", MobileNumber: "9876543210"}
	assert.Empty(t, valid.Validate())

	assert.Contains(t, WalletDetails{Provider: "cashapp", MobileNumber: "9876543210"}.Validate(), "provider")
	assert.Contains(t, WalletDetails{Provider: "phonepe", MobileNumber: "98765"}.Validate(), "mobileNumber")
	assert.Contains(t, WalletDetails{Provider: "phonepe", MobileNumber: "98765432101"}.Validate(), "mobileNumber")
}

func TestQRDetailsValidate(t *testing.T) {
	assert.Empty(t, QRDetails{}.Validate())
}

func TestValidateOTP(t *testing.T) {
	assert.Empty(t, ValidateOTP("123456"))
	assert.Contains(t, ValidateOTP("12345"), "otp")
	assert.Contains(t, ValidateOTP("1234567"), "otp")
	assert.Contains(t, ValidateOTP("abc123"), "otp")
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID(time.Now().UTC())

	assert.True(t, strings.HasPrefix(id, "TXN"))
	assert.Equal(t, strings.ToUpper(id), id)
	// base36 millis prefix plus 5 random chars
	assert.Greater(t, len(id), 12)

	other := GenerateTransactionID(time.Now().UTC())
	assert.NotEqual(t, id, other)
}
