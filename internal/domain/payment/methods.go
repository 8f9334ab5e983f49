// internal/domain/payment/methods.go
package payment

import (
	"regexp"
	"strings"
)

// Method identifies a supported payment method
type Method string

const (
	MethodCard       Method = "card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "netbanking"
	MethodWallet     Method = "wallet"
	MethodQR         Method = "qr"
)

// ValidationErrors maps a field name to its error message. An empty map
// means the input passed validation.
type ValidationErrors map[string]string

// MethodDetails is the tagged payment method variant: each method
// carries its own field set and validates itself.
type MethodDetails interface {
	Method() Method
	Validate() ValidationErrors
}

// Banks that net banking submissions may select
var Banks = []string{"sbi", "hdfc", "icici", "axis"}

// WalletProviders that wallet submissions may select
var WalletProviders = []string{"paytm", "phonepe", "amazonpay", "mobikwik"}

var (
	digitsOnly   = regexp.MustCompile(`^\d+$`)
	expiryFormat = regexp.MustCompile(`^\d{2}/\d{2}$`)
	upiIDFormat  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z]{3,}$`)
	accountRange = regexp.MustCompile(`^\d{9,18}$`)
	ifscFormat   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	mobileFormat = regexp.MustCompile(`^\d{10}$`)
	otpFormat    = regexp.MustCompile(`^\d{6}$`)
)

// CardDetails carries credit/debit card fields
type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// Method returns the method tag
func (d CardDetails) Method() Method { return MethodCard }

// Validate checks the card fields
func (d CardDetails) Validate() ValidationErrors {
	errors := ValidationErrors{}

	number := strings.ReplaceAll(d.Number, " ", "")
	if len(number) != 16 || !digitsOnly.MatchString(number) {
		errors["cardNumber"] = "Please enter a valid 16-digit card number"
	}
	if strings.TrimSpace(d.Name) == "" {
		errors["cardName"] = "Please enter card holder name"
	}
	if !expiryFormat.MatchString(d.Expiry) {
		errors["expiry"] = "Please enter a valid expiry date (MM/YY)"
	}
	if len(d.CVV) != 3 || !digitsOnly.MatchString(d.CVV) {
		errors["cvv"] = "Please enter a valid 3-digit CVV"
	}

	return errors
}

// UPIDetails carries the shopper's UPI handle
type UPIDetails struct {
	UPIID string `json:"upi_id"`
}

// Method returns the method tag
func (d UPIDetails) Method() Method { return MethodUPI }

// Validate checks the UPI handle format
func (d UPIDetails) Validate() ValidationErrors {
	errors := ValidationErrors{}

	if !upiIDFormat.MatchString(d.UPIID) {
		errors["upiId"] = "Please enter a valid UPI ID"
	}

	return errors
}

// NetBankingDetails carries net banking fields
type NetBankingDetails struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
}

// Method returns the method tag
func (d NetBankingDetails) Method() Method { return MethodNetBanking }

// Validate checks the net banking fields
func (d NetBankingDetails) Validate() ValidationErrors {
	errors := ValidationErrors{}

	if !contains(Banks, d.Bank) {
		errors["bank"] = "Please select a bank"
	}
	if !accountRange.MatchString(d.AccountNumber) {
		errors["accountNumber"] = "Please enter a valid account number"
	}
	if !ifscFormat.MatchString(d.IFSC) {
		errors["ifsc"] = "Please enter a valid IFSC code"
	}

	return errors
}

// WalletDetails carries digital wallet fields
type WalletDetails struct {
	Provider     string `json:"provider"`
	MobileNumber string `json:"mobile_number"`
}

// Method returns the method tag
func (d WalletDetails) Method() Method { return MethodWallet }

// Validate checks the wallet fields
func (d WalletDetails) Validate() ValidationErrors {
	errors := ValidationErrors{}

	if !contains(WalletProviders, d.Provider) {
		errors["provider"] = "Please select a wallet provider"
	}
	if !mobileFormat.MatchString(d.MobileNumber) {
		errors["mobileNumber"] = "Please enter a valid 10-digit mobile number"
	}

	return errors
}

// QRDetails carries no fields; the shopper scans the generated code
type QRDetails struct{}

// Method returns the method tag
func (d QRDetails) Method() Method { return MethodQR }

// Validate always passes; there is nothing to fill in
func (d QRDetails) Validate() ValidationErrors {
	return ValidationErrors{}
}

// ValidateOTP checks a one-time password entered for a card payment
func ValidateOTP(otp string) ValidationErrors {
	errors := ValidationErrors{}

	if !otpFormat.MatchString(otp) {
		errors["otp"] = "Please enter a valid 6-digit OTP"
	}

	return errors
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
