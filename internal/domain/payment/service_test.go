// internal/domain/payment/service_test.go
package payment

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/smartcart-backend/internal/config"
)

// stubVerifier is a deterministic oracle with a switchable outcome
type stubVerifier struct {
	mu      sync.Mutex
	outcome VerificationOutcome
}

func (v *stubVerifier) set(outcome VerificationOutcome) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.outcome = outcome
}

func (v *stubVerifier) Verify(ctx context.Context, transactionID string) (VerificationOutcome, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.outcome, nil
}

func success() VerificationOutcome {
	return VerificationOutcome{Success: true, Message: "Payment verified", Code: 200}
}

func pending() VerificationOutcome {
	return VerificationOutcome{Success: false, Message: "Payment verification pending", Code: 202}
}

func paymentConfig() *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{
			VerifyDelay:        0,
			SuccessProbability: 1,
			QRExpiry:           150 * time.Millisecond,
			QRPollInterval:     25 * time.Millisecond,
			CompletionDelay:    time.Millisecond,
		},
		Store: config.StoreConfig{
			Name:          "Smart Cart Store",
			ReceiverUPIID: "store@okaxis",
			Currency:      "INR",
		},
	}
}

func newTestService(verifier VerificationPort) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(verifier, paymentConfig(), logger)
}

func validCard() CardDetails {
	return CardDetails{Number: "4111111111111111", Name: "A Shopper", Expiry: "12/27", CVV: "123"}
}

func statusIs(s *Service, shopperID string, want Status) func() bool {
	return func() bool {
		view, err := s.Status(shopperID)
		return err == nil && view.Status == want
	}
}

func TestSubmit_ValidationFailureKeepsMachineUntouched(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	view, errs, err := s.Submit("shopper", 100, CardDetails{Number: "bad"}, nil)
	require.NoError(t, err)
	assert.Nil(t, view)
	assert.Contains(t, errs, "cardNumber")

	// No session was created
	_, statusErr := s.Status("shopper")
	assert.Error(t, statusErr)
}

func TestSubmit_RejectsNonPositiveAmount(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	_, _, err := s.Submit("shopper", 0, validCard(), nil)
	assert.Error(t, err)
}

func TestCardFlow_OTPThenCompletion(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	completed := make(chan struct{})
	view, errs, err := s.Submit("shopper", 220, validCard(), func() { close(completed) })
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StatusOTPSent, view.Status)
	assert.Equal(t, "OTP sent, awaiting confirmation", view.Message)

	// Malformed OTP is a field error, the machine stays put
	_, otpErrs, err := s.SubmitOTP("shopper", "12ab")
	require.NoError(t, err)
	assert.Contains(t, otpErrs, "otp")
	current, err := s.Status("shopper")
	require.NoError(t, err)
	assert.Equal(t, StatusOTPSent, current.Status)

	_, otpErrs, err = s.SubmitOTP("shopper", "123456")
	require.NoError(t, err)
	require.Empty(t, otpErrs)

	assert.Eventually(t, statusIs(s, "shopper", StatusCompleted), time.Second, 5*time.Millisecond)

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("completion callback never fired")
	}

	records := s.History("shopper")
	require.Len(t, records, 1)
	assert.Equal(t, MethodCard, records[0].Method)
	assert.Equal(t, int64(220), records[0].Amount)
	assert.Equal(t, "success", records[0].Status)
	assert.Equal(t, view.TransactionID, records[0].TransactionID)
}

func TestSubmitOTP_RequiresCardAwaitingOTP(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	_, _, err := s.SubmitOTP("shopper", "123456")
	assert.Error(t, err)
}

func TestUPIFlow_PendingThenReverify(t *testing.T) {
	verifier := &stubVerifier{outcome: pending()}
	s := newTestService(verifier)

	view, errs, err := s.Submit("shopper", 100, UPIDetails{UPIID: "shopper@okaxis"}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, StatusPending, view.Status)

	// First verification round comes back pending
	assert.Eventually(t, func() bool {
		v, err := s.Status("shopper")
		return err == nil && v.Status == StatusPending && v.VerificationAttempts == 1
	}, time.Second, 5*time.Millisecond)

	// Re-invoking verification after the oracle turns positive completes
	verifier.set(success())
	_, err = s.Verify("shopper")
	require.NoError(t, err)

	assert.Eventually(t, statusIs(s, "shopper", StatusCompleted), time.Second, 5*time.Millisecond)
}

func TestUPIFlow_RejectsBadID(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	_, errs, err := s.Submit("shopper", 100, UPIDetails{UPIID: "bad id"}, nil)
	require.NoError(t, err)
	assert.Contains(t, errs, "upiId")
}

func TestQRFlow_PayloadAndCountdown(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: pending()})

	view, errs, err := s.Submit("shopper", 150, QRDetails{}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Equal(t, StatusPending, view.Status)
	assert.Contains(t, view.QRValue, "upi://pay?")
	assert.Contains(t, view.QRValue, "pa=store%40okaxis")
	assert.Contains(t, view.QRValue, "am=150")
	assert.Contains(t, view.QRValue, "cu=INR")
	assert.Contains(t, view.QRValue, view.TransactionID)

	value, err := s.QRValue("shopper")
	require.NoError(t, err)
	assert.Equal(t, view.QRValue, value)
}

func TestQRFlow_ExpiresWhenCountdownReachesZero(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: pending()})

	_, errs, err := s.Submit("shopper", 150, QRDetails{}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Eventually(t, statusIs(s, "shopper", StatusExpired), time.Second, 5*time.Millisecond)

	// The code is cleared and the attempt is over
	view, err := s.Status("shopper")
	require.NoError(t, err)
	assert.Empty(t, view.QRValue)

	_, err = s.QRValue("shopper")
	assert.Error(t, err)

	_, err = s.Verify("shopper")
	assert.Error(t, err)
}

func TestQRFlow_PollCompletesBeforeExpiry(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	completed := make(chan struct{})
	_, errs, err := s.Submit("shopper", 150, QRDetails{}, func() { close(completed) })
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Eventually(t, statusIs(s, "shopper", StatusCompleted), time.Second, 5*time.Millisecond)

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("completion callback never fired")
	}

	// Completion must stick: the expiry timer was cancelled
	time.Sleep(200 * time.Millisecond)
	view, err := s.Status("shopper")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, view.Status)
}

func TestCancel(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: pending()})

	_, errs, err := s.Submit("shopper", 100, WalletDetails{Provider: "paytm", MobileNumber: "9876543210"}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	view, err := s.Cancel("shopper")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, view.Status)

	// Cancelled is terminal for the attempt
	_, err = s.Verify("shopper")
	assert.Error(t, err)
}

func TestResubmissionProducesFreshTransaction(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: pending()})

	first, errs, err := s.Submit("shopper", 100, validCard(), nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	_, err = s.Cancel("shopper")
	require.NoError(t, err)

	second, errs, err := s.Submit("shopper", 100, validCard(), nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
	assert.Equal(t, first.Attempt+1, second.Attempt)
	assert.Equal(t, StatusOTPSent, second.Status)
}

func TestLastCompleted(t *testing.T) {
	s := newTestService(&stubVerifier{outcome: success()})

	_, err := s.LastCompleted("shopper")
	assert.Error(t, err)

	_, errs, err := s.Submit("shopper", 100, UPIDetails{UPIID: "shopper@okaxis"}, nil)
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Eventually(t, statusIs(s, "shopper", StatusCompleted), time.Second, 5*time.Millisecond)

	record, err := s.LastCompleted("shopper")
	require.NoError(t, err)
	assert.Equal(t, MethodUPI, record.Method)
}
