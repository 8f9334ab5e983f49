// internal/domain/payment/service.go
package payment

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/smartcart-backend/internal/config"
)

// Service runs the payment state machine. One payment attempt is active
// per shopper at a time; re-submission discards the previous attempt and
// produces a fresh transaction identifier.
//
// Verification is delegated to a VerificationPort. The default wiring
// uses SimulatedVerifier: no real payment network is involved.
type Service struct {
	verifier VerificationPort
	config   *config.Config
	logger   *logrus.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	history  map[string][]Record
	attempts map[string]int
}

// NewService creates a new payment service
func NewService(verifier VerificationPort, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		verifier: verifier,
		config:   cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: make(map[string]*Session),
		history:  make(map[string][]Record),
		attempts: make(map[string]int),
	}
}

// Submit validates the method details and, when valid, starts a payment
// attempt. Validation failures leave the machine in its initial state
// and are returned as field-level messages.
//
// Card moves to otp_sent and awaits the OTP; QR enters its countdown and
// polling window; every other method goes straight to verification.
func (s *Service) Submit(shopperID string, amount int64, details MethodDetails, onComplete func()) (*SessionView, ValidationErrors, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("payment amount must be positive")
	}

	if errs := details.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Discard any previous attempt for this shopper
	if prev, ok := s.sessions[shopperID]; ok {
		s.stopTimers(prev)
	}

	s.attempts[shopperID]++
	now := s.now()

	sess := &Session{
		ID:            uuid.New().String(),
		ShopperID:     shopperID,
		Method:        details.Method(),
		Status:        StatusProcessing,
		Amount:        amount,
		TransactionID: GenerateTransactionID(now),
		Attempt:       s.attempts[shopperID],
		onComplete:    onComplete,
	}
	s.sessions[shopperID] = sess

	switch details.Method() {
	case MethodCard:
		sess.Status = StatusOTPSent
	case MethodQR:
		sess.Status = StatusPending
		sess.QRValue = s.upiPayload(sess.TransactionID, amount)
		sess.QRDeadline = now.Add(s.config.Payment.QRExpiry)
		s.startQRTimers(sess)
	default:
		sess.Status = StatusPending
		go s.verifyAttempt(sess)
	}

	s.logger.WithFields(logrus.Fields{
		"shopper_id":     shopperID,
		"method":         sess.Method,
		"transaction_id": sess.TransactionID,
		"amount":         amount,
	}).Info("Payment attempt started")

	return s.view(sess), nil, nil
}

// SubmitOTP confirms a card payment with the one-time password and
// triggers verification
func (s *Service) SubmitOTP(shopperID, otp string) (*SessionView, ValidationErrors, error) {
	if errs := ValidateOTP(otp); len(errs) > 0 {
		return nil, errs, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[shopperID]
	if !ok || sess.Status != StatusOTPSent {
		return nil, nil, fmt.Errorf("no card payment awaiting OTP")
	}

	sess.Status = StatusVerifying
	go s.verifyAttempt(sess)

	return s.view(sess), nil, nil
}

// Verify re-invokes verification for a pending attempt
func (s *Service) Verify(shopperID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[shopperID]
	if !ok {
		return nil, fmt.Errorf("no active payment session")
	}
	if sess.Status.Terminal() {
		return nil, fmt.Errorf("payment attempt already %s", sess.Status)
	}
	if sess.Status != StatusPending {
		return s.view(sess), nil
	}

	go s.verifyAttempt(sess)
	return s.view(sess), nil
}

// Cancel ends the active attempt. Timers stop and the QR code is cleared.
func (s *Service) Cancel(shopperID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[shopperID]
	if !ok {
		return nil, fmt.Errorf("no active payment session")
	}

	if !sess.Status.Terminal() {
		sess.Status = StatusCancelled
		sess.QRValue = ""
		s.stopTimers(sess)
	}

	return s.view(sess), nil
}

// Status returns the current payment session snapshot
func (s *Service) Status(shopperID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[shopperID]
	if !ok {
		return nil, fmt.Errorf("no active payment session")
	}

	return s.view(sess), nil
}

// QRValue returns the UPI payload for the shopper's active QR attempt
func (s *Service) QRValue(shopperID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[shopperID]
	if !ok || sess.QRValue == "" {
		return "", fmt.Errorf("no active QR payment session")
	}

	return sess.QRValue, nil
}

// History returns the shopper's payment history, oldest first
func (s *Service) History(shopperID string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, len(s.history[shopperID]))
	copy(records, s.history[shopperID])
	return records
}

// LastCompleted returns the most recent successful payment record
func (s *Service) LastCompleted(shopperID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.history[shopperID]
	if len(records) == 0 {
		return nil, fmt.Errorf("no completed payments for this session")
	}

	record := records[len(records)-1]
	return &record, nil
}

// Teardown cancels all live timers. Called on server shutdown.
func (s *Service) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		s.stopTimers(sess)
	}
}

// verifyAttempt runs one verification round trip against the oracle.
// Finished-but-stale callbacks check the attempt is still live before
// applying any effect.
func (s *Service) verifyAttempt(sess *Session) {
	s.mu.Lock()
	if !s.isCurrent(sess) || sess.Status.Terminal() {
		s.mu.Unlock()
		return
	}
	sess.Status = StatusVerifying
	transactionID := sess.TransactionID
	s.mu.Unlock()

	outcome, err := s.verifier.Verify(context.Background(), transactionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrent(sess) || sess.Status.Terminal() {
		return // attempt ended while the call was in flight
	}

	sess.VerificationAttempts++
	sess.LastVerification = s.now()

	if err != nil {
		sess.Status = StatusFailed
		sess.QRValue = ""
		s.stopTimers(sess)
		s.logger.WithError(err).WithField("transaction_id", transactionID).Error("Payment verification failed")
		return
	}

	if outcome.Success {
		s.complete(sess)
	} else {
		sess.Status = StatusPending
	}
}

// complete finalizes a successful attempt: history record, timer
// teardown, and the delayed completion callback. Caller holds the lock.
func (s *Service) complete(sess *Session) {
	sess.Status = StatusCompleted
	sess.QRValue = ""
	s.stopTimers(sess)

	s.history[sess.ShopperID] = append(s.history[sess.ShopperID], Record{
		ID:            uuid.New().String(),
		Method:        sess.Method,
		Amount:        sess.Amount,
		TransactionID: sess.TransactionID,
		Status:        "success",
		Timestamp:     s.now(),
	})

	s.logger.WithFields(logrus.Fields{
		"shopper_id":     sess.ShopperID,
		"transaction_id": sess.TransactionID,
	}).Info("Payment completed")

	if sess.onComplete != nil && !sess.completionSent {
		sess.completionSent = true
		callback := sess.onComplete
		time.AfterFunc(s.config.Payment.CompletionDelay, callback)
	}
}

// startQRTimers arms the expiry countdown and the verification poll for
// a QR attempt. Both are scoped to the attempt and cancelled whenever it
// ends, whatever the outcome. Caller holds the lock.
func (s *Service) startQRTimers(sess *Session) {
	ctx, cancel := context.WithCancel(context.Background())
	sess.cancelTimers = cancel

	expiry := s.config.Payment.QRExpiry
	pollInterval := s.config.Payment.QRPollInterval

	go func() {
		deadline := time.NewTimer(expiry)
		poll := time.NewTicker(pollInterval)
		defer deadline.Stop()
		defer poll.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-poll.C:
				s.verifyAttempt(sess)
			case <-deadline.C:
				s.expire(sess)
				return
			}
		}
	}()
}

// expire forces a QR attempt that outlived its countdown into the
// expired state and clears the code
func (s *Service) expire(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrent(sess) || sess.Status.Terminal() {
		return
	}

	sess.Status = StatusExpired
	sess.QRValue = ""
	s.stopTimers(sess)

	s.logger.WithFields(logrus.Fields{
		"shopper_id":     sess.ShopperID,
		"transaction_id": sess.TransactionID,
	}).Error("QR payment session expired before verification succeeded")
}

// stopTimers cancels the attempt's timers, if any. Caller holds the lock.
func (s *Service) stopTimers(sess *Session) {
	if sess.cancelTimers != nil {
		sess.cancelTimers()
		sess.cancelTimers = nil
	}
}

// isCurrent reports whether sess is still the shopper's live attempt.
// Caller holds the lock.
func (s *Service) isCurrent(sess *Session) bool {
	return s.sessions[sess.ShopperID] == sess
}

func (s *Service) view(sess *Session) *SessionView {
	view := &SessionView{
		ID:                   sess.ID,
		Method:               sess.Method,
		Status:               sess.Status,
		Message:              sess.Status.Message(),
		Amount:               sess.Amount,
		TransactionID:        sess.TransactionID,
		Attempt:              sess.Attempt,
		VerificationAttempts: sess.VerificationAttempts,
		LastVerification:     sess.LastVerification,
		QRValue:              sess.QRValue,
	}

	if sess.QRValue != "" {
		if left := sess.QRDeadline.Sub(s.now()); left > 0 {
			view.QRSecondsLeft = int(left.Seconds())
		}
	}

	return view
}

// upiPayload builds the upi://pay URI encoded into the QR code
func (s *Service) upiPayload(transactionID string, amount int64) string {
	params := url.Values{}
	params.Set("pa", s.config.Store.ReceiverUPIID)
	params.Set("pn", s.config.Store.Name)
	params.Set("am", strconv.FormatInt(amount, 10))
	params.Set("cu", s.config.Store.Currency)
	params.Set("tr", transactionID)
	params.Set("tn", fmt.Sprintf("Payment for Order %s", transactionID))
	return "upi://pay?" + params.Encode()
}
