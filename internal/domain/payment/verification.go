// internal/domain/payment/verification.go
package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// VerificationOutcome is the oracle's answer for one verification call
type VerificationOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// VerificationPort is the authority that confirms a payment attempt.
// It is injectable so tests can force deterministic outcomes.
type VerificationPort interface {
	Verify(ctx context.Context, transactionID string) (VerificationOutcome, error)
}

// SimulatedVerifier is a SIMULATED verification oracle: there is no real
// payment network behind it. After a fixed delay it reports success with
// a fixed probability and "pending" otherwise. A production deployment
// would replace this port with a gateway integration.
type SimulatedVerifier struct {
	delay              time.Duration
	successProbability float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedVerifier creates the simulated oracle
func NewSimulatedVerifier(delay time.Duration, successProbability float64) *SimulatedVerifier {
	return &SimulatedVerifier{
		delay:              delay,
		successProbability: successProbability,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Verify waits out the simulated processing delay and flips the coin
func (v *SimulatedVerifier) Verify(ctx context.Context, transactionID string) (VerificationOutcome, error) {
	select {
	case <-ctx.Done():
		return VerificationOutcome{}, ctx.Err()
	case <-time.After(v.delay):
	}

	v.mu.Lock()
	success := v.rng.Float64() < v.successProbability
	v.mu.Unlock()

	if success {
		return VerificationOutcome{Success: true, Message: "Payment verified", Code: 200}, nil
	}
	return VerificationOutcome{Success: false, Message: "Payment verification pending", Code: 202}, nil
}
