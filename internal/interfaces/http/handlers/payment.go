// internal/interfaces/http/handlers/payment.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/your-org/smartcart-backend/internal/domain/cart"
	"github.com/your-org/smartcart-backend/internal/domain/payment"
	"github.com/your-org/smartcart-backend/internal/interfaces/http/middleware"
	"github.com/your-org/smartcart-backend/internal/pkg/receipt"
)

const qrImageSize = 256

// PaymentHandler handles the checkout payment flow
type PaymentHandler struct {
	paymentService *payment.Service
	cartService    *cart.Service
	receiptService *receipt.Service
	logger         *logrus.Logger

	// cart snapshot per session, taken at submit time; the cart itself
	// is cleared when payment completes
	mu        sync.Mutex
	snapshots map[string][]cart.Line
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *payment.Service, cartService *cart.Service, receiptService *receipt.Service, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		cartService:    cartService,
		receiptService: receiptService,
		logger:         logger,
		snapshots:      make(map[string][]cart.Line),
	}
}

// SubmitRequest is the body for POST /payment/submit. Exactly one of the
// detail blocks matching the method must be present; qr needs none.
type SubmitRequest struct {
	Method     payment.Method             `json:"method" binding:"required"`
	Card       *payment.CardDetails       `json:"card"`
	UPI        *payment.UPIDetails        `json:"upi"`
	NetBanking *payment.NetBankingDetails `json:"netbanking"`
	Wallet     *payment.WalletDetails     `json:"wallet"`
}

// OTPRequest is the body for POST /payment/otp
type OTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

func (r *SubmitRequest) methodDetails() (payment.MethodDetails, error) {
	switch r.Method {
	case payment.MethodCard:
		if r.Card == nil {
			return nil, fmt.Errorf("card details are required")
		}
		return *r.Card, nil
	case payment.MethodUPI:
		if r.UPI == nil {
			return nil, fmt.Errorf("upi details are required")
		}
		return *r.UPI, nil
	case payment.MethodNetBanking:
		if r.NetBanking == nil {
			return nil, fmt.Errorf("netbanking details are required")
		}
		return *r.NetBanking, nil
	case payment.MethodWallet:
		if r.Wallet == nil {
			return nil, fmt.Errorf("wallet details are required")
		}
		return *r.Wallet, nil
	case payment.MethodQR:
		return payment.QRDetails{}, nil
	}
	return nil, fmt.Errorf("unsupported payment method: %s", r.Method)
}

// Submit handles POST /payment/submit
func (h *PaymentHandler) Submit(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	details, err := req.methodDetails()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.cartService.Snapshot(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	if snapshot.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	onComplete := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.cartService.Clear(ctx, sessionID); err != nil {
			h.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to clear cart after payment")
		}
	}

	view, validationErrs, err := h.paymentService.Submit(sessionID, snapshot.Total(), details, onComplete)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": validationErrs,
		})
		return
	}

	h.mu.Lock()
	h.snapshots[sessionID] = snapshot.Lines
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment submitted successfully",
		"data":    view,
	})
}

// SubmitOTP handles POST /payment/otp
func (h *PaymentHandler) SubmitOTP(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, validationErrs, err := h.paymentService.SubmitOTP(sessionID, req.OTP)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": validationErrs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP accepted, verifying payment",
		"data":    view,
	})
}

// Verify handles POST /payment/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	view, err := h.paymentService.Verify(sessionID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification requested",
		"data":    view,
	})
}

// Cancel handles POST /payment/cancel
func (h *PaymentHandler) Cancel(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	view, err := h.paymentService.Cancel(sessionID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment cancelled",
		"data":    view,
	})
}

// Status handles GET /payment/status
func (h *PaymentHandler) Status(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	view, err := h.paymentService.Status(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment status retrieved",
		"data":    view,
	})
}

// QRImage handles GET /payment/qr.png
func (h *PaymentHandler) QRImage(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	value, err := h.paymentService.QRValue(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	png, err := qrcode.Encode(value, qrcode.High, qrImageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Receipt handles GET /payment/receipt.pdf
func (h *PaymentHandler) Receipt(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	record, err := h.paymentService.LastCompleted(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	lines := h.snapshots[sessionID]
	h.mu.Unlock()

	buf, err := h.receiptService.Generate(record, lines)
	if err != nil {
		h.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to generate receipt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", record.TransactionID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// History handles GET /payment/history
func (h *PaymentHandler) History(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment history retrieved",
		"data":    h.paymentService.History(sessionID),
	})
}
