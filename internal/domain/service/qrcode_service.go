package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentReference is the payload encoded in payment QR codes.
type PaymentReference struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	ReferenceCode string          `json:"reference_code"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePaymentQR generates a PNG QR code for a cash or bank transfer payment
	GeneratePaymentQR(ref *PaymentReference) ([]byte, error)

	// ParsePaymentQR parses QR code data back into a payment reference
	ParsePaymentQR(qrData string) (*PaymentReference, error)
}
