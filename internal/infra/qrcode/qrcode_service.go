package qrcode

import (
	"encoding/json"
	"net/url"

	"expatmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const paymentQRType = "payment"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is the JSON encoded in a payment QR code. URL, when present,
// opens the payment page in the app.
type QRCodeData struct {
	Type          string `json:"type"`
	TransactionID string `json:"transaction_id"`
	ReferenceCode string `json:"reference_code"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	URL           string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GeneratePaymentQR renders the payment reference as a PNG
func (s *qrcodeService) GeneratePaymentQR(ref *service.PaymentReference) ([]byte, error) {
	if ref == nil || ref.ReferenceCode == "" {
		return nil, errors.New("payment reference is required")
	}

	data := QRCodeData{
		Type:          paymentQRType,
		TransactionID: ref.TransactionID.String(),
		ReferenceCode: ref.ReferenceCode,
		Amount:        ref.Amount.String(),
		Currency:      ref.Currency,
		URL:           s.paymentURL(ref),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR parses scanned QR content back into a payment reference
func (s *qrcodeService) ParsePaymentQR(qrData string) (*service.PaymentReference, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != paymentQRType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ReferenceCode == "" {
		return nil, errors.New("QR code has no reference code")
	}

	transactionID, err := uuid.Parse(data.TransactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse transaction ID")
	}

	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse amount")
	}

	return &service.PaymentReference{
		TransactionID: transactionID,
		ReferenceCode: data.ReferenceCode,
		Amount:        amount,
		Currency:      data.Currency,
	}, nil
}

func (s *qrcodeService) paymentURL(ref *service.PaymentReference) string {
	if s.baseURL == "" {
		return ""
	}

	u, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}
	u = u.JoinPath(ref.TransactionID.String())
	q := u.Query()
	q.Set("ref", ref.ReferenceCode)
	u.RawQuery = q.Encode()

	return u.String()
}
