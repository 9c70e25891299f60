package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"kitchenlink/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	StoreID string `json:"store_id"`
	URL     string `json:"url,omitempty"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateStoreShareQR generates a QR code image linking to a store profile
func (s *qrcodeService) GenerateStoreShareQR(storeID int64) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		StoreID: strconv.FormatInt(storeID, 10),
		Type:    "store_share",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/stores/%d", s.baseURL, storeID)
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStoreShareQR parses QR code data and returns the store ID
func (s *qrcodeService) ParseStoreShareQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "store_share" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse store ID
	storeID, err := strconv.ParseInt(data.StoreID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse store ID: %w", err)
	}

	return storeID, nil
}
