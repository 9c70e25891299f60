package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStoreShareQR generates a QR code image linking to a store profile
	GenerateStoreShareQR(storeID int64) ([]byte, error)

	// ParseStoreShareQR parses QR code data and returns the store ID
	ParseStoreShareQR(qrData string) (int64, error)
}
