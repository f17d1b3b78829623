package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMerchantQR returns a PNG QR code pointing at the merchant's public page.
	GenerateMerchantQR(merchantID int64) ([]byte, error)

	// ParseMerchantQR extracts the merchant ID from the encoded URL.
	ParseMerchantQR(qrData string) (int64, error)
}
