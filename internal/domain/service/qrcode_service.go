package service

// QRCodeService defines the interface for stand QR codes: sellers print a code
// that buyers scan to open a product listing.
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code pointing at a product listing.
	GenerateProductQR(productID int64) ([]byte, error)

	// ParseProductQR parses scanned QR data and returns the product ID.
	ParseProductQR(qrData string) (int64, error)
}
