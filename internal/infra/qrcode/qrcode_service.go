package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
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
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateProductQR generates a PNG QR code pointing at a product listing.
// Sellers print the code on their stand; scanning opens the listing page.
func (s *qrcodeService) GenerateProductQR(productID int64) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		ProductID: strconv.FormatInt(productID, 10),
		Type:      "product",
		URL:       fmt.Sprintf("%s/produits/%d", s.baseURL, productID),
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

// ParseProductQR parses scanned QR data and returns the product ID
func (s *qrcodeService) ParseProductQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "product" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse product ID
	productID, err := strconv.ParseInt(data.ProductID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse product ID: %w", err)
	}
	if productID <= 0 {
		return 0, fmt.Errorf("invalid product ID: %d", productID)
	}

	return productID, nil
}
