package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://hortago.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://hortago.example")
	productID := time.Now().UnixMilli()

	qrBytes, err := service.GenerateProductQR(productID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProductQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://hortago.example")

			qrBytes, err := service.GenerateProductQR(1726000000000)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://hortago.example")

	t.Run("valid payload round trip", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			ProductID: "1726000000000",
			Type:      "product",
			URL:       "https://hortago.example/produits/1726000000000",
		})
		require.NoError(t, err)

		productID, err := service.ParseProductQR(string(payload))
		require.NoError(t, err)
		assert.Equal(t, int64(1726000000000), productID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := service.ParseProductQR("not json")
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			ProductID: "1726000000000",
			Type:      "subscription",
		})
		require.NoError(t, err)

		_, err = service.ParseProductQR(string(payload))
		assert.ErrorContains(t, err, "invalid QR code type")
	})

	t.Run("non numeric product ID", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			ProductID: "abc",
			Type:      "product",
		})
		require.NoError(t, err)

		_, err = service.ParseProductQR(string(payload))
		assert.Error(t, err)
	})

	t.Run("non positive product ID", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			ProductID: "0",
			Type:      "product",
		})
		require.NoError(t, err)

		_, err = service.ParseProductQR(string(payload))
		assert.ErrorContains(t, err, "invalid product ID")
	})
}
