package qrcode

import (
	"testing"

	"marketplace/config"

	"github.com/google/uuid"
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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_StorefrontURL(t *testing.T) {
	vendorID := uuid.New()

	service := NewQRCodeService(256, "M", "https://shop.example.com/")
	assert.Equal(t, "https://shop.example.com/stores/"+vendorID.String(), service.StorefrontURL(vendorID))

	fallback := New(&config.Config{})
	assert.Equal(t, defaultBaseURL+"/stores/"+vendorID.String(), fallback.StorefrontURL(vendorID))
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")

	qrBytes, err := service.GenerateStorefrontQR(uuid.New())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStorefrontQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "H", "")

		qrBytes, err := service.GenerateStorefrontQR(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseStorefrontURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")
	vendorID := uuid.New()

	got, err := service.ParseStorefrontURL(service.StorefrontURL(vendorID))
	require.NoError(t, err)
	assert.Equal(t, vendorID, got)
}

func TestQRCodeService_ParseStorefrontURL_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		data string
	}{
		{"wrong path", "https://shop.example.com/products/" + uuid.NewString()},
		{"missing id", "https://shop.example.com/stores/"},
		{"nested path", "https://shop.example.com/stores/" + uuid.NewString() + "/x"},
		{"bad uuid", "https://shop.example.com/stores/not-a-uuid"},
		{"unparseable", "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseStorefrontURL(tt.data)
			assert.Error(t, err)
		})
	}
}
