package qrcode

import (
	"bytes"
	"testing"

	"dailyfresh/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GenerateSkuShareQR(t *testing.T) {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
			BaseURL:              "https://shop.example.com",
		},
	}
	svc := NewQRCodeService(cfg)

	png, err := svc.GenerateSkuShareQR(uuid.New())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GenerateSkuShareQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := &config.Config{
				QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: level},
			}
			svc := NewQRCodeService(cfg)

			png, err := svc.GenerateSkuShareQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, png)
		})
	}
}
