package qrcode

import (
	"testing"

	"beautymap/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "medium", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "highest", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://beautymap.example/profile")

	qrBytes, err := service.GenerateProfileQR(42)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "plain base", baseURL: "https://beautymap.example/profile", want: "https://beautymap.example/profile/42"},
		{name: "trailing slash trimmed", baseURL: "https://beautymap.example/profile/", want: "https://beautymap.example/profile/42"},
		{name: "default base", baseURL: "", want: defaultBaseURL + "/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL).(*qrcodeService)

			assert.Equal(t, tt.want, service.ProfileURL(42))
		})
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	service := NewFromConfig(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
	assert.Equal(t, defaultBaseURL+"/7", service.ProfileURL(7))
}
