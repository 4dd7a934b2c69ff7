package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/config"
)

func newConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL}}
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(newConfig(256, "M", ""))

	qrBytes, err := svc.GenerateOrderQR(uuid.New(), "MV-2024-0042")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(newConfig(size, "M", ""))

		qrBytes, err := svc.GenerateOrderQR(uuid.New(), "MV-2024-0001")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(newConfig(256, "M", "https://motovibe.example"))
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Code: "MV-2024-0042", Type: orderTrackingType})
	require.NoError(t, err)

	got, err := svc.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, got)
}

func TestQRCodeService_ParseOrderQR_Errors(t *testing.T) {
	svc := NewQRCodeService(nil)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "MV-2024-0042"},
		{"wrong type", `{"order_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"bad id", `{"order_id":"nope","type":"order_tracking"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.data)
			assert.Error(t, err)
		})
	}
}
