package qrcode

import (
	"encoding/json"
	"testing"

	"mapic/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	png, err := svc.GenerateInviteQR(uuid.New(), "ana@example.com")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_ParseInvite(t *testing.T) {
	svc := NewQRCodeService(nil)

	raw, err := json.Marshal(InvitePayload{Type: inviteType, InviterID: uuid.NewString(), Email: "ana@example.com"})
	require.NoError(t, err)

	email, err := svc.ParseInvite(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestQRCodeService_ParseInvite_Rejects(t *testing.T) {
	svc := NewQRCodeService(nil)

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "hello"},
		{name: "wrong type", data: `{"type":"subscription","email":"a@b.c"}`},
		{name: "no email", data: `{"type":"friend_invite"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseInvite(tt.data)
			assert.Error(t, err)
		})
	}
}
