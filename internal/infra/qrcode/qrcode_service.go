// Package qrcode renders friend invite QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"mapic/config"
	"mapic/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	inviteType  = "friend_invite"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InvitePayload is the JSON encoded in an invite QR code. Link opens the app's
// add-friend screen; clients that scan in-app use Email directly.
type InvitePayload struct {
	Type      string `json:"type"`
	InviterID string `json:"inviter_id"`
	Email     string `json:"email"`
	Link      string `json:"link,omitempty"`
}

// NewQRCodeService reads the qrcode section; a missing section uses 256px and level M.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInviteQR renders the invite payload as a PNG.
func (s *qrcodeService) GenerateInviteQR(userID uuid.UUID, email string) ([]byte, error) {
	payload := InvitePayload{
		Type:      inviteType,
		InviterID: userID.String(),
		Email:     email,
	}
	if s.baseURL != "" {
		payload.Link = s.baseURL + "?" + url.Values{"email": {email}}.Encode()
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invite payload: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInvite returns the inviter's email from scanned content.
func (s *qrcodeService) ParseInvite(qrData string) (string, error) {
	var payload InvitePayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return "", fmt.Errorf("failed to unmarshal invite payload: %w", err)
	}

	if payload.Type != inviteType {
		return "", fmt.Errorf("invalid QR code type: %s", payload.Type)
	}

	if payload.Email == "" {
		return "", fmt.Errorf("invite has no email")
	}

	return payload.Email, nil
}
