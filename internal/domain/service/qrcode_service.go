package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and parses friend invite QR codes.
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code that encodes an add-friend invite for userID.
	GenerateInviteQR(userID uuid.UUID, email string) ([]byte, error)

	// ParseInvite extracts the inviter's email from scanned QR content.
	ParseInvite(qrData string) (string, error)
}
