package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func TrackingPath(orderID string) string {
	return fmt.Sprintf("/order/%s/tracking", orderID)
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := strings.TrimRight(g.BaseURL, "/") + TrackingPath(orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
