// Package qrcode renders merchant links as PNG QR codes.
package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"sitd/config"
	"sitd/internal/domain/service"
)

const (
	defaultSize    = 256
	merchantPrefix = "/merchants/"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
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

// GenerateMerchantQR encodes <baseUrl>/merchants/<id> as a PNG.
func (s *qrcodeService) GenerateMerchantQR(merchantID int64) ([]byte, error) {
	content := s.baseURL + merchantPrefix + strconv.FormatInt(merchantID, 10)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMerchantQR returns the merchant ID from a scanned merchant link.
func (s *qrcodeService) ParseMerchantQR(qrData string) (int64, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code URL")
	}

	idx := strings.LastIndex(parsed.Path, merchantPrefix)
	if idx < 0 {
		return 0, errors.Errorf("QR code does not point at a merchant: %s", qrData)
	}

	merchantID, err := strconv.ParseInt(parsed.Path[idx+len(merchantPrefix):], 10, 64)
	if err != nil || merchantID <= 0 {
		return 0, errors.Errorf("invalid merchant ID in QR code: %s", qrData)
	}

	return merchantID, nil
}
