package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renders the given payload as a 256px PNG under
// public/qrcodes.
func GenerateQRCode(data string, filename string) error {
	filePath := fmt.Sprintf("public/qrcodes/%s.png", filename)
	err := qrcode.WriteFile(data, qrcode.Medium, 256, filePath)
	if err != nil {
		return err
	}
	return nil
}
