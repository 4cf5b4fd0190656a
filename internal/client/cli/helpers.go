package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// encodeLogo reads an image file and encodes it as the data URI the invoice
// renderer embeds in the letterhead.
func encodeLogo(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read logo file: %w", err)
	}

	var mime string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	default:
		return "", fmt.Errorf("unsupported logo format %q, expected png, jpeg or gif", filepath.Ext(path))
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
