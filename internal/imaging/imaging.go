// Package imaging shrinks uploaded photos into a small base64 data URL that
// can be inlined into a vision chat-completion request.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	maxEdge         = 512
	jpegQuality     = 75
	maxEncodedBytes = 180 * 1024
)

// NormalizeToDataURL decodes raw image bytes, downscales the image so neither
// edge exceeds maxEdge, re-encodes it as JPEG and returns a base64 data URL.
// Failures are swallowed: bad bytes or an oversized result yield "" and the
// caller proceeds without an image.
func NormalizeToDataURL(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		log.Printf("imaging: decode failed: %v", err)
		return ""
	}

	img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		log.Printf("imaging: encode failed: %v", err)
		return ""
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if len(encoded) > maxEncodedBytes {
		log.Printf("imaging: encoded image too large (%d bytes)", len(encoded))
		return ""
	}
	return "data:image/jpeg;base64," + encoded
}
