package images

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

const (
	// maxEdge is the longest side sent to the AI endpoint; larger
	// uploads only add latency and token cost, not accuracy.
	maxEdge = 2048

	jpegQuality = 85
)

// PrepareForUpload resizes the image so its longest side is at most
// maxEdge and re-encodes it as JPEG. It never fails: if the bytes can't
// be decoded or re-encoded the original data is returned unmodified
// with its sniffed MIME type.
func PrepareForUpload(data []byte) (payload []byte, mime string) {
	mime = SniffMime(data)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Failed to decode image, sending original bytes", "err", err)
		return data, mime
	}

	resized := scaleDown(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		slog.Warn("Failed to re-encode image, sending original bytes", "err", err)
		return data, mime
	}

	return buf.Bytes(), "image/jpeg"
}

// SniffMime detects the content type from magic bytes, falling back to
// JPEG when the type is unrecognized.
func SniffMime(data []byte) string {
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "image/jpeg"
	}
	return kind.MIME.Value
}

// Dimensions returns the pixel size of an encoded image, or zeros when
// it cannot be decoded.
func Dimensions(data []byte) (width, height int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func scaleDown(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
