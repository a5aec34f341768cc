// internal/services/thumbnail.go
package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/nfnt/resize"
)

const thumbnailDir = "thumbs"

func isResizable(contentType string) bool {
	return contentType == "image/png" || contentType == "image/jpeg"
}

// makeThumbnail scales the image to width, preserving aspect ratio, and
// re-encodes it as JPEG. Images already narrower than width keep their size.
func makeThumbnail(fileBytes []byte, width uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if uint(img.Bounds().Dx()) > width {
		img = resize.Resize(width, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// thumbnailKey maps "1700-coat.png" to "thumbs/1700-coat.jpg".
func thumbnailKey(filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	return path.Join(thumbnailDir, base+".jpg")
}
