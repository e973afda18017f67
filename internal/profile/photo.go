package profile

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// maxPhotoBytes caps the size of an image read from disk
const maxPhotoBytes = 10 << 20

// LoadPhoto reads an image file and encodes it as a data URL suitable
// for SetPhoto.
func LoadPhoto(path string) (string, error) {
	path = strings.TrimSpace(path)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}
	if info.Size() > maxPhotoBytes {
		return "", fmt.Errorf("photo is %d bytes, limit is %d", info.Size(), maxPhotoBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
