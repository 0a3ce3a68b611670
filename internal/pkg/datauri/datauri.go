package datauri

import (
	"encoding/base64"
	"strings"

	"giftsafer/internal/pkg/errs"
)

var ErrInvalidDataURI = errs.New("invalid data uri")

// Image holds a decoded "data:<mime>;base64,<payload>" image.
type Image struct {
	MIMEType string
	Data     []byte
}

// ParseImage decodes a base64 data URI and rejects non-image payloads.
func ParseImage(raw string) (Image, error) {
	if !strings.HasPrefix(raw, "data:") {
		return Image{}, ErrInvalidDataURI
	}

	meta, payload, found := strings.Cut(raw[len("data:"):], ",")
	if !found {
		return Image{}, ErrInvalidDataURI
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return Image{}, ErrInvalidDataURI
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return Image{}, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, ErrInvalidDataURI
	}
	if len(data) == 0 {
		return Image{}, ErrInvalidDataURI
	}

	return Image{MIMEType: mimeType, Data: data}, nil
}

// Ext returns a file extension for the image MIME subtype.
func (i Image) Ext() string {
	_, subtype, found := strings.Cut(i.MIMEType, "/")
	if !found || subtype == "" {
		return "bin"
	}
	if subtype == "jpeg" {
		return "jpg"
	}
	return subtype
}
