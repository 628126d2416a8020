package products

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/h2non/filetype"
	"github.com/vincent-petithory/dataurl"
)

type payload struct {
	data      []byte
	mediaType string
}

// IsPayload reports whether url holds an inline data: payload rather than an address.
func IsPayload(url string) bool {
	return strings.HasPrefix(url, "data:")
}

// decodePayload parses a data: URL and verifies its bytes are an image no
// larger than maxSize. A maxSize of zero disables the size check.
func decodePayload(raw string, maxSize int64) (*payload, error) {
	du, err := dataurl.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed image payload: %v", ErrValidation, err)
	}

	if maxSize > 0 && int64(len(du.Data)) > maxSize {
		return nil, fmt.Errorf(
			"%w: image is %s, limit is %s",
			ErrValidation,
			units.HumanSize(float64(len(du.Data))),
			units.HumanSize(float64(maxSize)),
		)
	}

	kind, err := filetype.Match(du.Data)
	if err != nil || !filetype.IsImage(du.Data) {
		return nil, fmt.Errorf("%w: payload is not an image", ErrValidation)
	}

	return &payload{
		data:      du.Data,
		mediaType: kind.MIME.Value,
	}, nil
}
