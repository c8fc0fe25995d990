package inventory

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// canonicalID parses a spot or booking id and returns its lower-case hyphenated
// form, so every spelling of one id shares a lock. A malformed id cannot name a
// stored row and is reported as not found.
func canonicalID(raw, what string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %s %s %q", domain.ErrNotFound, ErrMsgMalformedID, what, raw)
	}
	return id.String(), nil
}

// normalizeName trims and NFC-normalises a spot name so visually identical names compare equal
func normalizeName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if utf8.RuneCountInString(n) > domain.MaxSpotNameLength {
		return "", fmt.Errorf("%w: "+ErrMsgNameTooLongFmt, domain.ErrInvalidInput, domain.MaxSpotNameLength)
	}
	if strings.IndexFunc(n, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameControlChars)
	}
	return n, nil
}

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < domain.MinLatitude || lat > domain.MaxLatitude {
		return fmt.Errorf("%w: "+ErrMsgLatitudeRangeFmt, domain.ErrInvalidInput, lat, domain.MinLatitude, domain.MaxLatitude)
	}
	if math.IsNaN(lng) || lng < domain.MinLongitude || lng > domain.MaxLongitude {
		return fmt.Errorf("%w: "+ErrMsgLongitudeRangeFmt, domain.ErrInvalidInput, lng, domain.MinLongitude, domain.MaxLongitude)
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < 0 || capacity > domain.MaxSpotCapacity {
		return fmt.Errorf("%w: "+ErrMsgCapacityRangeFmt, domain.ErrInvalidInput, capacity, domain.MaxSpotCapacity)
	}
	return nil
}
