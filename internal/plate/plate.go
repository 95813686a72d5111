package plate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrLength  = errors.New("plate must be 3 to 8 characters after normalization")
	ErrPattern = errors.New("plate must be letters followed by digits, with optional trailing letters")
	ErrRegion  = errors.New("region code must be 1 or 2 letters")
)

var (
	shapePattern  = regexp.MustCompile(`^[A-Z]+[0-9]+[A-Z]*$`)
	regionPattern = regexp.MustCompile(`^[A-Z]+`)
)

// LicensePlate is an immutable value: the normalized plate text and its
// leading region code.
type LicensePlate struct {
	Formatted  string `json:"formatted"`
	RegionCode string `json:"region_code"`
}

// Normalize strips everything that is not an ASCII letter or digit and
// uppercases the rest, repairing spaces, hyphens and mixed case in one pass.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse normalizes raw plate text and extracts the region code. The region
// length limit is checked separately from the general shape: "XYZ123" has a
// valid shape but no valid 1-2 letter region.
func Parse(raw string) (LicensePlate, error) {
	normalized := Normalize(raw)

	if len(normalized) < 3 || len(normalized) > 8 {
		return LicensePlate{}, fmt.Errorf("%w: got %d", ErrLength, len(normalized))
	}
	if !shapePattern.MatchString(normalized) {
		return LicensePlate{}, fmt.Errorf("%w: %q", ErrPattern, normalized)
	}

	region := regionPattern.FindString(normalized)
	if len(region) > 2 {
		return LicensePlate{}, fmt.Errorf("%w: got %q", ErrRegion, region)
	}

	return LicensePlate{
		Formatted:  normalized,
		RegionCode: region,
	}, nil
}
