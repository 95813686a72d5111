package mask

import (
	"math"
	"strings"
)

const filler = "***"

// Email reveals a prefix of the local part proportional to its length
// (at least 1, at most 3 characters) and keeps the domain intact. Input
// without an @ gets the literal "unknown" domain.
func Email(addr string) string {
	local := addr
	domain := "unknown"
	if at := strings.Index(addr, "@"); at >= 0 {
		local = addr[:at]
		domain = addr[at+1:]
	}

	visible := int(math.Ceil(float64(len(local)) * 0.3))
	if visible < 1 {
		visible = 1
	}
	if visible > 3 {
		visible = 3
	}
	if visible > len(local) {
		visible = len(local)
	}

	return local[:visible] + filler + "@" + domain
}

// Phone keeps the first and last 3 characters of longer numbers; numbers of
// 6 characters or fewer reveal only the first 2.
func Phone(number string) string {
	if len(number) > 6 {
		return number[:3] + filler + number[len(number)-3:]
	}
	if len(number) <= 2 {
		return number + filler
	}
	return number[:2] + filler
}
