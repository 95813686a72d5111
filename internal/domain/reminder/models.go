package reminder

import (
	"fmt"
	"time"
)

// Channel is the closed set of notification channels. Labels are part of the
// external contract and matched verbatim.
type Channel string

const (
	ChannelEmail Channel = "E-Mail"
	ChannelSMS   Channel = "SMS"
)

// ParseChannel maps a caller-supplied label onto a known channel. Anything
// else is an invalid-input failure, distinct from the domain error kinds.
func ParseChannel(label string) (Channel, error) {
	switch Channel(label) {
	case ChannelEmail, ChannelSMS:
		return Channel(label), nil
	}
	return "", NewError(KindInvalidInput, fmt.Sprintf("unrecognized channel %q", label))
}

// Request is the transient per-call input bundle. Nothing in it is persisted.
type Request struct {
	Consent bool
	Plate   string
	Contact string
	Channel Channel
}

// Result is the sole output of a successful registration.
type Result struct {
	Plate         string    `json:"plate"`
	RegionCode    string    `json:"region_code"`
	Today         time.Time `json:"today"`
	ExpiresAt     time.Time `json:"expires_at"`
	RemindAt      time.Time `json:"remind_at"`
	Channel       string    `json:"channel"`
	MaskedContact string    `json:"masked_contact"`
	NextStep      string    `json:"next_step"`
}
