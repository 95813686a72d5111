package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"plate-reminder-service/internal/config"
	"plate-reminder-service/internal/domain/reminder"
	"plate-reminder-service/internal/mask"
	"plate-reminder-service/internal/plate"
	"plate-reminder-service/internal/token"
)

var smsPattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// channelSpec maps a channel onto its contact validator, the format hint used
// in error details, and the masking function. Adding a channel means adding a
// row here, not a branch in Register.
type channelSpec struct {
	expects string
	valid   func(string) bool
	mask    func(string) string
}

var channelSpecs = map[reminder.Channel]channelSpec{
	reminder.ChannelEmail: {
		expects: "an email address such as name@example.org",
		valid:   isEmailAddress,
		mask:    mask.Email,
	},
	reminder.ChannelSMS: {
		expects: "a phone number of 7 to 15 digits with optional leading +",
		valid:   smsPattern.MatchString,
		mask:    mask.Phone,
	},
}

func isEmailAddress(contact string) bool {
	addr, err := mail.ParseAddress(contact)
	return err == nil && addr.Address == contact
}

type ReminderService struct {
	districts      map[string]struct{}
	expiryDays     int
	leadDays       int
	confirmBaseURL string
	log            zerolog.Logger
}

func NewReminderService(cfg *config.Config, log zerolog.Logger) *ReminderService {
	districts := make(map[string]struct{}, len(cfg.Districts))
	for _, code := range cfg.Districts {
		districts[code] = struct{}{}
	}
	return &ReminderService{
		districts:      districts,
		expiryDays:     cfg.Reminder.ExpiryDays,
		leadDays:       cfg.Reminder.LeadDays,
		confirmBaseURL: cfg.Reminder.ConfirmBaseURL,
		log:            log,
	}
}

// Register runs the ordered policy checks and returns either a fully
// populated result or exactly one typed failure. The consent gate comes
// before plate parsing: without consent no plate or contact data is touched.
func (s *ReminderService) Register(req reminder.Request, now time.Time) (*reminder.Result, error) {
	if !req.Consent {
		s.log.Warn().Msg("registration refused: no consent")
		return nil, reminder.NewError(reminder.KindConsentDenied,
			"consent is required before any data is processed")
	}

	parsed, err := plate.Parse(req.Plate)
	if err != nil {
		return nil, reminder.NewError(reminder.KindMalformedPlate, err.Error())
	}

	if _, ok := s.districts[parsed.RegionCode]; !ok {
		return nil, reminder.NewError(reminder.KindUnknownDistrict,
			fmt.Sprintf("region code %q is not a known district", parsed.RegionCode))
	}

	spec, ok := channelSpecs[req.Channel]
	if !ok {
		return nil, reminder.NewError(reminder.KindInvalidInput,
			fmt.Sprintf("unrecognized channel %q", string(req.Channel)))
	}
	if !spec.valid(req.Contact) {
		return nil, reminder.NewError(reminder.KindContactMismatch,
			fmt.Sprintf("contact does not fit channel %s: expected %s", req.Channel, spec.expects))
	}

	expiresAt := now.AddDate(0, 0, s.expiryDays)
	remindAt := expiresAt.AddDate(0, 0, -s.leadDays)

	masked := spec.mask(req.Contact)

	nextStep, err := s.followUp(req.Channel, masked)
	if err != nil {
		return nil, fmt.Errorf("prepare follow-up: %w", err)
	}

	s.log.Info().
		Str("plate", parsed.Formatted).
		Str("region", parsed.RegionCode).
		Str("channel", string(req.Channel)).
		Str("contact", masked).
		Time("expires_at", expiresAt).
		Time("remind_at", remindAt).
		Msg("reminder registered")

	return &reminder.Result{
		Plate:         parsed.Formatted,
		RegionCode:    parsed.RegionCode,
		Today:         now,
		ExpiresAt:     expiresAt,
		RemindAt:      remindAt,
		Channel:       string(req.Channel),
		MaskedContact: masked,
		NextStep:      nextStep,
	}, nil
}

// followUp selects the double-opt-in action. Delivery is out of scope: the
// intended action is logged and described in the result, never executed.
func (s *ReminderService) followUp(channel reminder.Channel, masked string) (string, error) {
	switch channel {
	case reminder.ChannelEmail:
		tok := token.ConfirmationToken()
		s.log.Debug().Str("token", tok).Msg("issued confirmation token")
		s.log.Info().
			Str("contact", masked).
			Str("link", s.confirmBaseURL+"?token="+tok).
			Msg("double opt-in link pending")
		return fmt.Sprintf("confirmation link will be sent to %s", masked), nil
	case reminder.ChannelSMS:
		code, err := token.Code(6)
		if err != nil {
			return "", err
		}
		s.log.Debug().Str("code", code).Msg("issued confirmation code")
		s.log.Info().
			Str("contact", masked).
			Msg("double opt-in code pending")
		return fmt.Sprintf("confirmation code will be sent by SMS to %s", masked), nil
	}
	return "", fmt.Errorf("no follow-up action for channel %q", string(channel))
}
