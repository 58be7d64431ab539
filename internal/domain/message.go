// Package domain contains the core business entities and rules.
package domain

import "time"

// Platform identifies the messaging service a transcript was exported from.
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformFacebook Platform = "facebook"
)

// ParsePlatform maps a raw platform tag to a Platform.
// Returns ErrUnsupportedPlatform for anything else.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformWhatsApp, PlatformTelegram, PlatformFacebook:
		return Platform(s), nil
	default:
		return "", ErrUnsupportedPlatform
	}
}

// Message is a single parsed transcript entry. It is immutable once parsing
// completes; only continuation-line merging extends Text, and only inside the
// parser. Messages keep the order they appear in the source transcript, which
// is not guaranteed to be timestamp order.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
}
