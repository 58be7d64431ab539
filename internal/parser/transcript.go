// Package parser turns raw exported chat text into ordered domain messages.
package parser

import (
	"regexp"
	"strings"

	"chatscope/internal/domain"
)

// Message-header grammars per platform. A header line carries a date token,
// a time token, a sender (any run without ":") and a colon-delimited body.
var (
	whatsappPlainHeader = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s(\d{1,2}:\d{2})\s-\s([^:]+):\s(.+)$`)

	// WhatsApp bracketed variant with seconds precision.
	whatsappBracketHeader = regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s(\d{1,2}:\d{2}:\d{2})\]\s([^:]+):\s(.+)$`)

	telegramHeader = regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.\d{2,4}),?\s(\d{1,2}:\d{2})\s-\s([^:]+):\s(.+)$`)

	// Facebook exports share the WhatsApp plain shape.
	facebookHeader = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),?\s(\d{1,2}:\d{2})\s-\s([^:]+):\s(.+)$`)
)

var headerGrammars = map[domain.Platform][]*regexp.Regexp{
	domain.PlatformWhatsApp: {whatsappPlainHeader, whatsappBracketHeader},
	domain.PlatformTelegram: {telegramHeader},
	domain.PlatformFacebook: {facebookHeader},
}

// parseState tracks the two-state line machine.
type parseState int

const (
	awaitingHeader parseState = iota
	inMessage
)

// Parse splits raw transcript text into discrete messages. Stateless per
// call. Lines that match a header grammar start a new message; lines that
// don't, once a message exists, are continuation text and are merged into the
// previous message's body with a newline. Header lines whose date or time
// cannot be resolved are silently dropped, as are leading lines before the
// first message.
func Parse(content string, platform domain.Platform) ([]domain.Message, error) {
	grammars, ok := headerGrammars[platform]
	if !ok {
		return nil, domain.ErrUnsupportedPlatform
	}

	var messages []domain.Message
	state := awaitingHeader

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		match := matchHeader(grammars, line)
		if match == nil {
			if state == inMessage {
				messages[len(messages)-1].Text += "\n" + line
			}
			continue
		}

		ts, err := ResolveDateTime(match[1], match[2], platform)
		if err != nil {
			// Unresolvable header line: drop it, keep going. The state is
			// left alone so a following continuation line still attaches to
			// the previous message.
			continue
		}

		messages = append(messages, domain.Message{
			Timestamp: ts,
			Sender:    strings.TrimSpace(match[3]),
			Text:      strings.TrimSpace(match[4]),
		})
		state = inMessage
	}

	return messages, nil
}

// matchHeader tries each grammar in order and returns the first submatch.
func matchHeader(grammars []*regexp.Regexp, line string) []string {
	for _, re := range grammars {
		if m := re.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}
