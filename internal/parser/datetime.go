package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"chatscope/internal/domain"
)

// ampmRegex matches an optional trailing 12-hour marker on a time token.
var ampmRegex = regexp.MustCompile(`(?i)\s*([ap]m)\s*$`)

// ResolveDateTime disambiguates a platform-specific date/time token pair into
// a calendar instant. The instant carries no timezone of its own; it is built
// in the local reference, matching the transcript's implicit timezone.
// Malformed tokens yield domain.ErrInvalidDateTime, which callers treat as
// "skip this line".
func ResolveDateTime(dateToken, timeToken string, platform domain.Platform) (time.Time, error) {
	parts, err := splitDateParts(dateToken, platform)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day, err := resolveDate(parts)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, second, err := resolveTime(timeToken)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day = clampDate(year, month, day)

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local), nil
}

// splitDateParts normalizes platform separators to "/" and splits the token
// into exactly three components. WhatsApp and Facebook exports use "/", with
// WhatsApp additionally accepting "-"; Telegram uses ".".
func splitDateParts(dateToken string, platform domain.Platform) ([]string, error) {
	date := strings.TrimSpace(dateToken)
	date = strings.ReplaceAll(date, "-", "/")
	if platform == domain.PlatformTelegram {
		date = strings.ReplaceAll(date, ".", "/")
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return nil, domain.ErrInvalidDateTime
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

// resolveDate applies the ordering policies to the three numeric components.
func resolveDate(parts []string) (year, month, day int, err error) {
	p0, err0 := strconv.Atoi(parts[0])
	p1, err1 := strconv.Atoi(parts[1])
	p2, err2 := strconv.Atoi(parts[2])
	if err0 != nil || err1 != nil || err2 != nil {
		return 0, 0, 0, domain.ErrInvalidDateTime
	}

	switch {
	case len(parts[0]) == 4:
		year, month, day = resolveYearFirst(p0, p1, p2)
	case len(parts[2]) == 4:
		year, month, day = resolveYearLast(p0, p1, p2)
	default:
		year, month, day = resolveTwoDigit(p0, p1, p2)
	}
	return year, month, day, nil
}

// resolveYearFirst handles YYYY/MM/DD.
func resolveYearFirst(p0, p1, p2 int) (year, month, day int) {
	return p0, p1, p2
}

// resolveYearLast handles a trailing 4-digit year; the leading components are
// disambiguated between day-first and month-first.
func resolveYearLast(p0, p1, p2 int) (year, month, day int) {
	day, month = disambiguateDayMonth(p0, p1)
	return p2, month, day
}

// resolveTwoDigit handles dates where every component is two digits. A first
// component of 20 or more is read as a 2-digit year (YY/MM/DD); otherwise the
// trailing component is the year and the leading pair is disambiguated.
func resolveTwoDigit(p0, p1, p2 int) (year, month, day int) {
	if p0 >= 20 {
		return expandYear(p0), p1, p2
	}
	day, month = disambiguateDayMonth(p0, p1)
	return expandYear(p2), month, day
}

// disambiguateDayMonth decides which of two components is the day. A value
// above 12 cannot be a month; when neither exceeds 12 the pair defaults to
// day-first. The default is a policy choice, not a universal rule: a US-style
// MM/DD date with both components <= 12 is read day-first.
func disambiguateDayMonth(first, second int) (day, month int) {
	switch {
	case first > 12:
		return first, second
	case second > 12:
		return second, first
	default:
		return first, second
	}
}

// expandYear expands 2-digit years by adding 2000.
func expandYear(y int) int {
	if y < 100 {
		return y + 2000
	}
	return y
}

// clampDate moves out-of-range day/month values to the first valid value
// instead of failing. A deliberately permissive policy: it keeps the message
// stream moving at the cost of a distorted date. Overflowing values (month 13,
// day 32) roll over via time.Date normalization, mirroring the source data's
// original handling.
func clampDate(year, month, day int) (int, int, int) {
	if month < 1 {
		month = 1
	}
	if day < 1 {
		day = 1
	}
	return year, month, day
}

// resolveTime parses HH:MM or HH:MM:SS with an optional trailing am/pm marker.
func resolveTime(timeToken string) (hour, minute, second int, err error) {
	token := strings.TrimSpace(timeToken)

	var marker string
	if m := ampmRegex.FindStringSubmatch(token); m != nil {
		marker = strings.ToLower(m[1])
		token = token[:len(token)-len(m[0])]
	}

	parts := strings.Split(token, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, domain.ErrInvalidDateTime
	}

	hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil {
		return 0, 0, 0, domain.ErrInvalidDateTime
	}
	if len(parts) == 3 {
		second, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return 0, 0, 0, domain.ErrInvalidDateTime
		}
	}

	// 12-hour to 24-hour conversion.
	switch marker {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute, second, nil
}
