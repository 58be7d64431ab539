// Package fixtures provides transcript test fixtures for testing the parser
// and the analysis pipeline.
package fixtures

// GenerateWhatsAppTranscript creates a small plain-header WhatsApp export
// with two senders, multiple days and a continuation line.
func GenerateWhatsAppTranscript() string {
	return `12/05/23, 09:15 - Alice: Good morning! 😊
12/05/23, 09:17 - Bob: morning, coffee first
12/05/23, 09:20 - Alice: this project is going great
and I really love the progress
13/05/23, 08:02 - Bob: new day, same coffee
13/05/23, 08:10 - Alice: haha 😄`
}

// GenerateWhatsAppBracketTranscript creates a bracket-header WhatsApp export
// with seconds in the timestamps.
func GenerateWhatsAppBracketTranscript() string {
	return `[12/05/23, 09:15:33] Alice: hello there
[12/05/23, 09:16:01] Bob: hey, all good?`
}

// GenerateTelegramTranscript creates a Telegram export using dotted dates.
func GenerateTelegramTranscript() string {
	return `12.05.2023 09:15 - Alice: telegram says hi
12.05.2023 09:18 - Bob: received loud and clear`
}

// GenerateFacebookTranscript creates a Facebook-style export.
func GenerateFacebookTranscript() string {
	return `12/05/2023, 09:15 - Alice: facebook format here
12/05/2023, 09:21 - Bob: looks right to me`
}

// GenerateNegativeTranscript creates a transcript with hostile tone for
// sentiment and chemistry tests.
func GenerateNegativeTranscript() string {
	return `12/05/23, 20:00 - Alice: this is terrible 😡
12/05/23, 20:05 - Bob: awful, I hate this problem
12/05/23, 20:10 - Alice: worst day, so angry 😤`
}

// GenerateNoiseTranscript creates content where no line matches any header
// grammar.
func GenerateNoiseTranscript() string {
	return `just some notes
no timestamps anywhere
definitely not an export`
}
