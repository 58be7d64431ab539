package domain

import "errors"

var (
	// ErrInvalidDateTime is returned when a date or time token cannot be
	// resolved. The parser treats it as "skip this line".
	ErrInvalidDateTime = errors.New("unrecognized date or time token")

	// ErrEmptyTranscript is returned when parsing produced zero messages.
	ErrEmptyTranscript = errors.New("no analyzable content in transcript")

	// ErrUnsupportedPlatform is returned for an unrecognized platform tag.
	// Fatal for the whole call, raised before any line processing.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrFileNotFound is returned when the requested chat file does not exist.
	ErrFileNotFound = errors.New("chat file not found")

	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrInvalidFileType is returned when an upload is not a plain-text export.
	ErrInvalidFileType = errors.New("invalid file type, only .txt exports are accepted")

	// ErrRateLimited is returned when an IP exceeds the analysis rate limit.
	ErrRateLimited = errors.New("rate limit exceeded")
)
