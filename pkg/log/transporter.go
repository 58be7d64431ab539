package log

// Transporter defines the interface for log output destinations.
type Transporter interface {
	// Name returns the identifier for this transporter.
	Name() string

	// Write sends a log entry to the destination.
	Write(entry Entry) error

	// Close releases any resources held by the transporter.
	Close() error
}
