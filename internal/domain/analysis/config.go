package analysis

// Config tunes the analysis pipeline.
type Config struct {
	// MaxUploadBytes caps the decoded image payload. Zero applies the default.
	MaxUploadBytes int64
	// KeepCopies stores a downscaled copy of every analyzed photo.
	KeepCopies bool
}

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

func (c Config) maxUploadBytes() int64 {
	if c.MaxUploadBytes > 0 {
		return c.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}
