package config

// Config holds the render settings that are not part of a job description:
// where to write, how to encode and how much of the machine to use.
type Config struct {
	JobPath        string
	OutputVideo    string
	StoryboardPath string
	MetricsFile    string
	Preset         string
	Workers        int
	VideoEncoder   string
	Quality        int
	ShowStats      bool
	BuildVersion   string
}

// EncodeParams is what the encoder needs to open an output stream.
type EncodeParams struct {
	Width, Height int
	FPS           int
	Encoder       string
	Quality       int
}

// ApplyPreset overrides frame dimensions with a named aspect preset.
// Unknown or empty presets leave the dimensions untouched.
func ApplyPreset(preset string, width, height int) (int, int) {
	switch preset {
	case "16:9":
		return 1920, 1080
	case "9:16":
		return 1080, 1920
	case "4:5":
		return 1080, 1350
	case "1:1":
		return 1080, 1080
	}
	return width, height
}

// DefaultQuality picks a quality value that suits the encoder.
func DefaultQuality(encoder string) int {
	switch encoder {
	case "h264_videotoolbox":
		return 75
	case "h264_nvenc":
		return 28
	default:
		return 18
	}
}
