package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/motiongfx/internal/validate"
)

const (
	DefaultDuration    = 12.0
	DefaultZoom        = 0.5
	DefaultMinimumHold = 0.5
	DefaultFPS         = 30
	DefaultWidth       = 1920
	DefaultHeight      = 1080

	DefaultGoodColor = "#44cc88"
	DefaultBadColor  = "#ff4444"
	DefaultGoodLabel = "GOOD"
	DefaultBadLabel  = "BAD"
)

// Item is one listicle entry. The timeline never looks inside it.
type Item struct {
	Label         string   `yaml:"label"`
	Color         string   `yaml:"color" validate:"omitempty,hexcolor"`
	ThumbnailPath string   `yaml:"thumbnail_path"`
	StartTime     *float64 `yaml:"start_time" validate:"omitempty,gte=0"`
	EndTime       *float64 `yaml:"end_time" validate:"omitempty,gte=0"`
}

// HasTiming reports whether the item carries an explicit interval.
func (it Item) HasTiming() bool {
	return it.StartTime != nil && it.EndTime != nil
}

// Job is a template render request, read from JSON or YAML.
type Job struct {
	Template string `yaml:"template" validate:"required"`
	Title    string `yaml:"title"`
	Source   string `yaml:"source"`

	Items []Item `yaml:"items" validate:"dive"`
	Good  []Item `yaml:"good" validate:"dive"`
	Bad   []Item `yaml:"bad" validate:"dive"`

	GoodColor string `yaml:"good_color" validate:"omitempty,hexcolor"`
	BadColor  string `yaml:"bad_color" validate:"omitempty,hexcolor"`
	GoodLabel string `yaml:"good_label"`
	BadLabel  string `yaml:"bad_label"`

	Duration       float64  `yaml:"duration" validate:"gt=0"`
	ZoomDuration   float64  `yaml:"zoom_duration" validate:"gt=0"`
	ScrollDuration *float64 `yaml:"scroll_duration" validate:"omitempty,gte=0"`
	MinimumHold    float64  `yaml:"minimum_hold" validate:"gt=0"`

	FPS    int `yaml:"fps" validate:"gt=0,lte=240"`
	Width  int `yaml:"width" validate:"gte=16"`
	Height int `yaml:"height" validate:"gte=16"`

	Overflow  string `yaml:"overflow" validate:"omitempty,oneof=extend truncate strict"`
	Order     string `yaml:"order" validate:"omitempty,oneof=forward countdown"`
	SmartCrop bool   `yaml:"smart_crop"`

	Theme map[string]any `yaml:"theme"`
}

// ApplyDefaults fills every unset numeric field with the template defaults
// that do not depend on the template itself.
func (j *Job) ApplyDefaults() {
	if j.Duration == 0 {
		j.Duration = DefaultDuration
	}
	if j.ZoomDuration == 0 {
		j.ZoomDuration = DefaultZoom
	}
	if j.MinimumHold == 0 {
		j.MinimumHold = DefaultMinimumHold
	}
	if j.FPS == 0 {
		j.FPS = DefaultFPS
	}
	if j.Width == 0 {
		j.Width = DefaultWidth
	}
	if j.Height == 0 {
		j.Height = DefaultHeight
	}
	if j.GoodColor == "" {
		j.GoodColor = DefaultGoodColor
	}
	if j.BadColor == "" {
		j.BadColor = DefaultBadColor
	}
	if j.GoodLabel == "" {
		j.GoodLabel = DefaultGoodLabel
	}
	if j.BadLabel == "" {
		j.BadLabel = DefaultBadLabel
	}
}

// Validate checks struct constraints and that the frame size is encodable
// as yuv420p.
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}
	if j.Width%2 != 0 || j.Height%2 != 0 {
		return fmt.Errorf("invalid job: frame size %dx%d must be even", j.Width, j.Height)
	}
	if _, err := DecodeTheme(j.Theme); err != nil {
		return fmt.Errorf("invalid job: %w", err)
	}
	return nil
}

// ParseJob decodes a job document. JSON is accepted as a subset of YAML.
func ParseJob(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrap(err, "failed to decode job")
	}
	job.ApplyDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// ReadJob reads and validates a job file.
func ReadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read job %s", path)
	}
	return ParseJob(data)
}
