package templates

import (
	"fmt"
	"sort"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/timeline"
)

// List identifiers carried in timeline entries.
const (
	ListItems = "items"
	ListGood  = "good"
	ListBad   = "bad"
)

// Order values accepted in jobs.
const (
	OrderForward   = "forward"
	OrderCountdown = "countdown"
)

// Template defines the variant-specific parts of a listicle render
type Template interface {
	// GetName returns the template name used in job files
	GetName() string

	// GetDescription returns a one-line summary for listings
	GetDescription() string

	// HasScroll reports whether transitions include a scroll phase
	HasScroll() bool

	// GetDefaultScroll returns the scroll duration used when a job sets none
	GetDefaultScroll() float64

	// GetDefaultOrder returns forward or countdown
	GetDefaultOrder() string

	// BuildSequence turns the job's lists into display order, before any
	// countdown reversal
	BuildSequence(job *config.Job) (*timeline.Sequence, error)

	// NewLayout creates the overview layout for a sequence
	NewLayout(seq *timeline.Sequence, job *config.Job) (renderer.Layout, error)
}

var templates = make(map[string]Template)

// Register adds a template to the registry
func Register(t Template) {
	templates[t.GetName()] = t
}

// Get returns a template by name
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unsupported template: %s", name)
	}
	return t, nil
}

// Names returns the registered template names, sorted
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toAny(items []config.Item) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func buildSingle(job *config.Job) (*timeline.Sequence, error) {
	seq, err := timeline.BuildSingle(timeline.List{Label: ListItems, Items: toAny(job.Items)})
	if err != nil {
		return nil, fmt.Errorf("%s: no items: %w", job.Template, err)
	}
	return seq, nil
}
