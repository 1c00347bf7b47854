package director

import "github.com/ivlev/motiongfx/internal/timeline"

// Storyboard is the human readable export of a Plan
type Storyboard struct {
	Version  string           `yaml:"version"`
	Template string           `yaml:"template"`
	Title    string           `yaml:"title,omitempty"`
	Order    string           `yaml:"order"`
	Overflow string           `yaml:"overflow"`
	FPS      int              `yaml:"fps"`
	Frames   int              `yaml:"frames"`
	Duration float64          `yaml:"duration"`          // Rendered seconds
	Hold     float64          `yaml:"hold,omitempty"`    // Per item hold; absent for explicit timings
	Clamped  bool             `yaml:"clamped,omitempty"` // Minimum hold stretched the timeline
	Timing   timeline.Config  `yaml:"timing"`
	Items    []StoryboardItem `yaml:"items"`
	Notes    []string         `yaml:"notes,omitempty"`
}

// StoryboardItem is one display position with its phase table
type StoryboardItem struct {
	Display int                 `yaml:"display"`
	List    string              `yaml:"list"`
	Number  int                 `yaml:"number"` // 1-based rank in its list
	Label   string              `yaml:"label,omitempty"`
	Phases  timeline.Boundaries `yaml:"phases"`
}

// NewStoryboard describes a plan
func NewStoryboard(p *Plan) *Storyboard {
	tl := p.Timeline
	sb := &Storyboard{
		Version:  "1.0",
		Template: p.Template.GetName(),
		Title:    p.Job.Title,
		Order:    p.Order,
		Overflow: string(p.Overflow),
		FPS:      p.Job.FPS,
		Frames:   p.Frames,
		Duration: p.Duration(),
		Clamped:  tl.Clamped(),
		Timing:   tl.Config(),
		Notes:    p.Notes,
	}
	if h := tl.Hold(); h > 0 {
		sb.Hold = h
	}

	for i, e := range p.Sequence.Entries() {
		sb.Items = append(sb.Items, StoryboardItem{
			Display: i,
			List:    e.List,
			Number:  e.SourceIndex + 1,
			Label:   Item(e).Label,
			Phases:  tl.Boundaries(i),
		})
	}
	return sb
}
