package director

import (
	"fmt"
	"path/filepath"
	"time"
)

// StoryboardDir is where storyboards go when no path is given
var StoryboardDir = filepath.Join("output", "storyboards")

// GenerateStoryboardPath creates a timestamped storyboard filename
func GenerateStoryboardPath(template string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(StoryboardDir, fmt.Sprintf("%s_%s.yaml", template, timestamp))
}
