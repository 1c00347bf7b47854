package director

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalStoryboard encodes a storyboard as YAML
func MarshalStoryboard(sb *Storyboard) ([]byte, error) {
	data, err := yaml.Marshal(sb)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode storyboard")
	}
	return data, nil
}

// WriteStoryboard writes a storyboard to a YAML file
func WriteStoryboard(sb *Storyboard, path string) error {
	data, err := MarshalStoryboard(sb)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, data, 0644))
}

// ReadStoryboard reads a storyboard from a YAML file
func ReadStoryboard(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, errors.Wrapf(err, "failed to decode storyboard %s", path)
	}
	return &sb, nil
}
