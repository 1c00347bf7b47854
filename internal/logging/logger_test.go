package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, New(false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, New(true).GetLevel())
}

func TestNewFields(t *testing.T) {
	l := New(false)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.WithField("job", "abc").Info("[*] started")
	l.Debug("hidden")

	assert.Contains(t, buf.String(), "job=abc")
	assert.Contains(t, buf.String(), "started")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Error("dropped")
	assert.NotNil(t, l.Out)
}
