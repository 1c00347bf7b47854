package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/timeline"
)

func testJob(template string) *config.Job {
	job := &config.Job{
		Template: template,
		Items:    []config.Item{{Label: "a"}, {Label: "b"}, {Label: "c"}},
		Good:     []config.Item{{Label: "g1"}, {Label: "g2"}},
		Bad:      []config.Item{{Label: "b1"}},
	}
	job.ApplyDefaults()
	return job
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"listicle_goodbad", "listicle_grid_highlight", "listicle_scroll"}, Names())

	tests := []struct {
		name   string
		scroll bool
		s      float64
		order  string
	}{
		{"listicle_grid_highlight", false, 0, OrderForward},
		{"listicle_scroll", true, 0.4, OrderCountdown},
		{"listicle_goodbad", true, 0.3, OrderForward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Get(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, tpl.GetName())
			assert.Equal(t, tt.scroll, tpl.HasScroll())
			assert.Equal(t, tt.s, tpl.GetDefaultScroll())
			assert.Equal(t, tt.order, tpl.GetDefaultOrder())
			assert.NotEmpty(t, tpl.GetDescription())
		})
	}

	_, err := Get("listicle_carousel")
	assert.Error(t, err)
}

func TestSingleListSequence(t *testing.T) {
	tpl, err := Get("listicle_scroll")
	require.NoError(t, err)

	job := testJob(tpl.GetName())
	seq, err := tpl.BuildSequence(job)
	require.NoError(t, err)
	require.Equal(t, 3, seq.Len())
	assert.Equal(t, ListItems, seq.At(1).List)
	assert.Equal(t, "b", seq.At(1).Item.(config.Item).Label)

	layout, err := tpl.NewLayout(seq, job)
	require.NoError(t, err)
	assert.IsType(t, &renderer.StripLayout{}, layout)

	job.Items = nil
	_, err = tpl.BuildSequence(job)
	assert.True(t, errors.Is(err, timeline.ErrEmptySequence))
}

func TestGoodBadSequence(t *testing.T) {
	tpl, err := Get("listicle_goodbad")
	require.NoError(t, err)

	job := testJob(tpl.GetName())
	seq, err := tpl.BuildSequence(job)
	require.NoError(t, err)

	var got []string
	for _, e := range seq.Entries() {
		got = append(got, e.Item.(config.Item).Label)
	}
	assert.Equal(t, []string{"g1", "b1", "g2"}, got)

	layout, err := tpl.NewLayout(seq, job)
	require.NoError(t, err)
	bands := layout.Bands()
	require.Len(t, bands, 2)
	assert.Equal(t, config.DefaultGoodLabel, bands[0].Label)

	job.Good, job.Bad = nil, nil
	_, err = tpl.BuildSequence(job)
	assert.ErrorIs(t, err, timeline.ErrEmptySequence)
}

func TestGridLayout(t *testing.T) {
	tpl, err := Get("listicle_grid_highlight")
	require.NoError(t, err)

	job := testJob(tpl.GetName())
	seq, err := tpl.BuildSequence(job)
	require.NoError(t, err)
	layout, err := tpl.NewLayout(seq, job)
	require.NoError(t, err)
	assert.IsType(t, &renderer.GridLayout{}, layout)
	assert.Empty(t, layout.Bands())
}
