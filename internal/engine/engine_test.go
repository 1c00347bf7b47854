package engine

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/director"
	"github.com/ivlev/motiongfx/internal/logging"
	"github.com/ivlev/motiongfx/internal/timeline"
	"github.com/ivlev/motiongfx/internal/video"
)

type fakeSink struct {
	mu       sync.Mutex
	frames   int
	size     image.Point
	failAt   int
	closed   bool
	firstPix []byte
}

func (s *fakeSink) WriteFrame(img *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAt > 0 && s.frames == s.failAt {
		return errors.New("pipe closed")
	}
	if s.frames == 0 {
		s.firstPix = append([]byte(nil), img.Pix...)
	}
	s.size = img.Rect.Size()
	s.frames++
	return nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

type fakeEncoder struct {
	sink    *fakeSink
	params  config.EncodeParams
	openErr error
}

func (e *fakeEncoder) Open(_ context.Context, _ string, params config.EncodeParams) (video.FrameSink, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	e.params = params
	return e.sink, nil
}

func testProject(t *testing.T, enc video.VideoEncoder) *Project {
	t.Helper()
	job, err := config.ParseJob([]byte(`{
		"template": "listicle_scroll",
		"title": "Top 3",
		"source": "https://example.com",
		"width": 160, "height": 90, "fps": 5,
		"duration": 6, "zoom_duration": 0.3, "minimum_hold": 0.2,
		"items": [{"label": "one"}, {"label": "two"}, {"label": "three"}]
	}`))
	require.NoError(t, err)

	plan, err := director.BuildPlan(job)
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{
		OutputVideo:  filepath.Join(dir, "out", "video.mp4"),
		MetricsFile:  filepath.Join(dir, "motiongfx.prom"),
		Workers:      2,
		VideoEncoder: "libx264",
		Quality:      18,
	}
	p := NewProject(cfg, plan, enc, logging.NewNop())
	p.Probe = nil
	return p
}

func TestRunWritesEveryFrame(t *testing.T) {
	enc := &fakeEncoder{sink: &fakeSink{}}
	p := testProject(t, enc)
	p.Probe = func(string) (*video.Info, error) {
		return &video.Info{Width: 160, Height: 90, Frames: 30}, nil
	}

	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, rep.Frames)
	assert.Equal(t, 30, enc.sink.frames)
	assert.Equal(t, image.Pt(160, 90), enc.sink.size)
	assert.True(t, enc.sink.closed)
	assert.Equal(t, config.EncodeParams{Width: 160, Height: 90, FPS: 5, Encoder: "libx264", Quality: 18}, enc.params)
	assert.NotEmpty(t, rep.JobID)
	require.NotNil(t, rep.Output)

	sum := 0
	for _, n := range rep.PhaseCount {
		sum += n
	}
	assert.Equal(t, 30, sum)
	assert.Positive(t, rep.PhaseCount[timeline.PhaseScroll])

	assert.Equal(t, 30.0, testutil.ToFloat64(p.Metrics.framesRendered))
	assert.Equal(t, float64(rep.PhaseCount[timeline.PhaseHold]),
		testutil.ToFloat64(p.Metrics.phaseFrames.WithLabelValues(timeline.PhaseHold.String())))

	data, err := os.ReadFile(p.Config.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "motiongfx_frames_rendered_total")

	_, err = os.Stat(filepath.Dir(p.Config.OutputVideo))
	assert.NoError(t, err, "output directory is created")
}

func TestRunFramesAreOrdered(t *testing.T) {
	enc := &fakeEncoder{sink: &fakeSink{}}
	p := testProject(t, enc)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	comp, err := p.buildCompositor(context.Background(), logging.NewNop())
	require.NoError(t, err)
	first := image.NewRGBA(comp.Bounds())
	comp.Render(first, 0)
	assert.Equal(t, first.Pix, enc.sink.firstPix)
}

func TestRunEncoderOpenFails(t *testing.T) {
	p := testProject(t, &fakeEncoder{openErr: errors.New("no ffmpeg")})
	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ffmpeg")
}

func TestRunWriteFailureStops(t *testing.T) {
	enc := &fakeEncoder{sink: &fakeSink{failAt: 5}}
	p := testProject(t, enc)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 5, enc.sink.frames)
	assert.True(t, enc.sink.closed)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enc := &fakeEncoder{sink: &fakeSink{}}
	p := testProject(t, enc)
	_, err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, enc.sink.frames)
}

func TestBadgeSize(t *testing.T) {
	assert.Equal(t, 12.0, badgeSize(image.Pt(40, 30)))
	assert.Equal(t, 20.0, badgeSize(image.Pt(180, 100)))
	assert.Equal(t, 32.0, badgeSize(image.Pt(800, 450)))
}
