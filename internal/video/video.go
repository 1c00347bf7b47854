package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/ivlev/motiongfx/internal/config"
)

// VideoEncoder opens an output stream that accepts raw frames in order
type VideoEncoder interface {
	Open(ctx context.Context, path string, params config.EncodeParams) (FrameSink, error)
}

// FrameSink receives frames; Close finishes the file and reports the
// encoder's exit status.
type FrameSink interface {
	WriteFrame(img *image.RGBA) error
	Close() error
}

type FFmpegEncoder struct {
	Binary string // defaults to "ffmpeg"
}

// QualityArgs maps the quality knob onto what each encoder understands
func QualityArgs(encoderName string, quality int) ffmpeg.KwArgs {
	switch encoderName {
	case "h264_videotoolbox":
		// VideoToolbox не везде поддерживает -q:v, поэтому задаём битрейт: 75 -> 7.5 Мбит/с
		return ffmpeg.KwArgs{"b:v": fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return ffmpeg.KwArgs{"cq": quality}
	default: // libx264
		return ffmpeg.KwArgs{"crf": quality, "preset": "fast"}
	}
}

// BuildArgs compiles the ffmpeg command line that reads rgba frames from
// stdin and writes an H.264 mp4.
func BuildArgs(path string, p config.EncodeParams) []string {
	input := ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", p.Width, p.Height),
		"framerate": p.FPS,
	}
	output := ffmpeg.KwArgs{
		"c:v":      p.Encoder,
		"pix_fmt":  "yuv420p",
		"movflags": "+faststart",
		"r":        p.FPS,
	}
	for k, v := range QualityArgs(p.Encoder, p.Quality) {
		output[k] = v
	}

	return ffmpeg.Input("pipe:", input).
		Output(path, output).
		OverWriteOutput().
		GetArgs()
}

func (e *FFmpegEncoder) Open(ctx context.Context, path string, params config.EncodeParams) (FrameSink, error) {
	if params.Width <= 0 || params.Height <= 0 || params.FPS <= 0 {
		return nil, errors.Errorf("invalid encode params %+v", params)
	}
	if params.Encoder == "" {
		params.Encoder = "libx264"
	}

	bin := e.Binary
	if bin == "" {
		bin = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, bin, BuildArgs(path, params)...)

	s := &ffmpegSink{cmd: cmd, rect: image.Rect(0, 0, params.Width, params.Height)}
	cmd.Stderr = &s.log

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "stdin pipe error")
	}
	s.stdin = stdin

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "ffmpeg start error")
	}
	return s, nil
}

type ffmpegSink struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	rect  image.Rectangle
	log   syncBuffer

	once sync.Once
	err  error
}

func (s *ffmpegSink) WriteFrame(img *image.RGBA) error {
	if img.Rect.Size() != s.rect.Size() {
		return errors.Errorf("frame is %v, encoder expects %v", img.Rect.Size(), s.rect.Size())
	}
	if err := WriteRawRGBA(s.stdin, img); err != nil {
		return errors.Wrapf(err, "write raw error: %s", tail(s.log.String()))
	}
	return nil
}

func (s *ffmpegSink) Close() error {
	s.once.Do(func() {
		s.stdin.Close()
		if err := s.cmd.Wait(); err != nil {
			s.err = errors.Wrapf(err, "ffmpeg wait error: %s", tail(s.log.String()))
		}
	})
	return s.err
}

// syncBuffer is ffmpeg's stderr; it is read while the process still writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// WriteRawRGBA writes tightly packed rgba rows.
func WriteRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

// tail keeps the last lines of ffmpeg's log for error messages.
func tail(log string) string {
	lines := strings.Split(strings.TrimSpace(log), "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, " | ")
}

// Info is what ffprobe reports about an encoded file
type Info struct {
	Width    int
	Height   int
	Frames   int
	Duration float64
	Codec    string
}

// ProbeFile inspects an encoded file with ffprobe.
func ProbeFile(path string) (*Info, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, errors.Wrap(err, "error probing video")
	}
	return parseProbe([]byte(out))
}

func parseProbe(data []byte) (*Info, error) {
	var probe struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			CodecName string `json:"codec_name"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
			NbFrames  string `json:"nb_frames"`
			Duration  string `json:"duration"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, s := range probe.Streams {
		if s.CodecType != "video" {
			continue
		}
		info := &Info{Width: s.Width, Height: s.Height, Codec: s.CodecName}
		if n, err := strconv.Atoi(s.NbFrames); err == nil {
			info.Frames = n
		}
		if d, err := strconv.ParseFloat(strings.TrimSpace(s.Duration), 64); err == nil {
			info.Duration = d
		}
		return info, nil
	}
	return nil, errors.New("no video stream found")
}
