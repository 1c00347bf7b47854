package engine

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/motiongfx/internal/analyzer"
	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/director"
	"github.com/ivlev/motiongfx/internal/renderer"
	"github.com/ivlev/motiongfx/internal/system"
	"github.com/ivlev/motiongfx/internal/timeline"
	"github.com/ivlev/motiongfx/internal/video"
)

// Project renders one planned job into a video file.
type Project struct {
	Config  *config.Config
	Plan    *director.Plan
	Encoder video.VideoEncoder
	Log     logrus.FieldLogger
	Metrics *Metrics

	// Probe inspects the finished file; nil skips the check.
	Probe func(path string) (*video.Info, error)
}

// Report summarises a finished render.
type Report struct {
	JobID      string
	Frames     int
	Duration   float64
	Workers    int
	InFlight   int
	Prepare    time.Duration
	Render     time.Duration
	Total      time.Duration
	Output     *video.Info
	PhaseCount map[timeline.Phase]int
}

func NewProject(cfg *config.Config, plan *director.Plan, enc video.VideoEncoder, log logrus.FieldLogger) *Project {
	return &Project{
		Config:  cfg,
		Plan:    plan,
		Encoder: enc,
		Log:     log,
		Metrics: NewMetrics(plan.Template.GetName()),
		Probe:   video.ProbeFile,
	}
}

func (p *Project) Run(ctx context.Context) (*Report, error) {
	startTime := time.Now()
	job := p.Plan.Job
	rep := &Report{
		JobID:      uuid.NewString(),
		Frames:     p.Plan.Frames,
		Duration:   p.Plan.Duration(),
		PhaseCount: make(map[timeline.Phase]int),
	}

	log := p.Log.WithFields(logrus.Fields{
		"job":      rep.JobID,
		"template": p.Plan.Template.GetName(),
		"frames":   p.Plan.Frames,
	})
	log.Infof("[*] Элементов: %d | %dx%d @ %d FPS | %.2fs", p.Plan.Sequence.Len(), job.Width, job.Height, job.FPS, rep.Duration)
	for _, n := range p.Plan.Notes {
		log.Warnf("[!] %s", n)
	}

	comp, err := p.buildCompositor(ctx, log)
	if err != nil {
		return nil, err
	}
	rep.Prepare = time.Since(startTime)

	bounds := comp.Bounds()
	budget := system.PlanBudget(p.Config.Workers, bounds.Dx()*bounds.Dy()*4)
	rep.Workers, rep.InFlight = budget.Workers, budget.InFlight
	log.Debugf("[*] Воркеров: %d | Кадров в памяти: %d", budget.Workers, budget.InFlight)

	if dir := filepath.Dir(p.Config.OutputVideo); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	sink, err := p.Encoder.Open(ctx, p.Config.OutputVideo, config.EncodeParams{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		FPS:     job.FPS,
		Encoder: p.Config.VideoEncoder,
		Quality: p.Config.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка запуска энкодера: %w", err)
	}

	renderStart := time.Now()
	if err := p.renderFrames(ctx, log, comp, sink, budget, rep); err != nil {
		sink.Close()
		return nil, err
	}
	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("ошибка кодирования: %w", err)
	}
	rep.Render = time.Since(renderStart)

	if p.Probe != nil {
		info, err := p.Probe(p.Config.OutputVideo)
		if err != nil {
			log.WithError(err).Warn("[!] Не удалось проверить результат")
		} else {
			rep.Output = info
			if info.Frames > 0 && info.Frames != rep.Frames {
				log.Warnf("[!] В файле %d кадров, ожидалось %d", info.Frames, rep.Frames)
			}
		}
	}

	if p.Config.MetricsFile != "" {
		if err := p.Metrics.WriteTextfile(p.Config.MetricsFile); err != nil {
			log.WithError(err).Warn("[!] Метрики не записаны")
		}
	}

	rep.Total = time.Since(startTime)
	log.Infof("[*] Готово: %s (%.2fs)", p.Config.OutputVideo, rep.Total.Seconds())
	if p.Config.ShowStats {
		p.printStats(rep)
	}
	return rep, nil
}

// buildCompositor resolves theme, fonts, layout and per-item visuals.
func (p *Project) buildCompositor(ctx context.Context, log logrus.FieldLogger) (*renderer.Compositor, error) {
	job := p.Plan.Job

	theme, err := config.DecodeTheme(job.Theme)
	if err != nil {
		return nil, err
	}
	fonts, err := renderer.LoadFonts(theme.FontTitle, theme.FontBody, theme.FontNumbers)
	if err != nil {
		return nil, err
	}
	layout, err := p.Plan.Template.NewLayout(p.Plan.Sequence, job)
	if err != nil {
		return nil, err
	}

	prep := &renderer.Preparer{
		Fonts:     fonts,
		Log:       log,
		Card:      inset(layout.CardSize(), layout.Border()),
		Frame:     inset(image.Pt(job.Width, job.Height), layout.Border()),
		BadgeSize: badgeSize(layout.CardSize()),
	}
	if job.SmartCrop {
		if prep.Detector, err = analyzer.NewDetector("gradient"); err != nil {
			return nil, err
		}
	}

	visuals, err := prepareVisuals(ctx, prep, p.Plan.VisualSpecs())
	if err != nil {
		return nil, err
	}

	return renderer.NewCompositor(renderer.Scene{
		Width:    job.Width,
		Height:   job.Height,
		Timeline: p.Plan.Timeline,
		Layout:   layout,
		Visuals:  visuals,
		Theme:    theme,
		Fonts:    fonts,
		Title:    job.Title,
		Source:   job.Source,
	})
}

func prepareVisuals(ctx context.Context, prep *renderer.Preparer, specs []renderer.VisualSpec) ([]renderer.Visual, error) {
	visuals := make([]renderer.Visual, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := prep.Prepare(spec)
			if err != nil {
				return fmt.Errorf("элемент %d: %w", i+1, err)
			}
			visuals[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return visuals, nil
}

// renderFrames composites frames in batches of budget.InFlight and hands
// each batch to the sink in frame order.
func (p *Project) renderFrames(ctx context.Context, log logrus.FieldLogger, comp *renderer.Compositor, sink video.FrameSink, budget system.Budget, rep *Report) error {
	fps := p.Plan.Job.FPS
	total := p.Plan.Frames
	bounds := comp.Bounds()
	batch := make([]*image.RGBA, budget.InFlight)
	phases := make([]timeline.Phase, budget.InFlight)
	lastLogged := 0

	for start := 0; start < total; start += budget.InFlight {
		end := min(start+budget.InFlight, total)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(budget.Workers)
		for f := start; f < end; f++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				buf := system.GetImage(bounds)
				t0 := time.Now()
				fs := comp.Render(buf, timeline.FrameTime(f, fps))
				p.Metrics.observe(fs.Phase, time.Since(t0))
				batch[f-start] = buf
				phases[f-start] = fs.Phase
				return nil
			})
		}
		err := g.Wait()

		for i := 0; i < end-start; i++ {
			buf := batch[i]
			if buf == nil {
				continue
			}
			if err == nil {
				if werr := sink.WriteFrame(buf); werr != nil {
					err = fmt.Errorf("кадр %d: %w", start+i, werr)
				}
				rep.PhaseCount[phases[i]]++
			}
			system.PutImage(buf)
			batch[i] = nil
		}
		if err != nil {
			return err
		}

		if pct := end * 100 / total; pct/10 > lastLogged/10 || end == total {
			lastLogged = pct
			log.Debugf("[>] Кадров: %d/%d (%d%%)", end, total, pct)
		}
	}
	return nil
}

func (p *Project) printStats(rep *Report) {
	fps := float64(rep.Frames) / rep.Total.Seconds()
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Job: %s\n"+
			"Template: %s | Frames: %d | Length: %.2fs\n"+
			"Workers: %d | In flight: %d\n"+
			"Total Time: %.2fs\n"+
			"Preparing visuals: %.2fs\n"+
			"Rendering + Encoding: %.2fs\n"+
			"Effective FPS: %.2f\n",
		p.Config.BuildVersion, rep.JobID, p.Plan.Template.GetName(), rep.Frames, rep.Duration,
		rep.Workers, rep.InFlight, rep.Total.Seconds(), rep.Prepare.Seconds(), rep.Render.Seconds(), fps,
	)
	for _, ph := range timeline.Phases() {
		report += fmt.Sprintf("  %-14s %d\n", ph.String()+":", rep.PhaseCount[ph])
	}
	report += "----------------------------\n"
	fmt.Print(report)

	logEntry := fmt.Sprintf("[%s] Build: %s | Template: %s | Items: %d | Frames: %d | Total: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		p.Plan.Template.GetName(),
		p.Plan.Sequence.Len(),
		rep.Frames,
		rep.Total.Seconds(),
		fps,
	)
	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}

func inset(size image.Point, border int) image.Point {
	return image.Pt(max(1, size.X-border*2), max(1, size.Y-border*2))
}

// badgeSize scales the "#N" badge with the card, within readable bounds.
func badgeSize(card image.Point) float64 {
	return float64(max(12, min(32, card.Y/5)))
}
