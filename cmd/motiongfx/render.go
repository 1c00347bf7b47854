package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/director"
	"github.com/ivlev/motiongfx/internal/engine"
	"github.com/ivlev/motiongfx/internal/system"
	"github.com/ivlev/motiongfx/internal/video"
)

var renderFlags struct {
	output      string
	preset      string
	workers     int
	encoder     string
	quality     int
	metricsFile string
	stats       bool
	storyboard  bool
}

var renderCmd = &cobra.Command{
	Use:   "render [job]",
	Short: "Render a job file to video",
	Long:  `Renders the job (JSON or YAML). Without an argument the newest job in input/jobs is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.output, "output", "o", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	f.StringVar(&renderFlags.preset, "preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram), 1:1")
	f.IntVar(&renderFlags.workers, "workers", 0, "Потоки (0 - по числу ядер)")
	f.StringVar(&renderFlags.encoder, "encoder", "", "Энкодер: libx264, h264_nvenc, h264_videotoolbox (по умолчанию: автоопределение)")
	f.IntVar(&renderFlags.quality, "quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	f.StringVar(&renderFlags.metricsFile, "metrics-file", "", "Файл метрик Prometheus (textfile)")
	f.BoolVar(&renderFlags.stats, "stats", false, "Показать отчёт о производительности")
	f.BoolVar(&renderFlags.storyboard, "storyboard", false, "Сохранить раскадровку в "+director.StoryboardDir)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger()
	system.InitResourceLimits(log)

	jobPath, job, err := loadJob(log, args)
	if err != nil {
		return err
	}
	job.Width, job.Height = config.ApplyPreset(renderFlags.preset, job.Width, job.Height)

	plan, err := director.BuildPlan(job)
	if err != nil {
		return err
	}

	encoderName := renderFlags.encoder
	if encoderName == "" {
		encoderName = system.GetBestH264Encoder()
		if encoderName != "libx264" {
			log.Infof("[*] Обнаружено аппаратное ускорение: %s", encoderName)
		}
	}
	quality := renderFlags.quality
	if quality == 0 {
		quality = config.DefaultQuality(encoderName)
	}

	cfg := &config.Config{
		JobPath:      jobPath,
		OutputVideo:  renderFlags.output,
		MetricsFile:  renderFlags.metricsFile,
		Preset:       renderFlags.preset,
		Workers:      renderFlags.workers,
		VideoEncoder: encoderName,
		Quality:      quality,
		ShowStats:    renderFlags.stats,
		BuildVersion: BuildVersion,
	}
	if cfg.OutputVideo == "" {
		cfg.OutputVideo = defaultOutput(jobPath)
	}

	if renderFlags.storyboard {
		cfg.StoryboardPath = director.GenerateStoryboardPath(job.Template)
		if err := director.WriteStoryboard(director.NewStoryboard(plan), cfg.StoryboardPath); err != nil {
			return err
		}
		log.Infof("[*] Раскадровка сохранена: %s", cfg.StoryboardPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	project := engine.NewProject(cfg, plan, &video.FFmpegEncoder{}, log)
	if _, err := project.Run(ctx); err != nil {
		return fmt.Errorf("ошибка проекта: %w", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
	return nil
}

// defaultOutput names the video after the job file and the current time.
func defaultOutput(jobPath string) string {
	base := filepath.Base(jobPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, " ", "_")
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.mp4", name, timestamp))
}
