package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/logging"
	"github.com/ivlev/motiongfx/internal/system"
)

// BuildVersion is set at link time.
var BuildVersion = "dev"

const jobsDir = "input/jobs"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "motiongfx",
	Short: "motiongfx renders listicle motion graphics from job files",
	Long: `motiongfx turns a job description (template, items, durations) into an
H.264 video: items are revealed one after another with zoom, hold and
scroll transitions over an overview of the whole list.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный вывод")
}

func newLogger() *logrus.Logger {
	return logging.New(verbose)
}

// loadJob reads the job at args[0], or the newest file in input/jobs.
func loadJob(log logrus.FieldLogger, args []string) (string, *config.Job, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		latest, err := system.FindLatestJob(jobsDir)
		if err != nil {
			return "", nil, fmt.Errorf("%v. Положите задание в %s/", err, jobsDir)
		}
		path = latest
		log.Infof("[*] Выбран файл: %s", path)
	}

	job, err := config.ReadJob(path)
	if err != nil {
		return "", nil, err
	}
	return path, job, nil
}
