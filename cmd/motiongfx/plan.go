package main

import (
	"github.com/spf13/cobra"

	"github.com/ivlev/motiongfx/internal/config"
	"github.com/ivlev/motiongfx/internal/director"
)

var planFlags struct {
	out    string
	save   bool
	preset string
}

var planCmd = &cobra.Command{
	Use:   "plan [job]",
	Short: "Print the resolved storyboard without rendering",
	Long: `Resolves the job against its template and prints the storyboard as YAML:
display order, intervals and phase boundaries of every item.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFlags.out, "out", "o", "", "Записать раскадровку в файл")
	planCmd.Flags().BoolVar(&planFlags.save, "save", false, "Сохранить раскадровку в "+director.StoryboardDir)
	planCmd.Flags().StringVar(&planFlags.preset, "preset", "", "Пресет формата: 16:9, 9:16, 4:5, 1:1")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := newLogger()

	_, job, err := loadJob(log, args)
	if err != nil {
		return err
	}
	job.Width, job.Height = config.ApplyPreset(planFlags.preset, job.Width, job.Height)

	plan, err := director.BuildPlan(job)
	if err != nil {
		return err
	}
	for _, n := range plan.Notes {
		log.Warnf("[!] %s", n)
	}
	sb := director.NewStoryboard(plan)

	path := planFlags.out
	if path == "" && planFlags.save {
		path = director.GenerateStoryboardPath(job.Template)
	}
	if path != "" {
		if err := director.WriteStoryboard(sb, path); err != nil {
			return err
		}
		log.Infof("[*] Раскадровка сохранена: %s", path)
		return nil
	}

	data, err := director.MarshalStoryboard(sb)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
