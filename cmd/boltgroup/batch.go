package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boltgroup/batch"
	"github.com/katalvlaran/boltgroup/casefile"
	"github.com/katalvlaran/boltgroup/group"
	"github.com/katalvlaran/boltgroup/internal/ui"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] case.toml",
	Short: "Run every case and save a result bundle",
	Long: `Batch distributes all cases from a case file concurrently and writes
the results to a bundle. Export re-opens the bundle later without
re-running the analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "concurrent cases (0 uses all CPUs)")
	batchCmd.Flags().String("out", "", "bundle path (default: the case file with a .bgb extension)")
	batchCmd.Flags().String("ui", "auto", "progress display: auto|on|off")
}

func runBatch(cmd *cobra.Command, args []string) error {
	doc, err := casefile.Load(args[0])
	if err != nil {
		return err
	}
	geo, err := doc.Geometry()
	if err != nil {
		return err
	}
	cases := make([]batch.Case, 0, len(doc.Cases))
	for _, c := range doc.Cases {
		cases = append(cases, batch.Case{Name: c.Name, Resultant: c.Resultant()})
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("read jobs flag: %w", err)
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("read out flag: %w", err)
	}
	if outPath == "" {
		outPath = defaultBundlePath(args[0])
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("read ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	title := doc.Title
	if title == "" {
		title = filepath.Base(args[0])
	}

	var res *batch.Result
	if shouldUseTUI(mode) {
		res, err = runBatchWithUI(cmd.Context(), title, geo, cases, jobs)
	} else {
		res, err = runBatchPlain(cmd, geo, cases, jobs)
	}
	if err != nil {
		return err
	}

	if err := batch.Save(outPath, doc.Title, res); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "bundle written to %s (%d cases)\n", outPath, len(cases))
	return nil
}

// defaultBundlePath swaps the case file's extension for .bgb.
func defaultBundlePath(casePath string) string {
	return strings.TrimSuffix(casePath, filepath.Ext(casePath)) + ".bgb"
}

type batchOutcome struct {
	result *batch.Result
	err    error
}

func runBatchWithUI(ctx context.Context, title string, geo group.Geometry, cases []batch.Case, jobs int) (*batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		res, err := batch.Run(ctx, geo, cases,
			batch.WithJobs(jobs),
			batch.WithEvents(func(ev batch.Event) { events <- ev }))
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func runBatchPlain(cmd *cobra.Command, geo group.Geometry, cases []batch.Case, jobs int) (*batch.Result, error) {
	out := cmd.OutOrStdout()
	okLine := color.New(color.FgGreen)
	badLine := color.New(color.FgRed)

	// Events arrive from worker goroutines; serialize the writes.
	var mu sync.Mutex
	report := func(ev batch.Event) {
		mu.Lock()
		defer mu.Unlock()
		switch ev.Status {
		case batch.StatusDone:
			okLine.Fprintf(out, "done   %s\n", ev.Name)
		case batch.StatusFailed:
			badLine.Fprintf(out, "failed %s: %v\n", ev.Name, ev.Err)
		}
	}

	return batch.Run(cmd.Context(), geo, cases, batch.WithJobs(jobs), batch.WithEvents(report))
}
