package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ivanpetrovic/brio/internal/client/wellness"
)

var (
	caloriesColor = color.New(color.FgRed)
	focusColor    = color.New(color.FgMagenta)
	countColor    = color.New(color.FgCyan)
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "history [workouts|study|focus]",
		Short:     "Print recent session history as a table",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"workouts", "study", "focus"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind := "workouts"
			if len(args) == 1 {
				kind = args[0]
			}

			a, err := newApp(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			switch kind {
			case "workouts":
				sessions, err := a.client.Workout.History(ctx)
				if err != nil {
					return err
				}
				return printWorkouts(sessions)
			case "study":
				sessions, err := a.client.Study.History(ctx)
				if err != nil {
					return err
				}
				return printStudy(sessions)
			case "focus":
				sessions, err := a.client.Focus.History(ctx)
				if err != nil {
					return err
				}
				return printFocus(sessions)
			default:
				return fmt.Errorf("unknown history kind %q", kind)
			}
		},
	}
}

func printWorkouts(sessions []wellness.WorkoutSession) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"When", "Duration", "Calories", "Exercises"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range sessions {
		data = append(data, []string{
			historyDate(s.StartTime),
			historyDuration(s.Duration),
			caloriesColor.Sprintf("%.0f kcal", s.CaloriesBurned),
			countColor.Sprint(strconv.Itoa(len(s.Exercises))),
		})
	}

	return renderHistory(table, data, len(sessions))
}

func printStudy(sessions []wellness.StudySession) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"When", "Duration", "Pomodoros", "Distractions"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range sessions {
		data = append(data, []string{
			historyDate(s.StartTime),
			historyDuration(s.Duration),
			countColor.Sprint(strconv.Itoa(s.Pomodoros)),
			strconv.Itoa(s.Distractions),
		})
	}

	return renderHistory(table, data, len(sessions))
}

func printFocus(sessions []wellness.FocusSession) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"When", "Type", "Duration", "Detail"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range sessions {
		detail := s.BreathingPattern
		if detail == "" {
			detail = s.AmbientSound
		}
		data = append(data, []string{
			historyDate(s.CompletedAt),
			focusColor.Sprint(s.Type),
			historyDuration(s.Duration),
			detail,
		})
	}

	return renderHistory(table, data, len(sessions))
}

func renderHistory(table *tablewriter.Table, data [][]string, total int) error {
	if total == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("Showing %d sessions\n", total)
	return nil
}

func historyDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("Jan 2 15:04")
}

func historyDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	d = d.Round(time.Minute)
	if d < time.Minute {
		return "<1m"
	}
	if h := d / time.Hour; h > 0 {
		return fmt.Sprintf("%dh %02dm", h, (d%time.Hour)/time.Minute)
	}
	return fmt.Sprintf("%dm", d/time.Minute)
}
