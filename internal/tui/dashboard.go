package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ivanpetrovic/brio/internal/apperr"
	"github.com/ivanpetrovic/brio/internal/dashboard"
	"github.com/ivanpetrovic/brio/internal/tui/components/spark"
	"github.com/ivanpetrovic/brio/internal/tui/theme"
)

const (
	cardWidth = 26
	barWidth  = 18
)

func (m *Model) DashboardView() string {
	vm := m.controller.ViewModel()

	switch m.controller.Status() {
	case dashboard.StatusLoading:
		return m.theme.Dim().Render("Loading your dashboard…")
	case dashboard.StatusError:
		if vm == nil {
			return m.errorView()
		}
	}

	now := time.Now()

	header := m.headerView(vm)
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.fitnessCard(vm),
		" ",
		m.studyCard(vm),
		" ",
		m.moodCard(vm),
	)
	lower := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.waterCard(vm),
		" ",
		m.activityCard(vm, now),
	)

	sections := []string{header, cards, lower, m.footerView(vm)}
	if m.controller.Status() == dashboard.StatusError {
		banner := lipgloss.NewStyle().
			Foreground(theme.ColorError).
			Render("Refresh failed — " + apperr.UserMessage(m.controller.Err()))
		sections = append([]string{banner}, sections...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) errorView() string {
	msg := lipgloss.NewStyle().
		Foreground(theme.ColorError).
		Render(apperr.UserMessage(m.controller.Err()))
	hint := m.theme.Dim().Render("r retry · q quit")
	return lipgloss.JoinVertical(lipgloss.Center, msg, "", hint)
}

func (m *Model) headerView(vm *dashboard.ViewModel) string {
	name := vm.Account.FullName
	if i := strings.IndexByte(name, ' '); i > 0 {
		name = name[:i]
	}
	if name == "" {
		name = vm.Account.Username
	}

	greeting := m.theme.Base().Bold(true).Render(fmt.Sprintf("Hello, %s! 👋", name))
	sub := m.theme.Dim().Render("Here's your daily overview.")
	if m.controller.Status() == dashboard.StatusRefreshing {
		sub = m.theme.Dim().Render("Refreshing…")
	}
	return lipgloss.JoinVertical(lipgloss.Left, greeting, sub, "")
}

func (m *Model) fitnessCard(vm *dashboard.ViewModel) string {
	percent := dashboard.Progress(vm.Week.CaloriesBurned, vm.Goals.CaloriesPerWeek)
	lines := []string{
		cardTitle("Fitness", "🔥"),
		m.theme.Dim().Render("Calories this week"),
		m.theme.Base().Bold(true).Render(fmt.Sprintf("%d kcal", int(vm.Week.CaloriesBurned))),
		progressBar(percent, barWidth, theme.ColorFitness),
		m.theme.Dim().Render(fmt.Sprintf("%d workouts logged", vm.Week.Workouts)),
	}
	return m.card(lines)
}

func (m *Model) studyCard(vm *dashboard.ViewModel) string {
	percent := dashboard.Progress(vm.Week.StudyHours, vm.Goals.StudyHoursPerWeek)
	lines := []string{
		cardTitle("Study", "📚"),
		m.theme.Dim().Render("Hours this week"),
		m.theme.Base().Bold(true).Render(fmt.Sprintf("%.1f hrs", vm.Week.StudyHours)),
		progressBar(percent, barWidth, theme.ColorStudy),
		m.theme.Dim().Render(dashboard.StreakMessage(vm.StudyStreak.Current)),
	}
	return m.card(lines)
}

func (m *Model) moodCard(vm *dashboard.ViewModel) string {
	ten := dashboard.MoodToTen(vm.MoodAverage)
	lines := []string{
		cardTitle("Mood", dashboard.MoodEmoji(ten)),
		m.theme.Dim().Render("7-day average"),
		lipgloss.NewStyle().
			Foreground(moodColor(ten)).
			Bold(true).
			Render(fmt.Sprintf("%.1f / 10 · %s", ten, dashboard.MoodCategory(ten))),
		"",
		m.theme.Dim().Render(fmt.Sprintf("%d check-ins", len(vm.MoodRecent))),
	}
	return m.card(lines)
}

func (m *Model) waterCard(vm *dashboard.ViewModel) string {
	glasses := make([]int, 0, len(vm.WaterWeek))
	for _, d := range vm.WaterWeek {
		glasses = append(glasses, d.Glasses)
	}

	percent := dashboard.Progress(float64(vm.WaterToday), vm.Goals.WaterGlassesPerDay)
	sparkline := lipgloss.NewStyle().
		Foreground(theme.ColorWater).
		Render(spark.Render(glasses, int(vm.Goals.WaterGlassesPerDay)))

	lines := []string{
		cardTitle("Hydration", "💧"),
		m.theme.Base().Bold(true).Render(
			fmt.Sprintf("%d / %d glasses today", vm.WaterToday, int(vm.Goals.WaterGlassesPerDay))),
		progressBar(percent, barWidth, theme.ColorWater),
		sparkline,
		m.theme.Dim().Render("last 7 days"),
	}
	return m.card(lines)
}

func (m *Model) activityCard(vm *dashboard.ViewModel, now time.Time) string {
	feed := dashboard.BuildActivityFeed(vm, now)

	lines := []string{cardTitle("Recent activity", "")}
	for _, item := range feed {
		row := fmt.Sprintf("%s %-18s", item.Icon, item.Title)
		if item.Detail != "" {
			row += m.theme.Dim().Render(item.Detail) + "  "
		}
		row += m.theme.Dim().Render(item.TimeLabel)
		lines = append(lines, row)
	}
	return m.card(lines)
}

func (m *Model) footerView(vm *dashboard.ViewModel) string {
	refreshed := ""
	if !vm.RefreshedAt.IsZero() {
		refreshed = "updated " + vm.RefreshedAt.Format("15:04") + " · "
	}
	return "\n" + m.theme.Dim().Render(refreshed+"r refresh · q quit")
}

func (m *Model) card(lines []string) string {
	return m.theme.Card().
		Width(cardWidth + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func cardTitle(title, icon string) string {
	t := lipgloss.NewStyle().Bold(true).Render(title)
	if icon == "" {
		return t
	}
	pad := cardWidth - lipgloss.Width(title) - lipgloss.Width(icon)
	if pad < 1 {
		pad = 1
	}
	return t + strings.Repeat(" ", pad) + icon
}

func progressBar(percent float64, width int, c color.Color) string {
	filled := int(percent/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(theme.ColorCardBg).Render(strings.Repeat("█", width-filled))
	return bar + rest
}

func moodColor(ten float64) color.Color {
	switch {
	case ten >= 6:
		return theme.ColorMoodHi
	case ten >= 2:
		return theme.ColorMoodMid
	default:
		return theme.ColorMoodLo
	}
}
