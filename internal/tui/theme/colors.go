package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#94A3B8")
)

var (
	ColorWater   = lipgloss.Color("#38BDF8") // hydration cards and sparkline
	ColorFitness = lipgloss.Color("#6366F1") // workouts and calories
	ColorStudy   = lipgloss.Color("#10B981") // study time and streaks
	ColorFocus   = lipgloss.Color("#A78BFA") // focus sessions
	ColorMoodHi  = lipgloss.Color("#34D399") // mood >= Good
	ColorMoodMid = lipgloss.Color("#FBBF24") // mood Neutral/Low
	ColorMoodLo  = lipgloss.Color("#F87171") // mood Poor
	ColorError   = lipgloss.Color("#F87171")
)

var (
	ColorBgDark = lipgloss.Color("#0F172A")
	ColorCardBg = lipgloss.Color("#1E293B")
)
