package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ShimmerConfig holds configuration for the selected-title shimmer
type ShimmerConfig struct {
	Enabled        bool    // animations = true|false in config.toml
	SpeedMs        int     // tick interval (default 100)
	WidthRatio     float64 // highlight width relative to the text (default 0.25)
	CycleMs        int     // time for one sweep (default 1800)
	PauseBetweenMs int     // pause between sweeps (default 500)
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig(enabled bool) ShimmerConfig {
	return ShimmerConfig{
		Enabled:        enabled,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// shimmerTickMsg advances the shimmer by one frame
type shimmerTickMsg struct{}

// Shimmer sweeps a highlight across a line of text, one frame per tick
type Shimmer struct {
	config    ShimmerConfig
	trueColor bool
	active    bool
	center    float64 // highlight position, in glyphs
	pauseLeft int     // ticks left before the next sweep
}

// NewShimmer creates a shimmer; it is active when the config enables it
func NewShimmer(config ShimmerConfig) *Shimmer {
	return &Shimmer{
		config:    config,
		trueColor: os.Getenv("COLORTERM") == "truecolor",
		active:    config.Enabled,
	}
}

// SetActive pauses or resumes the animation (e.g. when focus leaves the list)
func (s *Shimmer) SetActive(active bool) {
	s.active = active && s.config.Enabled
}

// Active reports whether ticks are needed
func (s *Shimmer) Active() bool {
	return s.active
}

// Reset restarts the sweep (call when the selection changes)
func (s *Shimmer) Reset() {
	s.center = 0
	s.pauseLeft = 0
}

// Tick schedules the next frame, or nil when inactive
func (s *Shimmer) Tick() tea.Cmd {
	if !s.active {
		return nil
	}
	return tea.Tick(time.Duration(s.config.SpeedMs)*time.Millisecond, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Advance moves the highlight one frame along a text of textLen glyphs
func (s *Shimmer) Advance(textLen int) {
	if !s.active || textLen <= 0 {
		return
	}

	if s.pauseLeft > 0 {
		s.pauseLeft--
		if s.pauseLeft == 0 {
			s.center = -float64(textLen) * s.config.WidthRatio // start before the text
		}
		return
	}

	ticksPerCycle := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	totalDistance := float64(textLen) * (1.0 + 2.0*s.config.WidthRatio)
	s.center += totalDistance / ticksPerCycle

	maxCenter := float64(textLen) * (1.0 + s.config.WidthRatio)
	if s.center >= maxCenter {
		s.center = maxCenter
		s.pauseLeft = max(1, s.config.PauseBetweenMs/s.config.SpeedMs)
	}
}

// Render returns text with the highlight applied; inactive shimmers render
// plain text so callers can style it themselves
func (s *Shimmer) Render(text string) string {
	if !s.active || text == "" {
		return text
	}

	runes := []rune(text)
	sigma := math.Max(1.0, s.config.WidthRatio*float64(len(runes))/2.0)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		if s.trueColor {
			// blend #CDBB98 toward #FFF6E5
			red := int(205*(1-weight) + 255*weight)
			green := int(187*(1-weight) + 246*weight)
			blue := int(152*(1-weight) + 229*weight)
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", red, green, blue, r)
		} else if weight > 0.5 {
			fmt.Fprintf(&b, "\033[38;5;230m%c", r)
		} else {
			fmt.Fprintf(&b, "\033[38;5;180m%c", r)
		}
	}
	b.WriteString("\033[0m")

	return b.String()
}
