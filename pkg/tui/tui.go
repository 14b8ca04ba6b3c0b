// Package tui shows a run figure as a line chart in the terminal.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"

	"github.com/bbdrive/runplot/pkg/figure"
)

const (
	headerHeight = 2 // title + blank line
	legendHeight = 2 // legend row + blank
	maxLogs      = 3 // number of log messages to show
	footerHeight = maxLogs + 2
	borderSize   = 2 // chart border
)

// Series colors, close to the plotutil palette used by the window viewer.
var seriesColors = map[string]string{
	figure.Goal:        "203", // red
	figure.Position:    "114", // green
	figure.Orientation: "75",  // blue
}

const fallbackColor = "250"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the viewer.
type Model struct {
	fig      *figure.Figure
	source   string
	chart    *linechart.Model
	width    int      // terminal width
	height   int      // terminal height
	logs     []string // last N log messages
	quitting bool

	// padded data range shown by the chart
	minX, maxX float64
	minY, maxY float64
}

func colorFor(label string) lipgloss.Color {
	if c, ok := seriesColors[label]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(fallbackColor)
}

// padRange widens a degenerate range so the chart has something to scale to.
func padRange(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// New creates the viewer model for fig. source names where the data came from.
func New(fig *figure.Figure, source string) Model {
	minX, maxX, minY, maxY := fig.Bounds()
	minX, maxX = padRange(minX, maxX)
	minY, maxY = padRange(minY, maxY)

	chart := linechart.New(80, 20, minX, maxX, minY, maxY,
		linechart.WithXYSteps(4, 2),
	)

	m := Model{
		fig:    fig,
		source: source,
		chart:  &chart,
		minX:   minX,
		maxX:   maxX,
		minY:   minY,
		maxY:   maxY,
	}
	m.drawChart()
	return m
}

// area returns the data-to-cell mapping for the current graph size.
// One column and row are kept free so traces never touch the canvas edge.
func (m *Model) area() plotArea {
	return plotArea{
		minX: m.minX,
		maxX: m.maxX,
		minY: m.minY,
		maxY: m.maxY,
		cols: m.chart.GraphWidth() - 1,
		rows: m.chart.GraphHeight() - 1,
	}
}

// canvasPoint converts a graph cell to a canvas position. Row 0 is the
// bottom row of the graph, right above the X axis.
func (m *Model) canvasPoint(c cell) canvas.Point {
	o := m.chart.Origin()
	return canvas.Point{X: o.X + 1 + c.col, Y: o.Y - 1 - c.row}
}

// drawChart redraws axes and every series in legend order, each as
// connected segments between consecutive samples.
func (m *Model) drawChart() {
	m.chart.Clear()
	m.chart.DrawXYAxisAndLabel()

	area := m.area()
	for _, s := range m.fig.Series {
		style := lipgloss.NewStyle().Foreground(colorFor(s.Label))
		for _, c := range area.trace(s.XYs) {
			m.chart.Canvas.SetCell(m.canvasPoint(c), canvas.Cell{Rune: traceRune, Style: style})
		}
	}
}

// AddLog appends a message to the status box, keeping the last few.
func (m *Model) AddLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m *Model) tableHeight() int {
	// border, header, separator, one row per series, border
	return len(m.fig.Series) + 4
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *Model) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 20 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - legendHeight - m.tableHeight() - footerHeight - borderSize
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *Model) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(w, h)
	m.drawChart()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	// Header
	sb.WriteString(titleStyle.Render("runplot"))
	sb.WriteString(" - " + m.source)
	if m.width > 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("  [%dx%d]", m.width, m.height)))
	}
	sb.WriteString("\n\n")

	// Chart
	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	// Legend
	sb.WriteString(renderLegend(m.fig))
	sb.WriteString("\n\n")

	// Summary
	sb.WriteString(renderSummary(m.fig))
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	if m.width > 4 {
		logStyle = logStyle.Width(m.width - 4)
	}

	lines := append([]string(nil), m.logs...)
	lines = append(lines, statusStyle.Render("Press 'q' to quit"))
	sb.WriteString(logStyle.Render(strings.Join(lines, "\n")))
	sb.WriteString("\n")

	return sb.String()
}

func renderLegend(fig *figure.Figure) string {
	var items []string
	for _, s := range fig.Series {
		colorStyle := lipgloss.NewStyle().Foreground(colorFor(s.Label)).Bold(true)
		item := colorStyle.Render("━━") + " " + s.Label
		items = append(items, item)
	}
	return strings.Join(items, "  ")
}

func formatRange(lo, hi float64) string {
	return fmt.Sprintf("%.3g .. %.3g", lo, hi)
}

func renderSummary(fig *figure.Figure) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(fig.Series))
	for _, s := range fig.Series {
		xr, yr := "-", "-"
		if minX, maxX, minY, maxY, ok := figure.SeriesBounds(s); ok {
			xr = formatRange(minX, maxX)
			yr = formatRange(minY, maxY)
		}
		rows = append(rows, []string{s.Label, fmt.Sprintf("%d", s.Len()), xr, yr})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Series", "Points", "x", "y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(fig.Series) {
				return cellStyle.Foreground(colorFor(fig.Series[row].Label))
			}
			return cellStyle
		})

	return t.Render()
}

// Run shows fig until the user quits. logs are shown in the status box.
func Run(fig *figure.Figure, source string, logs ...string) error {
	m := New(fig, source)
	for _, l := range logs {
		m.AddLog(l)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
