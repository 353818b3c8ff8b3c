package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	styles styles
}

type styles struct {
	header   lipgloss.Style
	label    lipgloss.Style
	turn     lipgloss.Style
	inactive lipgloss.Style
	winner   lipgloss.Style
	info     lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
}

// newStyles builds styles for a renderer, so colours are only emitted when
// the destination supports them
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		turn: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		inactive: r.NewStyle().
			Foreground(lipgloss.Color("8")),
		winner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
		info: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
	}
}

// NewOutput creates a new Output formatter writing results to out and
// errors to errOut
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{
		format: format,
		out:    out,
		errOut: errOut,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(o.out, data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error along with any notifications it carries
func (o *Output) PrintError(err error) {
	var notes []Notification
	var re *RequestError
	if errors.As(err, &re) {
		notes = re.Notifications
	}

	if o.format == "json" {
		o.printJSON(o.errOut, map[string]any{
			"error":         map[string]string{"message": err.Error()},
			"notifications": notes,
		})
		return
	}

	for _, n := range notes {
		fmt.Fprintln(o.errOut, o.notification(n))
	}
	fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Table:
		o.printTable(v)
	case TableList:
		o.printTableList(v)
	case CommandResult:
		o.printCommandResult(v)
	case History:
		o.printHistory(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(o.out, data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Balls    []int  `json:"balls"`
	Score    int    `json:"score"`
	IsActive bool   `json:"is_active"`
}

// Table response type
type Table struct {
	ID              string    `json:"id"`
	Players         []Player  `json:"players"`
	AvailableBalls  []int     `json:"available_balls"`
	PocketedBalls   []int     `json:"pocketed_balls"`
	GameStarted     bool      `json:"game_started"`
	GameFinished    bool      `json:"game_finished"`
	CurrentTurn     int       `json:"current_turn"`
	CurrentPlayerID *string   `json:"current_player_id,omitempty"`
	WinnerID        *string   `json:"winner_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableList response type
type TableList struct {
	Tables []string `json:"tables"`
}

// Notification response type
type Notification struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// CommandResult response type
type CommandResult struct {
	Table         Table          `json:"table"`
	Notifications []Notification `json:"notifications"`
	Foul          string         `json:"foul,omitempty"`
}

// HistoryEvent response type
type HistoryEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	PlayerName string    `json:"player_name"`
	Action     string    `json:"action"`
	BallNumber *int      `json:"ball_number,omitempty"`
}

// History response type
type History struct {
	TableID string         `json:"table_id"`
	Events  []HistoryEvent `json:"events"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (t Table) state() string {
	switch {
	case t.GameFinished:
		return "finished"
	case t.GameStarted:
		return "in progress"
	default:
		return "waiting for players"
	}
}

func formatBalls(balls []int) string {
	if len(balls) == 0 {
		return "none"
	}
	parts := make([]string, len(balls))
	for i, b := range balls {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ", ")
}

func (o *Output) notification(n Notification) string {
	switch n.Severity {
	case "success":
		return o.styles.success.Render("✓ " + n.Message)
	case "error":
		return o.styles.failure.Render("✗ " + n.Message)
	default:
		return o.styles.info.Render("• " + n.Message)
	}
}

func (o *Output) printTable(t Table) {
	s := o.styles
	fmt.Fprintf(o.out, "%s %s (%s)\n", s.header.Render("Table"), s.header.Render(t.ID), t.state())

	if len(t.Players) == 0 {
		fmt.Fprintln(o.out, "No players seated")
	} else {
		fmt.Fprintln(o.out, s.label.Render("Players:"))
	}

	for _, p := range t.Players {
		marker := "  "
		if t.CurrentPlayerID != nil && *t.CurrentPlayerID == p.ID {
			marker = s.turn.Render("> ")
		}

		line := fmt.Sprintf("%s (%s)  balls: %s  score: %d", p.Name, p.ID, formatBalls(p.Balls), p.Score)
		switch {
		case t.WinnerID != nil && *t.WinnerID == p.ID:
			line = s.winner.Render(line + "  winner")
		case t.GameStarted && !p.IsActive:
			line = s.inactive.Render(line + "  out")
		}
		fmt.Fprintln(o.out, marker+line)
	}

	if !t.GameStarted {
		fmt.Fprintf(o.out, "%s %d\n", s.label.Render("Balls to deal:"), len(t.AvailableBalls))
	} else {
		fmt.Fprintf(o.out, "%s %s\n", s.label.Render("Pocketed:"), formatBalls(t.PocketedBalls))
	}
}

func (o *Output) printTableList(l TableList) {
	if len(l.Tables) == 0 {
		fmt.Fprintln(o.out, "No open tables")
		return
	}
	for _, id := range l.Tables {
		fmt.Fprintln(o.out, id)
	}
}

func (o *Output) printCommandResult(r CommandResult) {
	for _, n := range r.Notifications {
		fmt.Fprintln(o.out, o.notification(n))
	}
	if len(r.Notifications) > 0 {
		fmt.Fprintln(o.out)
	}
	o.printTable(r.Table)
}

func (o *Output) printHistory(h History) {
	fmt.Fprintf(o.out, "%s %s\n", o.styles.header.Render("History for table"), o.styles.header.Render(h.TableID))
	if len(h.Events) == 0 {
		fmt.Fprintln(o.out, "No events")
		return
	}
	for _, e := range h.Events {
		action := e.Action
		if e.BallNumber != nil && strings.HasSuffix(action, "ball") {
			action = fmt.Sprintf("%s %d", action, *e.BallNumber)
		}
		fmt.Fprintf(o.out, "%s  %s %s\n", e.Timestamp.Format(time.TimeOnly), e.PlayerName, action)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.out, "Server status: %s\n", h.Status)
}
