package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"go-sweep/internal/board"
	"go-sweep/internal/config"
	"go-sweep/internal/game"
	"go-sweep/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Rows above the board: the header line plus a blank line.
const boardTop = 2

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

// Shown in the status line in place of a sound for opens that don't ring
// the bell.
var soundWords = map[state.Sound]string{
	state.SoundEmpty:    "whoosh",
	state.SoundNumbered: "click",
}

type tickMsg struct{ gen int }

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// teaClock turns the engine's start/stop notifications into tick commands.
// Every Start bumps the generation so ticks scheduled for an earlier game
// are dropped.
type teaClock struct {
	gen     int
	running bool
	pending bool
}

func (c *teaClock) Start() {
	c.gen++
	c.running = true
	c.pending = true
}

func (c *teaClock) Stop() {
	c.running = false
}

// next returns the first tick owed after a Start, or nil.
func (c *teaClock) next() tea.Cmd {
	if !c.pending {
		return nil
	}
	c.pending = false
	return tickCmd(c.gen)
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	Flag    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Flag, k.Restart, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Flag, k.Restart},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "right")),
		Open:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/click", "open")),
		Flag:    key.NewBinding(key.WithKeys("f", "m"), key.WithHelp("f/right click", "flag")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type styles struct {
	hidden  lipgloss.Style
	empty   lipgloss.Style
	flag    lipgloss.Style
	mine    lipgloss.Style
	numbers [8]lipgloss.Style
	cursor  lipgloss.Color
}

// cellWidthFor returns the columns one rendered cell takes: the widest
// glyph in the theme padded by a space on each side.
func cellWidthFor(theme config.Theme) int {
	w := 1 // digits
	for _, glyph := range []string{theme.Hidden, theme.Flag, theme.Mine, theme.Empty} {
		w = max(w, lipgloss.Width(glyph))
	}
	return w + 2
}

func newStyles(theme config.Theme) styles {
	st := styles{
		hidden: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		empty:  lipgloss.NewStyle().Faint(true),
		flag:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		mine:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		cursor: lipgloss.Color(theme.Cursor),
	}
	for n := range st.numbers {
		st.numbers[n] = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.NumberColor(n + 1)))
	}
	return st
}

type LocalState struct {
	Session  *game.Session
	Snapshot state.Snapshot
	Cursor   int

	status    string // word for the last open, cleared by other intents
	cellWidth int

	clock  *teaClock
	keys   keyMap
	help   help.Model
	theme  config.Theme
	styles styles
	sound  bool
	bell   io.Writer
	logger *log.Logger
}

func initialModel(cfg config.Config, r *rand.Rand, logger *log.Logger, bell io.Writer) *LocalState {
	clock := &teaClock{}
	sess := game.NewSession(state.GameOptions{
		Geometry:  board.Standard,
		MineCount: board.MineCount,
		Verify:    cfg.Verify,
		Rand:      r,
		Clock:     clock,
		Logger:    logger,
	})

	snap := sess.CurrentGame.Snapshot()
	return &LocalState{
		Session:   sess,
		Snapshot:  snap,
		Cursor:    board.Standard.Index(board.Rows/2, board.Cols/2),
		cellWidth: cellWidthFor(cfg.Theme),
		clock:     clock,
		keys:      defaultKeyMap(),
		help:      help.New(),
		theme:     cfg.Theme,
		styles:    newStyles(cfg.Theme),
		sound:     cfg.Sound,
		bell:      bell,
		logger:    logger,
	}
}

func (s *LocalState) Init() tea.Cmd {
	// The clock starts on the first open, not here.
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.clock.gen || !s.clock.running {
			return s, nil
		}
		s.Snapshot = s.Session.CurrentGame.Tick()
		return s, tickCmd(msg.gen)

	case tea.WindowSizeMsg:
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Up):
			s.move(-1, 0)
		case key.Matches(msg, s.keys.Down):
			s.move(1, 0)
		case key.Matches(msg, s.keys.Left):
			s.move(0, -1)
		case key.Matches(msg, s.keys.Right):
			s.move(0, 1)
		case key.Matches(msg, s.keys.Open):
			return s, s.open(s.Cursor)
		case key.Matches(msg, s.keys.Flag):
			s.flag(s.Cursor)
		case key.Matches(msg, s.keys.Restart):
			s.restart()
		case key.Matches(msg, s.keys.Help):
			s.help.ShowAll = !s.help.ShowAll
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return s, nil
		}
		i, ok := s.cellAt(msg.X, msg.Y)
		if !ok {
			return s, nil
		}
		s.Cursor = i
		switch msg.Button {
		case tea.MouseButtonLeft:
			return s, s.open(i)
		case tea.MouseButtonRight:
			s.flag(i)
		}
	}

	return s, nil
}

func (s *LocalState) open(i int) tea.Cmd {
	wasOpen := s.Snapshot.Cells[i].Opened
	s.Snapshot = s.Session.CurrentGame.Open(i)
	s.Session.Update()

	var cmds []tea.Cmd
	if tick := s.clock.next(); tick != nil {
		cmds = append(cmds, tick)
	}
	if c := s.Snapshot.Cells[i]; c.Opened && !wasOpen {
		sound := c.Sound()
		s.status = soundWords[sound]
		if s.sound && sound == state.SoundMine {
			cmds = append(cmds, s.ring())
		}
	}
	return tea.Batch(cmds...)
}

func (s *LocalState) flag(i int) {
	s.Snapshot = s.Session.CurrentGame.ToggleFlag(i)
	s.Session.Update()
	s.status = ""
}

func (s *LocalState) restart() {
	s.Snapshot = s.Session.Restart()
	s.status = ""
}

func (s *LocalState) ring() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(s.bell, "\a")
		return nil
	}
}

// move shifts the cursor, stopping at the board edges.
func (s *LocalState) move(dRow, dCol int) {
	g := board.Geometry{Rows: s.Snapshot.Rows, Cols: s.Snapshot.Cols}
	row := min(max(g.Row(s.Cursor)+dRow, 0), g.Rows-1)
	col := min(max(g.Col(s.Cursor)+dCol, 0), g.Cols-1)
	s.Cursor = g.Index(row, col)
}

// cellAt maps a terminal position to the cell drawn there.
func (s *LocalState) cellAt(x, y int) (int, bool) {
	row, col := y-boardTop, x/s.cellWidth
	if x < 0 || row < 0 || row >= s.Snapshot.Rows || col >= s.Snapshot.Cols {
		return 0, false
	}
	return row*s.Snapshot.Cols + col, true
}

func (s *LocalState) renderCell(c state.CellView) string {
	glyph, style := s.theme.Hidden, s.styles.hidden
	switch {
	case c.Opened && c.Flagged:
		// a flagged mine shown after a loss
		glyph, style = s.theme.Flag, s.styles.mine
	case c.Opened && c.Value.IsMine():
		glyph, style = s.theme.Mine, s.styles.mine
	case c.Opened && c.Value == board.Empty:
		glyph, style = s.theme.Empty, s.styles.empty
	case c.Opened:
		glyph, style = c.Display(), s.styles.numbers[c.Value.Count()-1]
	case c.Flagged:
		glyph, style = s.theme.Flag, s.styles.flag
	}

	if c.Index == s.Cursor && !s.Snapshot.Phase.Finished() {
		style = style.Background(s.styles.cursor)
	}
	pad := strings.Repeat(" ", max(s.cellWidth-2-lipgloss.Width(glyph), 0))
	return style.Render(" " + glyph + pad + " ")
}

func (s *LocalState) RenderBoard() string {
	var b strings.Builder
	for i, c := range s.Snapshot.Cells {
		b.WriteString(s.renderCell(c))
		if (i+1)%s.Snapshot.Cols == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *LocalState) renderHeader() string {
	snap := s.Snapshot
	face := ":)"
	switch snap.Phase {
	case state.PhaseWon:
		face = greenStyle.Render("B)")
	case state.PhaseLost:
		face = redStyle.Render("X(")
	}

	mines := fmt.Sprintf("%03d", snap.MinesRemaining)
	elapsed := state.FormatElapsed(snap.ElapsedSeconds)

	width := snap.Cols * s.cellWidth
	gap := max(width-len(mines)-len(elapsed)-2, 2)
	left := gap / 2
	return scoreStyle.Render(mines) +
		strings.Repeat(" ", left) + face + strings.Repeat(" ", gap-left) +
		scoreStyle.Render(elapsed)
}

func (s *LocalState) renderStatus() string {
	score := s.Session.Score
	best := "---"
	if secs, ok := score.GetBestTime(); ok {
		best = state.FormatElapsed(secs)
	}
	status := fmt.Sprintf("WINS: %d | LOSSES: %d | BEST: %s", score.Wins, score.Losses, best)

	switch s.Snapshot.Phase {
	case state.PhaseWon:
		msg := "Cleared in " + state.FormatElapsed(s.Snapshot.ElapsedSeconds) + "s!"
		if score.GotBestTime() {
			msg += " New best time!"
		}
		status += "\n" + greenStyle.Render(msg) + " Press r to play again."
		status += "\nFastest clears:"
		for _, entry := range score.GetNFastest(5) {
			status += fmt.Sprintf("\n  * %ss on %s", state.FormatElapsed(entry.Seconds), entry.Timestamp)
		}
	case state.PhaseLost:
		status += "\n" + redStyle.Render("Boom! Game over.") + " Press r to play again."
	case state.PhaseUnstarted:
		status += "\n" + boldStyle.Render("Open any cell to start.")
	case state.PhasePlaying:
		if s.status != "" {
			status += "\n" + s.status
		}
	}
	return status
}

func (s *LocalState) View() string {
	return s.renderHeader() + "\n\n" +
		s.RenderBoard() + "\n" +
		s.renderStatus() + "\n\n" +
		s.help.View(s.keys)
}
