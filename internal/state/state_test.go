package state

import (
	"context"
	"math/rand/v2"
	"testing"

	"go-sweep/internal/board"
)

type fakeClock struct {
	starts, stops int
}

func (c *fakeClock) Start() { c.starts++ }
func (c *fakeClock) Stop()  { c.stops++ }

func newTestState(seed uint64) (*State, *fakeClock) {
	clk := &fakeClock{}
	s := NewState(GameOptions{
		Rand:   rand.New(rand.NewPCG(seed, 99)),
		Clock:  clk,
		Verify: true,
	})
	return s, clk
}

func TestState_Defaults(t *testing.T) {
	s := NewState(GameOptions{})

	if s.Options.Geometry != board.Standard {
		t.Errorf("Expected standard geometry, got %+v", s.Options.Geometry)
	}
	if s.Options.MineCount != board.MineCount {
		t.Errorf("Expected %d mines, got %d", board.MineCount, s.Options.MineCount)
	}
	if s.MinesLeft != board.MineCount {
		t.Errorf("Expected mine counter %d, got %d", board.MineCount, s.MinesLeft)
	}
	if !s.FSM.Is(Unstarted) {
		t.Errorf("Expected %s, got %s", Unstarted, s.FSM.Current())
	}
	if s.Phase() != PhaseUnstarted || s.IsFinished() {
		t.Error("New state should be neither started nor finished")
	}
}

func TestState_MineCountDefaultsWithGeometry(t *testing.T) {
	g := board.Geometry{Rows: 8, Cols: 8}
	s := NewState(GameOptions{
		Geometry: g,
		Rand:     rand.New(rand.NewPCG(3, 99)),
		Verify:   true,
	})

	if s.Options.MineCount != board.MineCount {
		t.Fatalf("Expected %d mines, got %d", board.MineCount, s.Options.MineCount)
	}
	s.Fire(context.Background(), "open", g.Index(4, 4))
	if err := s.Board.Verify(board.MineCount); err != nil {
		t.Fatalf("Generated board is inconsistent: %v", err)
	}
}

func TestState_FirstOpenGeneratesBoard(t *testing.T) {
	s, clk := newTestState(1)

	s.Fire(context.Background(), "open", 55)

	if s.Phase() == PhaseUnstarted {
		t.Fatalf("Expected game to be started, still %s", s.FSM.Current())
	}
	if err := s.Board.Verify(board.MineCount); err != nil {
		t.Fatalf("Generated board is inconsistent: %v", err)
	}
	for _, i := range board.Standard.SafeZone(55) {
		if s.Board.Cells[i].Kind.IsMine() {
			t.Errorf("Mine placed in safe zone at %d", i)
		}
		if !s.Board.Cells[i].Opened {
			t.Errorf("Safe zone cell %d should have been opened by the flood fill", i)
		}
	}
	if s.Sound != SoundEmpty {
		t.Errorf("Expected empty sound, got %s", s.Sound)
	}
	if clk.starts != 1 {
		t.Errorf("Expected clock to start once, started %d times", clk.starts)
	}
}

func TestState_OpenFlaggedIsCancelled(t *testing.T) {
	s, clk := newTestState(2)
	ctx := context.Background()

	s.Fire(ctx, "flag", 3)
	s.Fire(ctx, "open", 3)

	if s.FSM.Current() != Unstarted {
		t.Errorf("Opening a flagged cell must not start the game, got %s", s.FSM.Current())
	}
	if s.Board.Cells[3].Opened {
		t.Error("Flagged cell was opened")
	}
	if clk.starts != 0 {
		t.Error("Clock should not start")
	}
}

func TestState_FlagBeforeStartSurvivesGeneration(t *testing.T) {
	s, _ := newTestState(3)
	ctx := context.Background()

	s.Fire(ctx, "flag", 54)
	s.Fire(ctx, "flag", 0)
	if s.MinesLeft != board.MineCount-2 {
		t.Errorf("Expected mine counter %d, got %d", board.MineCount-2, s.MinesLeft)
	}

	s.Fire(ctx, "open", 55)

	if !s.Board.Cells[54].Flagged || !s.Board.Cells[0].Flagged {
		t.Error("Flags placed before the first open were lost")
	}
	if s.Board.Cells[54].Opened {
		t.Error("Flood fill opened a flagged cell")
	}
}

func TestState_FlagOpenedCellIsCancelled(t *testing.T) {
	s, _ := newTestState(4)
	ctx := context.Background()

	s.Fire(ctx, "open", 55)
	s.Fire(ctx, "flag", 55)

	if s.Board.Cells[55].Flagged {
		t.Error("Opened cell was flagged")
	}
	if s.MinesLeft != board.MineCount {
		t.Errorf("Mine counter moved to %d", s.MinesLeft)
	}
}

func TestState_TickOnlyWhilePlaying(t *testing.T) {
	s, _ := newTestState(5)
	ctx := context.Background()

	s.Fire(ctx, "tick")
	if s.Elapsed != 0 {
		t.Errorf("Tick before start advanced time to %d", s.Elapsed)
	}

	s.Fire(ctx, "open", 55)
	if !s.FSM.Is(Playing) {
		t.Skipf("seed cleared the board on the first open")
	}
	s.Fire(ctx, "tick")
	s.Fire(ctx, "tick")
	if s.Elapsed != 2 {
		t.Errorf("Expected 2 seconds, got %d", s.Elapsed)
	}

	// step on a mine
	for i, c := range s.Board.Cells {
		if c.Kind.IsMine() {
			s.Fire(ctx, "open", i)
			break
		}
	}
	if s.Phase() != PhaseLost {
		t.Fatalf("Expected %s, got %s", Lost, s.FSM.Current())
	}
	s.Fire(ctx, "tick")
	if s.Elapsed != 2 {
		t.Errorf("Tick after the game ended advanced time to %d", s.Elapsed)
	}
}

func TestState_LossRevealsMines(t *testing.T) {
	s, clk := newTestState(6)
	ctx := context.Background()

	s.Fire(ctx, "open", 0)
	if !s.FSM.Is(Playing) {
		t.Skipf("seed cleared the board on the first open")
	}
	mine := -1
	for i, c := range s.Board.Cells {
		if c.Kind.IsMine() {
			if mine < 0 {
				mine = i
			} else {
				s.Board.Cells[i].Flagged = true
			}
		}
	}
	s.Fire(ctx, "open", mine)

	if s.Phase() != PhaseLost {
		t.Fatalf("Expected %s, got %s", Lost, s.FSM.Current())
	}
	if s.Sound != SoundMine {
		t.Errorf("Expected mine sound, got %s", s.Sound)
	}
	for i, c := range s.Board.Cells {
		if c.Kind.IsMine() && !c.Opened {
			t.Errorf("Mine %d was not revealed", i)
		}
		if c.Kind.IsMine() && i != mine && !c.Flagged {
			t.Errorf("Revealing mine %d dropped its flag", i)
		}
	}
	if clk.stops != 1 {
		t.Errorf("Expected clock to stop once, stopped %d times", clk.stops)
	}

	// finished games ignore everything but restart
	s.Fire(ctx, "flag", 1)
	s.Fire(ctx, "open", 1)
	if s.Phase() != PhaseLost {
		t.Errorf("Expected game to stay lost, got %s", s.FSM.Current())
	}
}

func TestState_RestartFromUnstarted(t *testing.T) {
	s, _ := newTestState(7)
	ctx := context.Background()

	s.Fire(ctx, "flag", 12)
	s.Fire(ctx, "restart")

	if s.Board.FlaggedCount() != 0 {
		t.Error("Restart kept flags")
	}
	if s.MinesLeft != board.MineCount {
		t.Errorf("Expected mine counter %d, got %d", board.MineCount, s.MinesLeft)
	}
	if !s.FSM.Is(Unstarted) {
		t.Errorf("Expected %s, got %s", Unstarted, s.FSM.Current())
	}
}

func TestState_RestartWhilePlayingStopsClock(t *testing.T) {
	s, clk := newTestState(8)
	ctx := context.Background()

	s.Fire(ctx, "open", 44)
	if !s.FSM.Is(Playing) {
		t.Skipf("seed cleared the board on the first open")
	}
	s.Fire(ctx, "tick")
	s.Fire(ctx, "restart")

	if clk.stops != 1 {
		t.Errorf("Expected clock to stop on restart, stopped %d times", clk.stops)
	}
	if s.Elapsed != 0 || s.Sound != SoundNone {
		t.Errorf("Restart left elapsed=%d sound=%s", s.Elapsed, s.Sound)
	}
	if s.Board.OpenedCount() != 0 {
		t.Error("Restart kept opened cells")
	}

	// a new board is generated for the next first open
	s.Fire(ctx, "open", 0)
	if clk.starts != 2 {
		t.Errorf("Expected the clock to start again, started %d times", clk.starts)
	}
	for _, i := range board.Standard.SafeZone(0) {
		if s.Board.Cells[i].Kind.IsMine() {
			t.Errorf("Mine placed in new safe zone at %d", i)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "000"},
		{7, "007"},
		{42, "042"},
		{123, "123"},
		{1000, "999"},
		{-3, "000"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.seconds); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, expected %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCellView_Display(t *testing.T) {
	tests := []struct {
		view CellView
		want string
	}{
		{CellView{Opened: false, Value: board.Empty}, ""},
		{CellView{Opened: true, Value: board.Empty}, ""},
		{CellView{Opened: true, Value: 3}, "3"},
		{CellView{Opened: true, Value: board.Mine}, "*"},
	}

	for _, tt := range tests {
		if got := tt.view.Display(); got != tt.want {
			t.Errorf("Display(%+v) = %q, expected %q", tt.view, got, tt.want)
		}
	}
}
