/*
	Package session runs the interactive control loop.
	One cooperative loop owns the board and all transient state, ticks
	at the current frame delay, polls at most one input event per tick
	and decides what to redraw. Terminal specifics stay behind the
	Input and Display interfaces.
*/
package session

import (
	"fmt"
	"time"

	"lifeterm/src/board"
	"lifeterm/src/render"
)

//Symbol is one decoded input event from the fixed vocabulary
type Symbol int

const (
	SymUnknown Symbol = iota
	SymQuit
	SymTogglePause
	SymRandomize
	SymClear
	SymStepOnce
	SymMoveUp
	SymMoveDown
	SymMoveLeft
	SymMoveRight
	SymToggleCell
	SymToggleCursor
	SymToggleGlyph
	SymSlowDown
	SymSpeedUp
)

//Input is the non-blocking keyboard source
//Poll returns immediately, ok is false when no event is pending
type Input interface {
	Poll() (sym Symbol, ok bool)
}

//Display is the character terminal the session draws to
//write errors are non-fatal, a dropped frame beats a dead session
type Display interface {
	WriteAt(col int, row int, text string) error
	Clear() error
	MoveCursor(col int, row int) error
	ShowCursor(visible bool) error
	Flush() error
}

//Glyph is the character a live cell is drawn with
type Glyph rune

const (
	GlyphUnicode Glyph = '■'
	GlyphASCII   Glyph = '#'
)

//frame delay bounds, milliseconds
const (
	DefFrameDelay = 30
	MinFrameDelay = 1
	MaxFrameDelay = 200
)

//Options carries the configurable session defaults
type Options struct {
	Delay int
	Glyph Glyph
}

//Session is the per-run state machine
type Session struct {
	board *board.Board
	in    Input
	out   Display

	running       bool
	paused        bool
	cursor        board.Point
	cursorVisible bool
	glyph         Glyph
	delay         int
	generation    int

	sleep func(d time.Duration)
}

//New creates a session over a settled board
func New(b *board.Board, in Input, out Display, o Options) *Session {
	if o.Delay == 0 {
		o.Delay = DefFrameDelay
	}
	if o.Glyph == 0 {
		o.Glyph = GlyphUnicode
	}
	return &Session{
		board:         b,
		in:            in,
		out:           out,
		running:       true,
		cursorVisible: true,
		glyph:         o.Glyph,
		delay:         clampDelay(o.Delay),
		sleep:         time.Sleep,
	}
}

//Run drives the loop until a quit event arrives
func (s *Session) Run() {
	_ = s.out.Clear()
	first := true
	for s.running {
		s.tick(first)
		first = false
		if s.running {
			s.sleep(time.Duration(s.delay) * time.Millisecond)
		}
	}
}

//tick executes one iteration: advance, poll, clamp, draw, flush
func (s *Session) tick(first bool) {
	boardChanged := false
	delayChanged := false

	if !s.paused {
		s.board.Advance()
		s.generation++
		boardChanged = true
	}

	if sym, ok := s.in.Poll(); ok {
		bc, dc := s.dispatch(sym)
		boardChanged = boardChanged || bc
		delayChanged = delayChanged || dc
	}

	//moves are applied unclamped above, recover here
	s.cursor = s.clampCursor(s.cursor)

	if boardChanged {
		s.emitBoard()
	}
	if delayChanged || first {
		s.emitDelay()
	}
	col, row := render.ScreenPosition(s.cursor)
	_ = s.out.MoveCursor(col, row)
	_ = s.out.ShowCursor(s.cursorVisible)
	_ = s.out.Flush()
}

//dispatch applies one input event to the session state
//reports which readouts it dirtied
func (s *Session) dispatch(sym Symbol) (boardChanged bool, delayChanged bool) {
	switch sym {
	case SymQuit:
		s.running = false
	case SymTogglePause:
		s.paused = !s.paused
	case SymRandomize:
		s.board.Randomize()
		s.generation = 0
		boardChanged = true
	case SymClear:
		s.board.Clear()
		s.generation = 0
		boardChanged = true
	case SymStepOnce:
		//single stepping is a paused-only affordance
		if s.paused {
			s.board.Advance()
			s.generation++
			boardChanged = true
		}
	case SymMoveUp:
		s.cursor.Y--
	case SymMoveDown:
		s.cursor.Y++
	case SymMoveLeft:
		s.cursor.X--
	case SymMoveRight:
		s.cursor.X++
	case SymToggleCell:
		s.board.Toggle(s.cursor)
		boardChanged = true
	case SymToggleCursor:
		s.cursorVisible = !s.cursorVisible
	case SymToggleGlyph:
		if s.glyph == GlyphUnicode {
			s.glyph = GlyphASCII
		} else {
			s.glyph = GlyphUnicode
		}
		boardChanged = true
	case SymSlowDown:
		s.delay = clampDelay(s.delay + 1)
		delayChanged = true
	case SymSpeedUp:
		s.delay = clampDelay(s.delay - 1)
		delayChanged = true
	default:
		//unrecognized events are dropped
	}
	return
}

func (s *Session) emitBoard() {
	for i, row := range render.Frame(s.board, rune(s.glyph)) {
		_ = s.out.WriteAt(0, i, string(row))
	}
	s.emitStatus()
}

func (s *Session) emitStatus() {
	mode := "running"
	if s.paused {
		mode = "paused"
	}
	text := fmt.Sprintf("gen %-6d alive %-5d %-7s", s.generation, s.board.Population(), mode)
	_ = s.out.WriteAt(14, s.board.Height+2, text)
}

func (s *Session) emitDelay() {
	_ = s.out.WriteAt(0, s.board.Height+2, fmt.Sprintf("delay %3dms", s.delay))
}

func (s *Session) clampCursor(p board.Point) board.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > s.board.Width-1 {
		p.X = s.board.Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > s.board.Height-1 {
		p.Y = s.board.Height - 1
	}
	return p
}

func clampDelay(d int) int {
	if d < MinFrameDelay {
		return MinFrameDelay
	}
	if d > MaxFrameDelay {
		return MaxFrameDelay
	}
	return d
}
