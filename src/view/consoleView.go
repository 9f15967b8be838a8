package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeterm/src/session"
)

//helpRows is the screen height reserved for the keybinding bar
const helpRows = 2

type keyBinding struct {
	key   interface{}
	name  string
	descr string
	sym   session.Symbol
}

//ConsoleView drives the terminal with gocui
//implements the session's Input and Display interfaces: keybindings
//feed a buffered event channel that Poll drains without blocking,
//draw calls land in an off-screen cell buffer that Flush pushes to
//the gui in one update
type ConsoleView struct {
	g        *gocui.Gui
	events   chan session.Symbol
	bindings []keyBinding

	//cells is touched only by the session goroutine
	cells [][]rune

	//fillers maps live cell glyphs to their colored rendition
	fillers map[rune]string

	mu            sync.Mutex
	frame         string
	cursorCol     int
	cursorRow     int
	cursorVisible bool
}

//NewConsoleView sets up the terminal and the key bindings
func NewConsoleView() *ConsoleView {
	v := &ConsoleView{
		events: make(chan session.Symbol, 16),
		fillers: map[rune]string{
			rune(session.GlyphUnicode): aurora.Green(string(session.GlyphUnicode)).String(),
			rune(session.GlyphASCII):   aurora.Green(string(session.GlyphASCII)).String(),
		},
	}

	var err error
	v.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	v.bindings = []keyBinding{
		{'q', "Q", "quit", session.SymQuit},
		{gocui.KeyCtrlC, "^C", "", session.SymQuit},
		{gocui.KeySpace, "SPACE", "play/pause", session.SymTogglePause},
		{'f', "F", "forward one frame", session.SymStepOnce},
		{'r', "R", "randomize", session.SymRandomize},
		{'c', "C", "clear", session.SymClear},
		{gocui.KeyArrowUp, "ARROWS", "move cursor", session.SymMoveUp},
		{gocui.KeyArrowDown, "", "", session.SymMoveDown},
		{gocui.KeyArrowLeft, "", "", session.SymMoveLeft},
		{gocui.KeyArrowRight, "", "", session.SymMoveRight},
		{gocui.KeyEnter, "ENTER", "toggle cell", session.SymToggleCell},
		{'t', "", "", session.SymToggleCell},
		{'v', "V", "show/hide cursor", session.SymToggleCursor},
		{'g', "G", "switch glyph", session.SymToggleGlyph},
		{'+', "+/-", "slower/faster", session.SymSlowDown},
		{'-', "", "", session.SymSpeedUp},
	}

	cols, rows := v.Size()
	v.cells = makeCells(cols, rows)

	v.g.SetManagerFunc(v.layout)
	v.initKeyBindings()
	return v
}

func (v *ConsoleView) initKeyBindings() {
	for _, kb := range v.bindings {
		sym := kb.sym
		handler := func(*gocui.Gui, *gocui.View) error {
			v.push(sym)
			return nil
		}
		if err := v.g.SetKeybinding("", kb.key, gocui.ModNone, handler); err != nil {
			log.Panicln(err)
		}
	}
}

//push queues an event for the session, drops it when the buffer is full
func (v *ConsoleView) push(sym session.Symbol) {
	select {
	case v.events <- sym:
	default:
	}
}

//Poll returns the next pending event without blocking
func (v *ConsoleView) Poll() (session.Symbol, bool) {
	select {
	case sym := <-v.events:
		return sym, true
	default:
		return session.SymUnknown, false
	}
}

//Size reports the screen area available to the session
//the keybinding bar keeps the bottom rows for itself
func (v *ConsoleView) Size() (cols int, rows int) {
	maxX, maxY := v.g.Size()
	return maxX, maxY - helpRows
}

//WriteAt copies text into the cell buffer at col,row
//anything outside the buffer is dropped
func (v *ConsoleView) WriteAt(col int, row int, text string) error {
	if row < 0 || row >= len(v.cells) {
		return fmt.Errorf("row %d outside the screen", row)
	}
	line := v.cells[row]
	for i, r := range []rune(text) {
		if col+i < 0 || col+i >= len(line) {
			continue
		}
		line[col+i] = r
	}
	return nil
}

//Clear blanks the cell buffer
func (v *ConsoleView) Clear() error {
	for _, line := range v.cells {
		for x := range line {
			line[x] = ' '
		}
	}
	return nil
}

//MoveCursor records the cursor cell for the next Flush
func (v *ConsoleView) MoveCursor(col int, row int) error {
	v.mu.Lock()
	v.cursorCol, v.cursorRow = col, row
	v.mu.Unlock()
	return nil
}

//ShowCursor records the cursor visibility for the next Flush
func (v *ConsoleView) ShowCursor(visible bool) error {
	v.mu.Lock()
	v.cursorVisible = visible
	v.mu.Unlock()
	return nil
}

//Flush renders the cell buffer and hands the whole frame to the gui
//as one update, coloring live glyphs on the way out
func (v *ConsoleView) Flush() error {
	var b bytes.Buffer
	for i, line := range v.cells {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			if filler, ok := v.fillers[r]; ok {
				b.WriteString(filler)
			} else {
				b.WriteRune(r)
			}
		}
	}

	v.mu.Lock()
	v.frame = b.String()
	v.mu.Unlock()

	v.g.Update(v.redraw)
	return nil
}

//redraw writes the last flushed frame into the screen view
//runs on the gui loop
func (v *ConsoleView) redraw(g *gocui.Gui) error {
	sv, err := g.View("screen")
	if err != nil {
		//layout has not created the view yet, skip this frame
		return nil
	}
	v.mu.Lock()
	frame := v.frame
	col, row, visible := v.cursorCol, v.cursorRow, v.cursorVisible
	v.mu.Unlock()

	sv.Clear()
	_, _ = fmt.Fprint(sv, frame)
	_ = sv.SetCursor(col, row)
	g.Cursor = visible
	return nil
}

func (v *ConsoleView) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if sv, err := g.SetView("screen", -1, -1, maxX, maxY-helpRows); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		sv.Frame = false
	}
	if err := v.redraw(g); err != nil {
		return err
	}

	if hv, err := g.SetView("help", -1, maxY-helpRows-1, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		hv.Frame = false
		_, _ = fmt.Fprintln(hv, v.helpLine())
	}
	return nil
}

//helpLine builds the keybinding bar from the binding table
func (v *ConsoleView) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	first := true
	for _, kb := range v.bindings {
		if kb.descr == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}

//Start runs the gui main loop, blocks until Quit
func (v *ConsoleView) Start() {
	if err := v.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	v.g.Close()
}

//Quit asks the gui main loop to exit
func (v *ConsoleView) Quit() {
	v.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Close restores the terminal without entering the main loop
//used when startup checks fail before the session begins
func (v *ConsoleView) Close() {
	v.g.Close()
}

func makeCells(cols int, rows int) [][]rune {
	//undersized terminals are rejected before the session starts,
	//just avoid a negative allocation here
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = make([]rune, cols)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return cells
}
