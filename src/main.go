package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/joho/godotenv"

	"lifeterm/src/board"
	"lifeterm/src/session"
	"lifeterm/src/view"
)

//smallest playable field
const (
	minBoardWidth  = 20
	minBoardHeight = 5
)

//decoration around the field: side borders, top and bottom border
//plus the status line under the board
const (
	decorCols = 2
	decorRows = 3
)

var engines = map[string]func(width int, height int) *board.Board{
	"sparse": board.New,
	"dense":  board.NewDense,
}

type envOptions struct {
	width  int
	height int
	delay  int
	ascii  bool
	engine string
}

func main() {
	eo := initOptions()

	v := view.NewConsoleView()
	cols, rows := v.Size()

	w, h := eo.width, eo.height
	if w == 0 {
		w = cols - decorCols
	}
	if h == 0 {
		h = rows - decorRows
	}
	if w < minBoardWidth || h < minBoardHeight || w+decorCols > cols || h+decorRows > rows {
		v.Close()
		fmt.Fprintf(os.Stderr,
			"lifeterm: a %vx%v board does not fit: need at least %vx%v characters, the terminal offers %vx%v\n",
			w, h, minBoardWidth+decorCols, minBoardHeight+decorRows, cols, rows)
		os.Exit(1)
	}

	b := engines[eo.engine](w, h)
	b.Randomize()

	glyph := session.GlyphUnicode
	if eo.ascii {
		glyph = session.GlyphASCII
	}
	s := session.New(b, v, v, session.Options{Delay: eo.delay, Glyph: glyph})

	go func() {
		s.Run()
		v.Quit()
	}()
	v.Start()
}

func initOptions() *envOptions {
	//an optional .env provides the defaults, flags win
	_ = godotenv.Load()
	eo := &envOptions{
		width:  envInt("LIFETERM_WIDTH", 0),
		height: envInt("LIFETERM_HEIGHT", 0),
		delay:  envInt("LIFETERM_DELAY", session.DefFrameDelay),
		engine: envString("LIFETERM_ENGINE", "sparse"),
	}

	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.width, "x", "width", "Width of the board (0 fits the terminal)")
	flaggy.Int(&eo.height, "y", "height", "Height of the board (0 fits the terminal)")
	flaggy.Int(&eo.delay, "d", "delay", "Initial frame delay in milliseconds")
	flaggy.Bool(&eo.ascii, "a", "ascii", "Draw live cells with the ASCII glyph")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.Parse()

	if _, ok := engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	return eo
}

func envInt(name string, def int) int {
	s, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func envString(name string, def string) string {
	if s, ok := os.LookupEnv(name); ok {
		return s
	}
	return def
}
