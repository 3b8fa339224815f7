package web

import (
	"encoding/json"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// MessageType names a message on the wire.
type MessageType string

const (
	// Client to server
	MessageTypeStart MessageType = "start"
	MessageTypeKey   MessageType = "key"
	MessageTypeStop  MessageType = "stop"

	// Server to client
	MessageTypeHello MessageType = "hello"
	MessageTypeGames MessageType = "games"
	MessageTypeFrame MessageType = "frame"
	MessageTypeError MessageType = "error"
)

// InboundMessage is a client message; Payload is decoded by Type.
type InboundMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Envelope wraps every server message.
type Envelope struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// StartMessage asks the server to launch a game for this session.
type StartMessage struct {
	Game   string `json:"game"`
	Player string `json:"player"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// KeyMessage carries one key press by its browser key name.
type KeyMessage struct {
	Key string `json:"key"`
}

// GameEntry describes a playable game in the menu.
type GameEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Best        int    `json:"best"`
}

// HelloMessage is sent once after the socket opens.
type HelloMessage struct {
	Session string      `json:"session"`
	Games   []GameEntry `json:"games"`
	Palette []string    `json:"palette"`
}

// GamesMessage returns the client to the menu.
type GamesMessage struct {
	Games []GameEntry `json:"games"`
}

// Span is a run of same-colored characters within a row.
type Span struct {
	Text  string     `json:"t"`
	Color core.Color `json:"c"`
}

// FrameMessage is one rendered screen plus the HUD state.
type FrameMessage struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Rows      [][]Span `json:"rows"`
	Score     int      `json:"score"`
	Lives     int      `json:"lives"`
	Level     int      `json:"level"`
	HighScore int      `json:"high_score"`
	GameOver  bool     `json:"game_over"`
	Paused    bool     `json:"paused"`
}

// ErrorMessage reports a rejected request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// palette maps core.Color to CSS colors, indexed by color value.
var palette = []string{
	core.ColorDefault:       "#d0d0d0",
	core.ColorRed:           "#cd3131",
	core.ColorGreen:         "#0dbc79",
	core.ColorYellow:        "#e5e510",
	core.ColorBlue:          "#2472c8",
	core.ColorMagenta:       "#bc3fbc",
	core.ColorCyan:          "#11a8cd",
	core.ColorWhite:         "#e5e5e5",
	core.ColorBrightRed:     "#f14c4c",
	core.ColorBrightGreen:   "#23d18b",
	core.ColorBrightYellow:  "#f5f543",
	core.ColorBrightBlue:    "#3b8eea",
	core.ColorBrightMagenta: "#d670d6",
	core.ColorBrightCyan:    "#29b8db",
	core.ColorBrightWhite:   "#ffffff",
	core.ColorOrange:        "#ff8700",
	core.ColorGray:          "#8a8a8a",
}

// encodeFrame groups each screen row into color runs.
func encodeFrame(s *core.Screen, st core.GameState, highScore int) FrameMessage {
	rows := make([][]Span, s.Height())
	for y := range s.Height() {
		var spans []Span
		var run []rune
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color && len(run) > 0 {
				spans = append(spans, Span{Text: string(run), Color: color})
				run = run[:0]
			}
			color = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			spans = append(spans, Span{Text: string(run), Color: color})
		}
		rows[y] = spans
	}

	return FrameMessage{
		Width:     s.Width(),
		Height:    s.Height(),
		Rows:      rows,
		Score:     st.Score,
		Lives:     st.Lives,
		Level:     st.Level,
		HighScore: max(highScore, st.Score),
		GameOver:  st.GameOver,
		Paused:    st.Paused,
	}
}
