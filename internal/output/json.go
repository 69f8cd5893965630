package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONFrame is the JSON form of a Frame.
type JSONFrame struct {
	Turn      int                        `json:"turn"`
	Player    string                     `json:"player"`
	Side      chess.Side                 `json:"side"`
	State     engine.State               `json:"state"`
	Winner    string                     `json:"winner,omitempty"`
	Placement string                     `json:"placement"`
	Board     chess.Snapshot             `json:"board"`
	Selected  *chess.Coord               `json:"selected,omitempty"`
	Moves     map[string]chess.MoveClass `json:"moves,omitempty"`
	Messages  []string                   `json:"messages,omitempty"`
}

// JSONOutput holds multiple frames for array output.
type JSONOutput struct {
	Frames []*JSONFrame `json:"frames"`
}

// FrameToJSON converts a frame to its JSON form.
func FrameToJSON(f Frame) *JSONFrame {
	jf := &JSONFrame{
		Turn:      f.Turn,
		Player:    f.Player,
		Side:      f.Side,
		State:     f.State,
		Winner:    f.Winner,
		Placement: f.Board.Placement(),
		Board:     f.Board,
		Selected:  f.Selected,
		Messages:  f.Messages,
	}
	if len(f.Moves) > 0 {
		jf.Moves = f.Moves.Notation()
	}
	return jf
}

// OutputFrameJSON writes a single frame as indented JSON.
func OutputFrameJSON(w io.Writer, f Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FrameToJSON(f))
}
