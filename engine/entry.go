package engine

import "encoding/json"

// Entry is one normalized (answer, clue) pair. Word contains only the
// letters A-Z; OriginalIndex is the entry's position in the raw input.
type Entry struct {
	Word          string `json:"word"`
	Clue          string `json:"clue"`
	OriginalIndex int    `json:"original_index"`
}

// Direction is the orientation of a placed answer.
type Direction int

const (
	Across Direction = iota
	Down
)

// delta returns the (row, col) step for one letter in this direction.
func (d Direction) delta() (int, int) {
	if d == Down {
		return 1, 0
	}
	return 0, 1
}

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// MarshalJSON encodes the direction as "across" or "down".
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "across" or "down".
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "down" {
		*d = Down
	} else {
		*d = Across
	}
	return nil
}

// Placement records where one answer lives in the layout. Row and Col are
// the top-left cell of the answer; Number is assigned by the numbering pass.
type Placement struct {
	Word       string    `json:"word"`
	Clue       string    `json:"clue"`
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	Direction  Direction `json:"direction"`
	EntryIndex int       `json:"entry_index"`
	Number     int       `json:"number"`
}

// ClueRef is one line of an ordered clue list.
type ClueRef struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Length int    `json:"length"`
}

// Layout is the result of a successful generation. Grid cells hold a single
// uppercase letter, or "" for a block. NumbersMap matches Grid dimensions;
// zero means the cell is unnumbered.
type Layout struct {
	Grid           [][]string  `json:"grid"`
	Placements     []Placement `json:"placements"`
	NumbersMap     [][]int     `json:"numbers_map"`
	AcrossClues    []ClueRef   `json:"across_clues"`
	DownClues      []ClueRef   `json:"down_clues"`
	RequestedCount int         `json:"requested_count"`
	Rows           int         `json:"rows"`
	Cols           int         `json:"cols"`
}
