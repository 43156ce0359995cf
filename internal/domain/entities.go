package domain

import "time"

// Direction tells which side of a code/spec pair a resolution is heading to.
type Direction int

const (
	// ToSpec means the open file is a code file and its spec is wanted.
	ToSpec Direction = iota
	// ToCode means the open file is a spec file and the code it tests is wanted.
	ToCode
)

func (d Direction) String() string {
	switch d {
	case ToSpec:
		return "spec"
	case ToCode:
		return "code"
	default:
		return "unknown"
	}
}

// Rating is a candidate path scored against the originating path.
type Rating struct {
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

// Resolution is the outcome of one lookup.
type Resolution struct {
	Direction  Direction `json:"-"`
	Opened     string    `json:"opened"`
	Target     string    `json:"target"`
	Candidates []string  `json:"candidates"`
	Options    []string  `json:"options"`
}

// Ambiguous reports whether a human has to pick among Options.
func (r Resolution) Ambiguous() bool {
	return len(r.Options) > 1
}

// Jump records a completed jump between a file and its counterpart.
type Jump struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Direction Direction `json:"direction"`
	At        time.Time `json:"at"`
}
