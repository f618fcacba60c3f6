package replay

// Frame records one tick's input and timestep
type Frame struct {
	F  int     `json:"f"`           // Tick number
	DT float64 `json:"dt"`          // Timestep in seconds
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	J  bool    `json:"j,omitempty"` // Jump
}

// Recording contains all data needed to replay a simulation session.
// Digest is the xxhash fold of every committed tick state; replaying the
// frames against the same world must reproduce it exactly.
type Recording struct {
	Version string  `json:"version"`
	ID      string  `json:"id"`
	World   string  `json:"world"`
	Created string  `json:"created"`
	Frames  []Frame `json:"frames"`
	Digest  string  `json:"digest"`
}
