package model

// NoteEvent is a closed note interval reconstructed from a note-on/note-off
// pair. StartTick and EndTick are absolute ticks from the start of the file;
// EndTick >= StartTick always holds (zero-length notes are permitted).
// Channel and TrackIdx are fixed at pairing time and never change.
type NoteEvent struct {
	Pitch     uint8
	Velocity  uint8
	StartTick int64
	EndTick   int64
	Channel   uint8
	TrackIdx  int
}

// Duration returns the note length in ticks.
func (n *NoteEvent) Duration() int64 {
	return n.EndTick - n.StartTick
}
