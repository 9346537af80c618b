package sequencer

// DefaultCurrentTime is the playhead marker written into new documents
const DefaultCurrentTime = 10

// Document is the file a costume player loads
type Document struct {
	Music   Music   `json:"music"`
	Pattern Pattern `json:"pattern"`
}

// Music references the audio track the pattern is timed against
type Music struct {
	Filename string `json:"filename"`
}

// Pattern holds every zone's timeline
type Pattern struct {
	Seqs        []Zone `json:"seqs"`
	CurrentTime int    `json:"currentTime"`
}

// Duration returns the end of the longest zone timeline
func (d *Document) Duration() int {
	end := 0
	for i := range d.Pattern.Seqs {
		end = max(end, d.Pattern.Seqs[i].End())
	}
	return end
}
