package creator

// Segment is a fixed display label covering a run of day parts. These labels
// do not move with the seasons and are kept apart from DayNightSplit.
type Segment struct {
	Name      string `json:"name"`
	FirstPart int    `json:"firstPart"`
	LastPart  int    `json:"lastPart"`
}

// Segments covers all 18 parts in order
var Segments = [4]Segment{
	{Name: "Day", FirstPart: 1, LastPart: 4},
	{Name: "Evening", FirstPart: 5, LastPart: 8},
	{Name: "Night", FirstPart: 9, LastPart: 13},
	{Name: "Morning", FirstPart: 14, LastPart: 18},
}

// SegmentFor returns the fixed segment that contains a part of the day
func SegmentFor(part int) Segment {
	p := clamp(part, 1, PartsPerDay)
	for _, s := range Segments {
		if p <= s.LastPart {
			return s
		}
	}
	return Segments[len(Segments)-1]
}
