package creator

// Leader is the steward of one quarter of the year
type Leader struct {
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Representative string `json:"representative"`
	Color          string `json:"color"`
	FirstDay       int    `json:"firstDay"`
	LastDay        int    `json:"lastDay"`
}

// EraEnds holds the last day of each leader's quarter. The final quarter runs
// to the end of the 366-tick solar ring, so the plateaus are 91, 91, 91 and 93
// days long.
var EraEnds = [4]int{91, 182, 273, DaysInYear}

// Leaders are the four quarter stewards in year order
var Leaders = [4]Leader{
	{Index: 0, Name: "Melkeyal", Representative: "Adnarel", Color: "#4caf50", FirstDay: 1, LastDay: 91},
	{Index: 1, Name: "Helemmelek", Representative: "Iyasusael", Color: "#ffb300", FirstDay: 92, LastDay: 182},
	{Index: 2, Name: "Meleyal", Representative: "Iyelumiel", Color: "#e65100", FirstDay: 183, LastDay: 273},
	{Index: 3, Name: "Narel", Representative: "Zelebsel", Color: "#1e88e5", FirstDay: 274, LastDay: 366},
}

// LeaderIndex returns which quarter (0..3) a day of the year belongs to
func LeaderIndex(dayOfYear int) int {
	d := WrapDay(dayOfYear)
	switch {
	case d <= EraEnds[0]:
		return 0
	case d <= EraEnds[1]:
		return 1
	case d <= EraEnds[2]:
		return 2
	default:
		return 3
	}
}

// LeaderFor returns the leader record for a day of the year
func LeaderFor(dayOfYear int) Leader {
	return Leaders[LeaderIndex(dayOfYear)]
}

// IsEraBoundary reports whether the day closes a leader's quarter
func IsEraBoundary(dayOfYear int) bool {
	d := WrapDay(dayOfYear)
	for _, end := range EraEnds {
		if d == end {
			return true
		}
	}
	return false
}
