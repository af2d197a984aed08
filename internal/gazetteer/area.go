package gazetteer

// Kind values classify gazetteer entries.
const (
	KindBorough      = "borough"
	KindNeighborhood = "neighborhood"
	KindArea         = "area"
)

// CrowdLevels holds 1-5 foot-traffic estimates per time bucket. Weekend
// overrides the time-of-day value when it applies.
type CrowdLevels struct {
	Morning   int
	Afternoon int
	Evening   int
	Weekend   int
}

// Area is one static gazetteer entry. The table is loaded at startup and
// never mutated.
type Area struct {
	Name            string
	Kind            string
	Characteristics []string
	Neighbors       []string
	PopularFor      []string
	CrowdLevels     CrowdLevels
}

// CrowdLevelFor returns the estimate for a bucket produced by
// utils.CrowdBucket. Unknown buckets read as afternoon.
func (a Area) CrowdLevelFor(bucket string) int {
	switch bucket {
	case "morning":
		return a.CrowdLevels.Morning
	case "afternoon":
		return a.CrowdLevels.Afternoon
	case "evening":
		return a.CrowdLevels.Evening
	case "weekend":
		return a.CrowdLevels.Weekend
	default:
		return a.CrowdLevels.Afternoon
	}
}
