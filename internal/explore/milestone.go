package explore

// Milestone is a one-time transition in the progression.
type Milestone int

const (
	FlagshipUnlocked Milestone = iota + 1 // Every flagship explored; supporting tier revealed
	MissionComplete                       // Every project explored
	NudgeLatched                          // User left the section with the mission unfinished
)

func (m Milestone) String() string {
	switch m {
	case FlagshipUnlocked:
		return "flagship_unlocked"
	case MissionComplete:
		return "mission_complete"
	case NudgeLatched:
		return "nudge_latched"
	default:
		return "unknown"
	}
}

// Milestones returns the transitions that happened between prev and next, in order.
// Because exploration only grows, each milestone is reported at most once per session.
func Milestones(prev, next State) []Milestone {
	var out []Milestone
	if !prev.FlagshipComplete() && next.FlagshipComplete() {
		out = append(out, FlagshipUnlocked)
	}
	if !prev.MissionComplete() && next.MissionComplete() {
		out = append(out, MissionComplete)
	}
	if !prev.NudgeShown() && next.NudgeShown() {
		out = append(out, NudgeLatched)
	}
	return out
}
