package simulator

import "github.com/stitts-dev/cricket-sim/pkg/random"

// OutcomeKind classifies a delivery.
type OutcomeKind string

const (
	OutcomeDot    OutcomeKind = "dot"
	OutcomeRun    OutcomeKind = "run"
	OutcomeWicket OutcomeKind = "wicket"
)

// Outcome is one entry of the delivery event table.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Runs int         `json:"runs"`
	Text string      `json:"text"`
}

var (
	dotBall = Outcome{Kind: OutcomeDot, Runs: 0, Text: "No run, played straight to the fielder."}

	lowRunBand = []Outcome{
		{Kind: OutcomeRun, Runs: 1, Text: "Single taken, good rotation of strike."},
		{Kind: OutcomeRun, Runs: 1, Text: "Quick single! That was close."},
		{Kind: OutcomeRun, Runs: 2, Text: "Two runs, good running between the wickets."},
	}

	fours = []Outcome{
		{Kind: OutcomeRun, Runs: 4, Text: "FOUR! Beautiful shot through the covers!"},
		{Kind: OutcomeRun, Runs: 4, Text: "FOUR! Edged but flies to the boundary."},
	}

	six = Outcome{Kind: OutcomeRun, Runs: 6, Text: "SIX! That's huge! Out of the stadium!"}

	wickets = []Outcome{
		{Kind: OutcomeWicket, Runs: 0, Text: "OUT! Clean bowled! What a delivery!"},
		{Kind: OutcomeWicket, Runs: 0, Text: "OUT! Caught at mid-on! Gone!"},
	}
)

// DrawOutcome picks the next delivery. One uniform draw selects the band:
// above 0.95 a wicket, above 0.85 a six, above 0.75 a four, above 0.4 a
// single or two, otherwise a dot ball. A second draw picks the commentary
// variant inside bands that have more than one.
func DrawOutcome(src random.Source) Outcome {
	r := src.Float64()
	switch {
	case r > 0.95:
		return wickets[src.Intn(len(wickets))]
	case r > 0.85:
		return six
	case r > 0.75:
		return fours[src.Intn(len(fours))]
	case r > 0.4:
		return lowRunBand[src.Intn(len(lowRunBand))]
	default:
		return dotBall
	}
}
