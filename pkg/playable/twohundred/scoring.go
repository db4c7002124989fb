package twohundred

// restrictedScore is the cumulative score at which a defending team can
// no longer bank trick points without having bid during the auction
const restrictedScore = 100

// RoundSummary describes how a completed round was scored
type RoundSummary struct {
	RoundNumber    int  `json:"roundNumber"`
	ContractorTeam Team `json:"contractorTeam"`
	Bid            *Bid `json:"bid"`
	// BidMade is true if the contractor's team took at least the bid in points
	BidMade     bool   `json:"bidMade"`
	TrickPoints [2]int `json:"trickPoints"`
	// KittyPoints are the points in the set-aside cards, credited to the defenders
	KittyPoints int `json:"kittyPoints"`
	// DefendersRestricted is true if the defending team's trick points were
	// withheld because they sat at 100 or more without bidding
	DefendersRestricted bool   `json:"defendersRestricted"`
	ScoreChanges        [2]int `json:"scoreChanges"`
	// Scores are the cumulative team scores after the round
	Scores [2]int `json:"scores"`
}

// scoreRound applies end-of-round scoring and returns the summary.
// defenderDidBid is whether either member of the defending team placed a
// bid (as opposed to only passing) during the auction. scores are the
// cumulative totals before this round.
func scoreRound(r *Round, defenderDidBid bool, scores [2]int) *RoundSummary {
	contractorTeam := r.ContractorTeam
	defenderTeam := contractorTeam.Other()

	contractorPts := r.TrickPoints[contractorTeam]
	defenderPts := r.TrickPoints[defenderTeam]
	kittyPts := r.KittyDiscards.PointValue()

	var changes [2]int

	bidMade := contractorPts >= r.WinningBid.Points
	if bidMade {
		changes[contractorTeam] = contractorPts
	} else {
		// in the box
		changes[contractorTeam] = -r.WinningBid.Points
	}

	// a defending team at 100 or more cannot ride passes to the target;
	// they must have bid to keep their trick points
	restricted := scores[defenderTeam] >= restrictedScore && !defenderDidBid
	if !restricted {
		changes[defenderTeam] = defenderPts
	}

	// kitty points are credited to the defenders even when restricted
	changes[defenderTeam] += kittyPts

	return &RoundSummary{
		RoundNumber:         r.RoundNumber,
		ContractorTeam:      contractorTeam,
		Bid:                 r.WinningBid,
		BidMade:             bidMade,
		TrickPoints:         r.TrickPoints,
		KittyPoints:         kittyPts,
		DefendersRestricted: restricted,
		ScoreChanges:        changes,
		Scores: [2]int{
			scores[0] + changes[0],
			scores[1] + changes[1],
		},
	}
}

// gameWinner determines whether the game has ended and who won.
// A team at or beyond the target wins; if both teams cross on the same
// deal the contractor's team takes the tie. Independently, a team boxed
// to -target loses outright while the opponents are at zero or better.
func gameWinner(scores [2]int, contractorTeam Team, target int) (Team, bool) {
	for _, t := range []Team{Team1, Team2} {
		if scores[t] <= -target && scores[t.Other()] >= 0 {
			return t.Other(), true
		}
	}

	reached1 := scores[Team1] >= target
	reached2 := scores[Team2] >= target

	switch {
	case reached1 && reached2:
		return contractorTeam, true
	case reached1:
		return Team1, true
	case reached2:
		return Team2, true
	}

	return 0, false
}
