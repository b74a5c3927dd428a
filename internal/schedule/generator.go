package schedule

import (
	"github.com/google/uuid"
)

// matchupNamespace seeds name-based matchup and event IDs so that regenerating
// from identical inputs yields identical rows.
var matchupNamespace = uuid.MustParse("b4a9f1de-3c52-49a7-9d1c-6f0e8b72a4d1")

// GenerateMatchups produces the exhaustive round-robin slate for a season.
// Teams are partitioned by category, then by group within the category (teams
// without a group form one implicit group), and every unique unordered pair
// within a partition becomes one unplaced matchup: n teams yield n·(n−1)/2.
//
// Output order is deterministic for a given team order. Groups of zero or one
// team simply contribute nothing; that is not an error.
func GenerateMatchups(seasonID string, teams []Team) []Matchup {
	type partitionKey struct {
		category string
		group    string
	}

	var order []partitionKey
	partitions := make(map[partitionKey][]Team)
	for _, t := range teams {
		key := partitionKey{category: t.CategoryID, group: t.GroupID}
		if _, seen := partitions[key]; !seen {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], t)
	}

	var matchups []Matchup
	for _, key := range order {
		members := partitions[key]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				matchups = append(matchups, Matchup{
					ID:         MatchupID(seasonID, a.ID, b.ID),
					SeasonID:   seasonID,
					CategoryID: key.category,
					TeamA:      a,
					TeamB:      b,
				})
			}
		}
	}
	return matchups
}

// MatchupID derives a stable identifier for the unordered team pair within a
// season. The pair is normalized so the ID is independent of argument order.
func MatchupID(seasonID, teamA, teamB string) string {
	if teamA > teamB {
		teamA, teamB = teamB, teamA
	}
	return uuid.NewSHA1(matchupNamespace, []byte(seasonID+"/"+teamA+"/"+teamB)).String()
}

// EventID derives a stable identifier for the auto-created event on a date.
func EventID(seasonID, date string) string {
	return uuid.NewSHA1(matchupNamespace, []byte(seasonID+"/event/"+date)).String()
}
