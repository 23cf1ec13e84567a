package analytics

import (
	"sort"

	"github.com/Manojmaturi07/voteanalytics/models"
)

// TotalVotes sums a poll's option tallies. When the tallies and the
// ledger agree, this equals len(poll.Votes).
func TotalVotes(poll models.Poll) int {
	total := 0
	for _, opt := range poll.Options {
		total += opt.Votes
	}
	return total
}

// PopularPolls returns the top n polls by total votes, descending. The
// sort is stable: ties keep their input order.
func PopularPolls(polls []models.Poll, n int) []models.Poll {
	sorted := make([]models.Poll, len(polls))
	copy(sorted, polls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return TotalVotes(sorted[i]) > TotalVotes(sorted[j])
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// VotesByUser groups ledger entries by voter, preserving the order in
// which voters first appear.
func VotesByUser(votes []models.Vote) []models.UserVotes {
	index := make(map[string]int)
	grouped := []models.UserVotes{}
	for _, v := range votes {
		i, ok := index[v.UserID]
		if !ok {
			i = len(grouped)
			index[v.UserID] = i
			grouped = append(grouped, models.UserVotes{UserID: v.UserID, Username: v.Username})
		}
		grouped[i].Votes = append(grouped[i].Votes, v)
	}
	return grouped
}

// CategoryHistogram counts polls per category. Polls without a category
// land in the models.CategoryNone bucket.
func CategoryHistogram(polls []models.Poll) map[string]int {
	hist := make(map[string]int)
	for _, p := range polls {
		category := p.Category
		if category == "" {
			category = models.CategoryNone
		}
		hist[category]++
	}
	return hist
}
