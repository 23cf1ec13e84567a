package analytics

import (
	"testing"

	"github.com/Manojmaturi07/voteanalytics/models"
)

func pollWithVotes(id string, votes ...int) models.Poll {
	p := models.Poll{ID: id}
	for i, v := range votes {
		p.Options = append(p.Options, models.Option{ID: i + 1, Votes: v})
	}
	return p
}

func TestTotalVotes(t *testing.T) {
	tests := []struct {
		name string
		poll models.Poll
		want int
	}{
		{"no options", models.Poll{}, 0},
		{"zeroed options", pollWithVotes("a", 0, 0), 0},
		{"mixed tallies", pollWithVotes("a", 3, 0, 7), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalVotes(tt.poll); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPopularPolls(t *testing.T) {
	polls := []models.Poll{
		pollWithVotes("low", 1),
		pollWithVotes("high", 10, 5),
		pollWithVotes("mid", 4, 3),
		pollWithVotes("also-mid", 7),
	}

	top := PopularPolls(polls, 3)

	if len(top) != 3 {
		t.Fatalf("expected 3 polls, got %d", len(top))
	}
	if top[0].ID != "high" {
		t.Errorf("expected high first, got %s", top[0].ID)
	}
	// mid and also-mid tie at 7; stable sort keeps input order
	if top[1].ID != "mid" || top[2].ID != "also-mid" {
		t.Errorf("expected tie to keep input order, got %s then %s", top[1].ID, top[2].ID)
	}

	// Input slice is not reordered
	if polls[0].ID != "low" {
		t.Error("PopularPolls must not mutate its input")
	}
}

func TestPopularPolls_Clamping(t *testing.T) {
	polls := []models.Poll{pollWithVotes("a", 1), pollWithVotes("b", 2)}

	if got := PopularPolls(polls, 10); len(got) != 2 {
		t.Errorf("expected n to clamp to len, got %d", len(got))
	}
	if got := PopularPolls(polls, 0); len(got) != 0 {
		t.Errorf("expected empty result for n=0, got %d", len(got))
	}
	if got := PopularPolls(polls, -1); len(got) != 0 {
		t.Errorf("expected empty result for negative n, got %d", len(got))
	}
	if got := PopularPolls(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d", len(got))
	}
}

func TestVotesByUser(t *testing.T) {
	votes := []models.Vote{
		{UserID: "u1", Username: "alice", OptionID: 1},
		{UserID: "u2", Username: "bob", OptionID: 2},
		{UserID: "u1", Username: "alice", OptionID: 3},
	}

	grouped := VotesByUser(votes)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 voters, got %d", len(grouped))
	}
	if grouped[0].UserID != "u1" || grouped[1].UserID != "u2" {
		t.Error("expected voters in first-seen order")
	}
	if len(grouped[0].Votes) != 2 {
		t.Errorf("expected 2 votes for alice, got %d", len(grouped[0].Votes))
	}
	if len(grouped[1].Votes) != 1 {
		t.Errorf("expected 1 vote for bob, got %d", len(grouped[1].Votes))
	}
}

func TestVotesByUser_Empty(t *testing.T) {
	if got := VotesByUser(nil); len(got) != 0 {
		t.Errorf("expected empty grouping, got %d", len(got))
	}
}

func TestCategoryHistogram(t *testing.T) {
	polls := []models.Poll{
		{Category: "Food"},
		{Category: "Food"},
		{Category: "Tech"},
		{Category: ""},
	}

	hist := CategoryHistogram(polls)

	if hist["Food"] != 2 {
		t.Errorf("expected Food=2, got %d", hist["Food"])
	}
	if hist["Tech"] != 1 {
		t.Errorf("expected Tech=1, got %d", hist["Tech"])
	}
	if hist[models.CategoryNone] != 1 {
		t.Errorf("expected %s=1, got %d", models.CategoryNone, hist[models.CategoryNone])
	}
	if len(hist) != 3 {
		t.Errorf("expected 3 buckets, got %d", len(hist))
	}
}
