package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Manojmaturi07/voteanalytics/models"
	"github.com/Manojmaturi07/voteanalytics/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different
// users neither lose increments nor duplicate ledger entries.
func TestConcurrentVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVotingHandler(conn, testutil.GetTestConfig())
	pollID := testutil.CreateTestPoll(t, conn, true, "A", "B", "C")

	numVoters := 10
	headers := make([]map[string]string, numVoters)
	for i := 0; i < numVoters; i++ {
		user := testutil.CreateTestUser(t, conn, fmt.Sprintf("voter%d", i), models.RoleUser)
		headers[i] = testutil.AuthHeader(t, user)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.SubmitVoteRequest{OptionID: idx%3 + 1}
			req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/vote", body, headers[idx])
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()

			withIdentity(handler.Vote)(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	// Ledger has exactly one entry per voter
	var ledgerCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1`, pollID).Scan(&ledgerCount); err != nil {
		t.Fatalf("Failed to count ledger entries: %v", err)
	}
	if ledgerCount != numVoters {
		t.Errorf("Expected %d ledger entries, got %d", numVoters, ledgerCount)
	}

	// Tally total equals ledger length: no lost or double-counted increments
	var tallyTotal int
	if err := conn.QueryRow(`SELECT SUM(votes) FROM option WHERE poll_id = $1`, pollID).Scan(&tallyTotal); err != nil {
		t.Fatalf("Failed to sum tallies: %v", err)
	}
	if tallyTotal != numVoters {
		t.Errorf("Expected tally total %d, got %d", numVoters, tallyTotal)
	}
}

// TestConcurrentDuplicateVotes verifies that one user racing themselves
// gets exactly one vote through.
func TestConcurrentDuplicateVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewVotingHandler(conn, testutil.GetTestConfig())
	pollID := testutil.CreateTestPoll(t, conn, true)
	user := testutil.CreateTestUser(t, conn, "racer", models.RoleUser)
	headers := testutil.AuthHeader(t, user)

	numAttempts := 5
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/vote",
				models.SubmitVoteRequest{OptionID: 1}, headers)
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()

			withIdentity(handler.Vote)(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}

	var ledgerCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2`,
		pollID, user.ID).Scan(&ledgerCount); err != nil {
		t.Fatalf("Failed to count ledger entries: %v", err)
	}
	if ledgerCount != 1 {
		t.Errorf("Expected 1 ledger entry, got %d", ledgerCount)
	}

	var tallyTotal int
	if err := conn.QueryRow(`SELECT SUM(votes) FROM option WHERE poll_id = $1`, pollID).Scan(&tallyTotal); err != nil {
		t.Fatalf("Failed to sum tallies: %v", err)
	}
	if tallyTotal != 1 {
		t.Errorf("Expected tally total 1, got %d", tallyTotal)
	}
}
