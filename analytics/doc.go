/*
Package analytics computes derived, read-only views over poll data.

Every function here is pure: it takes snapshots of polls or ledger
entries and never mutates store state. (The one sanctioned read-side
mutation in the system - lazy deadline locking - lives in the store's
read path, not here.)

  - TotalVotes: sum of option tallies, equal to the ledger length
  - PopularPolls: top-n by total votes, stable order on ties
  - VotesByUser: ledger grouped by voter in first-seen order
  - CategoryHistogram: polls per category, "" -> "Uncategorized"
*/
package analytics
