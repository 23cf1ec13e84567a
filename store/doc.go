/*
Package store implements the poll, user, and vote domain logic over a SQL
database. It is the only component holding shared mutable state; handlers
stay thin and every operation receives the caller's models.Identity
explicitly.

# Role Gating

Mutating operations fail closed: admin-only operations return
ErrUnauthorized for anyone else, voting requires a user identity
(ErrNotAuthenticated), and read-only queries are open.

# Poll Lifecycle

Polls are created unpublished and unlocked with 2-10 options whose ids
are position-derived (1..n). Once a deadline passes, any read that
touches the poll flips is_locked as a side effect (lazy expiry); the flag
is monotonic and never reverts. Editing the option list renumbers ids and
carries tallies over by id, which - because ids are positional - means
the option at position i keeps the count the old position i had.

# Vote Ledger

SubmitVote checks its preconditions in a fixed order:

 1. caller is an authenticated user (ErrNotAuthenticated)
 2. poll exists (ErrPollNotFound)
 3. caller has not voted on it (ErrAlreadyVoted)
 4. poll is not locked (ErrPollLocked)
 5. deadline has not passed - expiry locks the poll, then ErrPollExpired
 6. option exists (ErrInvalidOption)

On success the option tally increment, the ledger append, and the
(user, poll) uniqueness entry commit in one transaction. The ledger's
(poll_id, user_id) primary key backstops step 3 against races, and the
option-row update serializes concurrent votes on the same poll while
votes on different polls proceed independently.

# Errors

All domain conditions are sentinel errors (errors.Is-friendly); rejected
inputs are *ValidationError values carrying the field and reason.
Validation always runs before the first write.
*/
package store
