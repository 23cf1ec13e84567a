package models

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CategoryNone is the histogram bucket for polls without a category.
const CategoryNone = "Uncategorized"

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreatePollRequest struct {
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Deadline time.Time `json:"deadline"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
}

// UpdatePollRequest carries a partial edit. Nil fields are left unchanged;
// a non-nil Options slice rewrites the whole option list.
type UpdatePollRequest struct {
	Question *string    `json:"question"`
	Options  []string   `json:"options"`
	Deadline *time.Time `json:"deadline"`
	Category *string    `json:"category"`
	Tags     []string   `json:"tags"`
}

type PublishPollRequest struct {
	Published bool `json:"published"`
}

type SubmitVoteRequest struct {
	OptionID int `json:"option_id"`
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}

type PopularPollsResponse struct {
	Polls []Poll `json:"polls"`
}

type CategoryHistogramResponse struct {
	Categories map[string]int `json:"categories"`
}

type VotersResponse struct {
	Voters []UserVotes `json:"voters"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Option struct {
	ID    int    `json:"id"` // 1-based, position-derived
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Vote is an append-only ledger entry. Username, Name and OptionText are
// snapshots taken at voting time so the ledger survives later edits.
type Vote struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	OptionID   int       `json:"option_id"`
	OptionText string    `json:"option_text"`
	VotedAt    time.Time `json:"voted_at"`
}

type Poll struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Options     []Option  `json:"options"`
	Deadline    time.Time `json:"deadline"`
	IsLocked    bool      `json:"is_locked"`
	IsPublished bool      `json:"is_published"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	Votes       []Vote    `json:"votes,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// UserVotes groups ledger entries for one voter.
type UserVotes struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Votes    []Vote `json:"votes"`
}

// Identity is the caller's resolved role context for a single request.
// The zero value is the anonymous caller.
type Identity struct {
	UserID   string
	Username string
	Name     string
	Role     string
}

func (i Identity) IsAnonymous() bool { return i.UserID == "" }
func (i Identity) IsUser() bool      { return i.Role == RoleUser }
func (i Identity) IsAdmin() bool     { return i.Role == RoleAdmin }
