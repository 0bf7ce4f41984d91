package models

import (
	"strings"
	"time"
)

// StageGroup is the only stage scored with the group tier; every other
// stage value (round_of_32, quarterfinal, final, ...) scores as knockout.
const StageGroup = "group"

// Request types

type RegisterRequest struct {
	Name string `json:"name"`
}

// Score fields are pointers so that missing fields can be told apart
// from a legitimate 0:0 prediction.
type SubmitTipRequest struct {
	MatchID string `json:"matchId"`
	ScoreA  *int   `json:"scoreA"`
	ScoreB  *int   `json:"scoreB"`
}

type SetResultRequest struct {
	MatchID string `json:"matchId"`
	ResA    *int   `json:"resA"`
	ResB    *int   `json:"resB"`
}

type SetTeamsRequest struct {
	MatchID string `json:"matchId"`
	TeamA   string `json:"teamA"`
	CodeA   string `json:"codeA"`
	TeamB   string `json:"teamB"`
	CodeB   string `json:"codeB"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type PingResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"-"`
}

type Match struct {
	ID          string     `json:"id"`
	TeamA       string     `json:"teamA"`
	CodeA       string     `json:"codeA"`
	TeamB       string     `json:"teamB"`
	CodeB       string     `json:"codeB"`
	Kickoff     time.Time  `json:"kickoff"`
	Stage       string     `json:"stage"`
	ResA        *int       `json:"-"`
	ResB        *int       `json:"-"`
	ResultSetAt *time.Time `json:"-"`
}

// Started reports whether the match is locked for tip writes. The kickoff
// instant itself counts as started.
func (m Match) Started(now time.Time) bool {
	return !now.Before(m.Kickoff)
}

// HasResult reports whether both result scores are set. The store never
// writes a half-set result.
func (m Match) HasResult() bool {
	return m.ResA != nil && m.ResB != nil
}

type Tip struct {
	UserID    string    `json:"-"`
	MatchID   string    `json:"matchId"`
	ScoreA    int       `json:"scoreA"`
	ScoreB    int       `json:"scoreB"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// MatchResult is the public shape of a finished score.
type MatchResult struct {
	A int `json:"a"`
	B int `json:"b"`
}

// MatchView is the match representation served to clients.
type MatchView struct {
	ID         string       `json:"id"`
	TeamA      string       `json:"teamA"`
	CodeA      string       `json:"codeA"`
	TeamB      string       `json:"teamB"`
	CodeB      string       `json:"codeB"`
	Kickoff    time.Time    `json:"kickoff"`
	KickoffIn  string       `json:"kickoffIn"`
	Stage      string       `json:"stage"`
	StageLabel string       `json:"stageLabel"`
	Started    bool         `json:"started"`
	Result     *MatchResult `json:"result"`
}

// FinishedTip is one leaderboard join row: a tip against a match whose
// result is fully set.
type FinishedTip struct {
	UserID string
	Stage  string
	TipA   int
	TipB   int
	ResA   int
	ResB   int
}

type LeaderboardEntry struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Points  int    `json:"points"`
	Tips    int    `json:"tips"`
	Exact   int    `json:"exact"`
	Winners int    `json:"winners"`
	Rank    int    `json:"rank"`
}

// NormalizeName trims a display or team name and collapses interior
// whitespace runs to single spaces.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StageLabel returns the display label for a stage.
func StageLabel(stage string) string {
	if stage == StageGroup {
		return "Gruppenphase"
	}
	return "K.O.-Phase"
}
