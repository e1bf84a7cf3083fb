package gerrit

import (
	"time"

	"github.com/maxbolgarin/gerrev/internal/model"
)

// Gerrit timestamp format: UTC with nanoseconds, no zone designator.
const timestampLayout = "2006-01-02 15:04:05.000000000"

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type accountInfo struct {
	AccountID int    `json:"_account_id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

func (a accountInfo) toUser() model.User {
	return model.User{
		Name:     a.Name,
		Username: a.Username,
		Email:    a.Email,
	}
}

type changeInfo struct {
	ID              string      `json:"id"`
	ChangeID        string      `json:"change_id"`
	Number          int         `json:"_number"`
	Project         string      `json:"project"`
	Branch          string      `json:"branch"`
	Subject         string      `json:"subject"`
	Status          string      `json:"status"`
	Owner           accountInfo `json:"owner"`
	CurrentRevision string      `json:"current_revision"`
	Created         string      `json:"created"`
	Updated         string      `json:"updated"`
}

type fileInfo struct {
	Status        string `json:"status"`
	Binary        bool   `json:"binary"`
	LinesInserted int    `json:"lines_inserted"`
	LinesDeleted  int    `json:"lines_deleted"`
}

type commentInfo struct {
	ID         string      `json:"id"`
	Line       int         `json:"line"`
	Message    string      `json:"message"`
	Author     accountInfo `json:"author"`
	Unresolved bool        `json:"unresolved"`
	Updated    string      `json:"updated"`
}

type changeMessageInfo struct {
	Author  accountInfo `json:"author"`
	Date    string      `json:"date"`
	Message string      `json:"message"`
}

// diffInfo is the structured diff of one file: an ordered hunk sequence.
type diffInfo struct {
	Content []model.DiffHunk `json:"content"`
}
