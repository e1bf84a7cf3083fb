package model

import (
	"strconv"
	"time"
)

// User represents a Gerrit account.
type User struct {
	Name     string
	Username string
	Email    string
}

func (u User) String() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Change represents a Gerrit change at a point in time.
type Change struct {
	ID              string // <project>~<number>
	ChangeID        string // the Change-Id footer
	Number          int
	Project         string
	Branch          string
	Subject         string
	Status          string // NEW, MERGED, ABANDONED
	Owner           User
	CurrentRevision string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c Change) String() string {
	return c.Project + "~" + strconv.Itoa(c.Number)
}

// FileInfo describes one file touched by a change.
type FileInfo struct {
	Status        string // A, M, D, R, C
	LinesInserted int
	LinesDeleted  int
}

// ChangeComment is an inline comment already present on a change.
type ChangeComment struct {
	ID         string
	Path       string
	Line       int
	Message    string
	Author     User
	Unresolved bool
	UpdatedAt  time.Time
}

// ChangeMessage is one entry of a change's activity log.
type ChangeMessage struct {
	Author  User
	Message string
	Date    time.Time
}
