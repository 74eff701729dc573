package domain

import (
	"time"
)

type Project struct {
	ID            string
	Name          string
	Phases        []Phase
	Risks         []Risk
	Budget        Budget
	Communication Communication
	TeamMembers   []TeamMember
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Phase is one step of a project timeline. Phases are created as part of
// the project template and mutated in place; they are never individually
// deleted, so a phase index is stable for the project's lifetime.
type Phase struct {
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	Duration    string // derived from dates when both are set, manual otherwise
	Content     string
	Attachments []Attachment
	Reviewers   []Reviewer
}

// Reviewer is a role-tagged approval record on a phase. A role appears at
// most once among a phase's reviewers. ReviewedAt is nil exactly while the
// status is pending and is restamped on every status change.
type Reviewer struct {
	ID         string
	Role       Role
	Status     ReviewStatus
	Comment    string
	ReviewedAt *time.Time
}

type TeamMember struct {
	Role             string
	Responsibilities []string
	Allocation       string
}

type Meeting struct {
	Title    string
	Schedule string
	Audience string
	Content  string
}

type Communication struct {
	Meetings     []Meeting
	Stakeholders []string
}
