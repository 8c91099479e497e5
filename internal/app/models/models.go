package models

import "strings"

// UserRole defines the closed set of user roles
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleAlumni  UserRole = "ALUMNI"
	RoleAdmin   UserRole = "ADMIN"
)

// ParseUserRole normalizes a caller-supplied role to the closed enum.
// Only STUDENT and ALUMNI are valid at the signup boundary; ADMIN accounts
// are seeded, never self-registered.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleAlumni:
		return RoleAlumni, true
	}
	return "", false
}

// EventCategory defines the closed set of event categories
type EventCategory string

const (
	CategoryTechnical EventCategory = "TECHNICAL"
	CategoryCultural  EventCategory = "CULTURAL"
	CategorySports    EventCategory = "SPORTS"
	CategoryAcademic  EventCategory = "ACADEMIC"
	CategoryOther     EventCategory = "OTHER"
)

// ValidEventCategory reports whether c is a known category
func ValidEventCategory(c string) bool {
	switch EventCategory(c) {
	case CategoryTechnical, CategoryCultural, CategorySports, CategoryAcademic, CategoryOther:
		return true
	}
	return false
}

// ProjectStatus defines the closed set of project states
type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "OPEN"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// ValidProjectStatus reports whether s is a known project status
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectOpen, ProjectInProgress, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project member roles
const (
	MemberRoleLeader = "leader"
	MemberRoleMember = "member"
)

// MentorshipStatus defines the closed set of mentorship request states
type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "PENDING"
	MentorshipAccepted MentorshipStatus = "ACCEPTED"
	MentorshipComplete MentorshipStatus = "COMPLETED"
	MentorshipDeclined MentorshipStatus = "DECLINED"
)

// ValidMentorshipStatus reports whether s is a known mentorship status
func ValidMentorshipStatus(s string) bool {
	switch MentorshipStatus(s) {
	case MentorshipPending, MentorshipAccepted, MentorshipComplete, MentorshipDeclined:
		return true
	}
	return false
}

// mentorshipTransitions is the allowed transition table. DECLINED and
// COMPLETED are terminal; nothing returns to PENDING.
var mentorshipTransitions = map[MentorshipStatus][]MentorshipStatus{
	MentorshipPending:  {MentorshipAccepted, MentorshipDeclined},
	MentorshipAccepted: {MentorshipComplete},
}

// CanTransitionMentorship reports whether moving from one status to the
// other is allowed.
func CanTransitionMentorship(from, to MentorshipStatus) bool {
	for _, next := range mentorshipTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
