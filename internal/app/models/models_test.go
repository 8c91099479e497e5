package models

import "testing"

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		input string
		role  UserRole
		ok    bool
	}{
		{input: "STUDENT", role: RoleStudent, ok: true},
		{input: "student", role: RoleStudent, ok: true},
		{input: " Alumni ", role: RoleAlumni, ok: true},
		{input: "ADMIN", ok: false},
		{input: "professor", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		role, ok := ParseUserRole(tt.input)
		if ok != tt.ok {
			t.Fatalf("ParseUserRole(%q): expected ok=%v, got %v", tt.input, tt.ok, ok)
		}
		if ok && role != tt.role {
			t.Fatalf("ParseUserRole(%q): expected %q, got %q", tt.input, tt.role, role)
		}
	}
}

func TestValidEventCategory(t *testing.T) {
	for _, c := range []string{"TECHNICAL", "CULTURAL", "SPORTS", "ACADEMIC", "OTHER"} {
		if !ValidEventCategory(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"technical", "PARTY", ""} {
		if ValidEventCategory(c) {
			t.Fatalf("expected %q to be invalid", c)
		}
	}
}

func TestCanTransitionMentorship(t *testing.T) {
	tests := []struct {
		from    MentorshipStatus
		to      MentorshipStatus
		allowed bool
	}{
		{MentorshipPending, MentorshipAccepted, true},
		{MentorshipPending, MentorshipDeclined, true},
		{MentorshipAccepted, MentorshipComplete, true},
		{MentorshipPending, MentorshipComplete, false},
		{MentorshipAccepted, MentorshipPending, false},
		{MentorshipDeclined, MentorshipAccepted, false},
		{MentorshipComplete, MentorshipPending, false},
	}

	for _, tt := range tests {
		if got := CanTransitionMentorship(tt.from, tt.to); got != tt.allowed {
			t.Fatalf("transition %s to %s: expected %v, got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}
