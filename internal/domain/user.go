package domain

// UserRole enumerates platform roles.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
)

// ProgramTier classifies programs by intensity and commitment.
type ProgramTier string

const (
	TierNano      ProgramTier = "Nano"
	TierSprint    ProgramTier = "Sprint"
	TierPathway   ProgramTier = "Pathway"
	TierLaunchpad ProgramTier = "Launchpad"
)

// Tiers lists all program tiers in increasing order of intensity.
var Tiers = []ProgramTier{TierNano, TierSprint, TierPathway, TierLaunchpad}

// Valid reports whether the tier is one of the four known tiers.
func (t ProgramTier) Valid() bool {
	switch t {
	case TierNano, TierSprint, TierPathway, TierLaunchpad:
		return true
	}
	return false
}

// User is the identity record for students, faculty, and administrators.
// EnrolledProgram is unset until the user enrolls; Progress and HoursLearned
// only carry meaning for students.
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Role            UserRole    `json:"role"`
	EnrolledProgram ProgramTier `json:"enrolledProgram,omitempty"`
	Progress        int         `json:"progress,omitempty"`
	HoursLearned    int         `json:"hoursLearned,omitempty"`
}
