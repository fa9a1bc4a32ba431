package models

import "time"

// User roles. Transitions only go upward (user → organizer); a role is never
// downgraded automatically.
const (
	RoleUser      = "user"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	Following     []string  `json:"following"`
	Role          string    `json:"role"`
	SpaceName     string    `json:"spaceName"`
	OrganizerName string    `json:"organizerName"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserPatch struct {
	Name          *string
	Phone         *string
	Email         *string
	Avatar        *string
	Following     *[]string
	Role          *string
	SpaceName     *string
	OrganizerName *string
}

// IsOrganizer reports whether the user may manage organizer-gated resources.
// Admins always qualify.
func (u User) IsOrganizer() bool {
	return u.Role == RoleOrganizer || u.Role == RoleAdmin
}
