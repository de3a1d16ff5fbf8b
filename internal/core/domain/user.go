package domain

import "strings"

// Role controls which routes an identity may reach.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleUser      Role = "USER"
)

var roleRank = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether r meets the required role. ADMIN covers MODERATOR,
// and both cover USER.
func (r Role) Satisfies(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// Title renders the role the way rejection messages use it ("Admin", "Moderator").
func (r Role) Title() string {
	s := strings.ToLower(string(r))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	ErrUserNotFound = NotFound("User not found")
	ErrUsersEmpty   = NotFound("Users not found")
	ErrEmailTaken   = Conflict("Email is already in use")
)

// User models an authenticated account.
type User struct {
	Record       `bson:",inline"`
	Name         string `json:"name" bson:"name" db:"name"`
	Lastname     string `json:"lastname" bson:"lastname" db:"lastname"`
	Email        string `json:"email" bson:"email" db:"email"`
	PasswordHash string `json:"-" bson:"password" db:"password"`
	Role         Role   `json:"role" bson:"role" db:"role"`
}
