// Package roles holds the account role constants. It sits below both
// the middleware and the domain packages so either side can import it
// without depending on the other.
package roles

type Role string

const (
	Admin     Role = "ADMIN"
	Organizer Role = "ORGANIZER"
	User      Role = "USER"
	Sponsor   Role = "SPONSOR"
	Partner   Role = "PARTNER"
)

func IsValid(role string) bool {
	switch role {
	case string(User), string(Admin), string(Organizer), string(Sponsor), string(Partner):
		return true
	default:
		return false
	}
}
