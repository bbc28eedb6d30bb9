package directory

// Repo is the lookup boundary the authentication service depends on.
// Email matching is case-insensitive; implementations own that rule.
type Repo interface {
	Upsert(user *User) error
	GetByEmail(email string) (*User, error)
	Delete(email string) error
}
