package domain

// User identifies the person this widget session belongs to.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// DisplayName returns the user's name, falling back to email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Profile holds optional company branding for the session.
type Profile struct {
	CompanyName string `json:"companyName,omitempty"`
	ImageURL    string `json:"image,omitempty"`
}

// Session captures who is using the widget. Set once at startup and
// immutable for the session lifetime, except Profile which the host may
// replace after a profile save.
type Session struct {
	User       User
	IsAdmin    bool
	Domain     string
	Profile    *Profile
	HasProfile bool
}
