package models

// User is the persisted account record.
type User struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// UserView is the sanitized shape returned to clients.
type UserView struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// View strips the credential from a User.
func (u *User) View() *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
