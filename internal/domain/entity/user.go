package entity

// User is a storefront account. Email is the lookup key; it is not
// guaranteed to be unique.
type User struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        Role   `json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}
