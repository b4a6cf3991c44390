package users

// RegisterRequest carries the fields needed to register a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the repository-level payload with the password already hashed
type CreateUserRequest struct {
	Name         string
	Email        string
	PasswordHash string
}

// UpdateProfileRequest carries a user's player attributes. Omitted
// fields clear the stored value.
type UpdateProfileRequest struct {
	SkillLevel        *int32  `json:"skill_level"`
	Height            *int32  `json:"height"`
	Weight            *int32  `json:"weight"`
	Age               *int32  `json:"age"`
	PreferredPosition *string `json:"preferred_position"`
	Gender            *string `json:"gender"`
	ImageURL          *string `json:"image_url"`
	Phone             *string `json:"phone"`
}
