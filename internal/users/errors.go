package users

import "errors"

// ErrEmailTaken is returned when registering with an email that already
// has an account
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on a failed login
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidProfile is returned when a profile update carries
// out-of-range or unknown attribute values
var ErrInvalidProfile = errors.New("invalid profile")
