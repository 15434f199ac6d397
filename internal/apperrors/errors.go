package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateEmail indicates that the email already belongs to an account.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateCode indicates that the currency code already exists.
var ErrDuplicateCode = errors.New("currency code already exists")

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so login failures carry no enumeration signal.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbidden indicates the caller lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrLastAdmin indicates an attempt to demote the sole remaining admin.
var ErrLastAdmin = errors.New("cannot remove the last admin")

// ErrSessionExpired indicates the presented session token has expired.
var ErrSessionExpired = errors.New("session expired")

// ErrPasswordTooShort indicates the password fails the minimum length check.
var ErrPasswordTooShort = errors.New("password too short")

// ErrPasswordMismatch indicates the confirmation did not match the password.
var ErrPasswordMismatch = errors.New("password confirmation mismatch")
