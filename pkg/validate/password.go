package validate

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordConfig describes the password policy. Each requirement can be
// toggled independently.
type PasswordConfig struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSpecial   bool
}

// DefaultPasswordConfig returns the standard policy: minimum 8 characters
// with every character class required.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

// PasswordResult holds the outcome of a password policy check. Errors lists
// every failed requirement in a fixed order (length, uppercase, lowercase,
// numbers, special characters) so output is deterministic.
type PasswordResult struct {
	Valid  bool
	Errors []string
}

// CheckPassword evaluates password against cfg and collects all failed
// requirements rather than stopping at the first one.
func CheckPassword(password string, cfg PasswordConfig) PasswordResult {
	var errs []string

	if len(password) < cfg.MinLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters long", cfg.MinLength))
	}
	if cfg.RequireUppercase && !uppercaseRegex.MatchString(password) {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if cfg.RequireLowercase && !lowercaseRegex.MatchString(password) {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if cfg.RequireNumbers && !digitRegex.MatchString(password) {
		errs = append(errs, "password must contain at least one number")
	}
	if cfg.RequireSpecial && !specialCharRegex.MatchString(password) {
		errs = append(errs, "password must contain at least one special character")
	}

	return PasswordResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
