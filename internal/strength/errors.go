package strength

import "errors"

var (
	// ErrEmptyPassword is returned by ValidatePassword for empty input.
	// Front ends recover from it by prompting again.
	ErrEmptyPassword = errors.New("please enter a password")

	// ErrClassifierUnavailable wraps the load failure of a handle in
	// StateFailed.
	ErrClassifierUnavailable = errors.New("strength classifier unavailable")

	errNilClassifier = errors.New("no classifier configured")
)

// ValidatePassword rejects input that should not reach the classifier.
// Check itself accepts any string; this is for callers at the UI boundary.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
