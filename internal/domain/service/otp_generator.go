package service

// OTPGenerator produces one-time codes for email verification and password
// reset flows.
type OTPGenerator interface {
	// Generate returns a fresh numeric one-time code.
	Generate() (string, error)
}
