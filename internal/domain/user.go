package domain

import "time"

// User is an account holder. Credentials and the recovery answer are stored
// as bcrypt hashes, never as plaintext. The recovery question/answer pair is
// optional: accounts created without one cannot use the reset flow.
type User struct {
	Username         string
	PasswordHash     string
	SecretQuestion   string
	SecretAnswerHash string
	CreatedAt        time.Time
}

// HasRecovery reports whether the account has a recovery question configured.
func (u *User) HasRecovery() bool {
	return u.SecretQuestion != "" && u.SecretAnswerHash != ""
}
