package auth

// LoginResult is returned by Login.
type LoginResult struct {
	Token    string
	Username string
	Name     string
}
