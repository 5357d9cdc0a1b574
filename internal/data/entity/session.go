package entity

// Session mirrors the stub authentication keys kept in storage.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Email         string `json:"email"`
}

// DemoAccount is the single credential set accepted by the login stub.
type DemoAccount struct {
	Username     string
	Email        string
	PasswordHash string
}
