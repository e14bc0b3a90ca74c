package model

// ChatAdmin is one entry of a chat's administrator list as reported by
// the platform. IsOwner is the platform's own creator flag.
type ChatAdmin struct {
	UserID   int64
	Username string
	IsOwner  bool
}
