package store

const (
	KeyUser = "user:%s"

	// User records have no TTL; they live until the session is closed.
	TTLUser = 0
)
