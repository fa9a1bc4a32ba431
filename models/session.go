package models

// UserSession is the persisted payload for an authenticated end user. Expiry
// is an absolute instant in epoch milliseconds; a stored session whose expiry
// has passed is treated as absent and purged on the next read.
type UserSession struct {
	User   User  `json:"user"`
	Expiry int64 `json:"expiry"`
}

// AdminSession carries only an authenticated flag, not a principal record.
type AdminSession struct {
	Authenticated bool  `json:"user"`
	Expiry        int64 `json:"expiry"`
}
