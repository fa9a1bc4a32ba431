// Package kv is the persisted key-value backend behind the local mirror and
// the session manager. Production runs on Redis; tests use the in-memory
// implementation.
package kv

// Namespaced keys for all locally persisted state.
const (
	KeyMirrorUsers  = "pdvstar_db_users"
	KeyMirrorEvents = "pdvstar_db_events"
	KeyUserSession  = "pdvstar_user_session"
	KeyAdminSession = "pdvstar_admin_session"
	KeyPassPrefix   = "pdvstar_pass_" // + userID
)

// Store is a minimal string key-value contract. Get returns ok=false when the
// key is absent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}
