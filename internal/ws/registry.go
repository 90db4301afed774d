package ws

// Registry maps authenticated users to their active connection and back.
// Both directions are updated together. It is owned by the hub run loop:
// every mutation and lookup happens on that single goroutine, so the maps
// carry no lock.
type Registry struct {
	userConn map[string]string
	connUser map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		userConn: make(map[string]string),
		connUser: make(map[string]string),
	}
}

// Register maps userID to connID, replacing any previous connection for
// the same user. The replaced connection is not closed.
func (r *Registry) Register(userID, connID string) {
	if prev, ok := r.userConn[userID]; ok {
		delete(r.connUser, prev)
	}
	r.userConn[userID] = connID
	r.connUser[connID] = userID
}

// Unregister removes the mapping owned by connID. Unknown connection ids
// are a no-op: disconnects of unauthenticated or already-replaced
// connections are normal.
func (r *Registry) Unregister(connID string) {
	userID, ok := r.connUser[connID]
	if !ok {
		return
	}
	delete(r.connUser, connID)
	if r.userConn[userID] == connID {
		delete(r.userConn, userID)
	}
}

// ConnID returns the active connection for a user, if any.
func (r *Registry) ConnID(userID string) (string, bool) {
	connID, ok := r.userConn[userID]
	return connID, ok
}

// UserID returns the user owning a connection, if any.
func (r *Registry) UserID(connID string) (string, bool) {
	userID, ok := r.connUser[connID]
	return userID, ok
}
