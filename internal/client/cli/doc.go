// Package cli provides the interactive zkkeeper command-line client.
//
// It wires configuration, the local profile database, the key worker and the
// account service, then runs a REPL. A background watcher pings the server
// and shows whether the client is online.
//
// Commands cover the account lifecycle: register, login, admin unlock,
// password change, recovery, logout and logout of all sessions. Passwords
// are read without echo and wiped after use; the master key lives only in
// memory while the REPL runs.
package cli
