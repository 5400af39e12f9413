// Package memengine provides an in-memory circulation.Engine.
//
// Transactions are serialized by a single lock. Each transaction works on a copy of the state
// which replaces the committed state only when the callback succeeds, so a failing callback leaves
// no trace. The engine backs the test suites and the STORAGE=memory mode of the server.
package memengine
