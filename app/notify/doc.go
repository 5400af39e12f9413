// Package notify pushes circulation events to the affected user over a websocket.
//
// The Hub keeps one connection per user. Notifications for users that are not connected
// are dropped, the REST listings remain the source of truth. The OverdueNotifier scans
// unreturned loans periodically and warns borrowers about due and overdue copies.
package notify
