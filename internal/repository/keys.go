// Package repository implements the data-access operations for each entity
// family. Every write loads the whole persisted collection, mutates it in
// memory, and writes it back. Concurrent writers sharing a backend race
// with last-write-wins semantics; that is a property of the storage model,
// not a bug to coordinate away.
package repository

// Persisted keys, one per entity family plus the session slot. The names
// are part of the on-disk format and must not change.
const (
	usersKey       = "architect_society_users"
	postsKey       = "architect_society_posts"
	communitiesKey = "architect_society_communities"
	gamesKey       = "architect_society_games"
	currentUserKey = "architect_society_current_user"
)
