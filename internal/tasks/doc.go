// Package tasks stores the signed-in user's tasks.
//
// All tasks of all users live in one JSON collection in the local store;
// every call filters it by the owner taken from the current session and
// every write rewrites the whole collection. Ids are allocated across the
// whole collection, so they never repeat between users.
package tasks
