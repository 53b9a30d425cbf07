// Package common contains the storage keys, sentinel errors and small
// helpers shared across TaskFlow packages.
package common

// Keys of the local key/value store. The names match the ones the browser
// build of TaskFlow used, so existing data stays readable.
const (
	TokenStorageKey = "taskflow_jwt_token"
	UsersStorageKey = "taskflow_users"
	TasksStorageKey = "taskflow_tasks"
)
