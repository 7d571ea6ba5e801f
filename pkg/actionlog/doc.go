// Package actionlog records admin mutations on catalog objects.
//
// Every add, change and delete performed through the admin API is written as
// a structured log line and, when a store is attached, persisted to the
// action_log table for retrieval via GET /admin/log.
package actionlog
