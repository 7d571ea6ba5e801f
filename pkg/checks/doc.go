// Package checks implements the system-check framework.
//
// Checks are application-level preconditions registered by name and run at
// three points: once during server startup, on demand by "catalogctl check",
// and on every readiness probe. A failing check produces structured errors
// with stable IDs (e.g. components.E001) that surface through the CLI exit
// status and the /ready endpoint body.
package checks
