// Package probes serves the container-orchestration probe endpoints on a
// dedicated port: /alive (liveness), /ready (readiness, runs the system
// checks) and /startup (startup completion).
package probes
