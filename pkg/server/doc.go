// Package server wires the HTTP application server for the catalog:
// router, stores, GraphQL schema, admin auth and action logging.
package server
