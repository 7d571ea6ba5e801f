package main

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"catalogd/pkg/actionlog"
	"catalogd/pkg/checks"
	"catalogd/pkg/config"
	"catalogd/pkg/probes"
	"catalogd/pkg/server"
)

func TestShutdownServersClosesDatabasePools(t *testing.T) {
	cfg := &config.Config{
		SecretKey: "test-secret",
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0, ProbePort: 0},
	}

	srv, err := server.NewServer(cfg, nil, nil)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	probeSrv := probes.NewServer(cfg.Server.Host, cfg.Server.ProbePort, checks.NewRegistry())

	sqlDB, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	dbMock.ExpectClose()

	logDB, logMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	logMock.ExpectClose()
	logStore := actionlog.NewStoreWithDB(logDB)

	shutdownServers(srv, probeSrv, logStore, sqlDB)

	if err := dbMock.ExpectationsWereMet(); err != nil {
		t.Errorf("application pool was not closed: %v", err)
	}
	if err := logMock.ExpectationsWereMet(); err != nil {
		t.Errorf("action log pool was not closed: %v", err)
	}
}

func TestShutdownServersWithoutStores(t *testing.T) {
	cfg := &config.Config{
		SecretKey: "test-secret",
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0, ProbePort: 0},
	}

	srv, err := server.NewServer(cfg, nil, nil)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	probeSrv := probes.NewServer(cfg.Server.Host, cfg.Server.ProbePort, checks.NewRegistry())

	// nil log store and nil pool must not panic
	shutdownServers(srv, probeSrv, nil, nil)
}
