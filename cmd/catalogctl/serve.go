package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"catalogd/pkg/actionlog"
	"catalogd/pkg/autoreload"
	"catalogd/pkg/checks"
	"catalogd/pkg/config"
	"catalogd/pkg/db"
	"catalogd/pkg/probes"
	"catalogd/pkg/server"
	"catalogd/pkg/server/endpoints"
	gormstore "catalogd/pkg/server/store/gorm"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog application server",
	Long: `Run the catalog application server.

The application listens on --port and the probe endpoints (/alive, /ready,
/startup) on --probe-port. Database migrations are run on startup unless
--no-migrate is given. Each --command value is a management command executed
before the listeners start.

Example:
  catalogctl serve --port 8000 --probe-port 8001 --static \
      --command migrate --command 'load fixtures/initial.yml'`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "server listen port (default from config)")
	serveCmd.Flags().Int("probe-port", 0, "probe listen port (default from config)")
	serveCmd.Flags().Bool("autoreload", false, "watch the .env file and restart on changes")
	serveCmd.Flags().Bool("static", false, "serve files from STATIC_ROOT under /static/")
	serveCmd.Flags().Bool("media", false, "serve files from MEDIA_ROOT under /media/")
	serveCmd.Flags().StringArray("command", nil, "management command to run before serving (repeatable)")
	serveCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}
	applyServeFlags(cmd, cfg)

	// Run migrations unless --no-migrate is set
	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		if err := runMigrations(); err != nil {
			return err
		}
	}

	// Management commands run once, before the listeners exist
	commands, _ := cmd.Flags().GetStringArray("command")
	for _, line := range commands {
		log.Printf("Running management command: %s", line)
		if err := runManagementCommand(line); err != nil {
			return fmt.Errorf("management command %q failed: %w", line, err)
		}
	}

	watchConfig, _ := cmd.Flags().GetBool("autoreload")
	serveStatic, _ := cmd.Flags().GetBool("static")
	serveMedia, _ := cmd.Flags().GetBool("media")
	envFile, _ := cmd.Flags().GetString("env-file")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}

		logStore, err := actionlog.NewStore(cfg.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("failed to open action log store: %w", err)
		}
		recorder := actionlog.NewRecorder(nil, logStore)

		registerBuiltinChecks(cfg, gormstore.NewHealthStore(gormDB), gormstore.NewComponentsStore(gormDB))

		srv, err := server.NewServer(cfg, gormDB, recorder)
		if err != nil {
			return err
		}
		srv.ServeStatic = serveStatic
		srv.ServeMedia = serveMedia
		endpoints.RegisterAll(srv)

		probeSrv := probes.NewServer(cfg.Server.Host, cfg.Server.ProbePort, checks.DefaultRegistry)

		errs := make(chan error, 2)
		go func() { errs <- probeSrv.Start() }()
		go func() { errs <- srv.Start() }()

		// First check pass; failures keep the readiness probe red but do
		// not prevent the server from running.
		if failures := checks.Run(context.Background()); len(failures) > 0 {
			for _, failure := range failures {
				log.Printf("System check failed: %s: %s", failure.ID, failure.Message)
			}
		}
		probeSrv.MarkStarted()

		log.Printf("Running server at http://%s:%d (probes on :%d)...",
			cfg.Server.Host, cfg.Server.Port, cfg.Server.ProbePort)

		reload := make(chan struct{}, 1)
		watchCtx, cancelWatch := context.WithCancel(context.Background())
		if watchConfig {
			go func() {
				err := autoreload.Watch(watchCtx, envFile, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
				if err != nil && err != context.Canceled {
					log.Printf("Autoreload watcher stopped: %v", err)
				}
			}()
		}

		select {
		case <-sigChan:
			log.Println("Shutting down...")
			cancelWatch()
			shutdownServers(srv, probeSrv, logStore, sqlDB)
			return nil

		case <-reload:
			log.Println("Configuration changed, restarting...")
			cancelWatch()
			shutdownServers(srv, probeSrv, logStore, sqlDB)

			cfg, err = config.Reload()
			if err != nil {
				return fmt.Errorf("failed to reload configuration: %w", err)
			}
			applyServeFlags(cmd, cfg)
			continue

		case err := <-errs:
			cancelWatch()
			shutdownServers(srv, probeSrv, logStore, sqlDB)
			return err
		}
	}
}

// applyServeFlags lets explicit port flags win over the configuration
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("probe-port") {
		cfg.Server.ProbePort, _ = cmd.Flags().GetInt("probe-port")
	}
}

// shutdownServers stops both listeners and releases the database pools so a
// reload iteration does not accumulate connections.
func shutdownServers(srv *server.Server, probeSrv *probes.Server, logStore *actionlog.Store, sqlDB *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := probeSrv.Shutdown(ctx); err != nil {
		log.Printf("Probe server shutdown: %v", err)
	}
	if logStore != nil {
		_ = logStore.Close()
	}
	if sqlDB != nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Database close: %v", err)
		}
	}
}
