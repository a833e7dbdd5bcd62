package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/pkg/blob"
	"github.com/labelforge/labelforge/pkg/config"
	"github.com/labelforge/labelforge/pkg/db"
	"github.com/labelforge/labelforge/pkg/server"
	"github.com/labelforge/labelforge/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the LabelForge application server",
	Long: `Run the LabelForge application server.

To run the server requires the environment variables LABELFORGE_SESSION_KEY
and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		sessionKeyB64, ok := os.LookupEnv("LABELFORGE_SESSION_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "LABELFORGE_SESSION_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		sessionKey, err := base64.StdEncoding.DecodeString(sessionKeyB64)
		if err != nil {
			fmt.Println("Bad LABELFORGE_SESSION_KEY:", err)
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		blobs, err := blob.NewMinioStore(context.Background(), cfg)
		if err != nil {
			fmt.Println("Unable to connect to blob store:", err)
			os.Exit(1)
		}

		// "labelctl configuration apply" sends SIGHUP to request a reload.
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		go func() {
			for range hup {
				log.Println("SIGHUP received, reloading configuration...")
				if err := config.Reload(); err != nil {
					log.Println("Configuration reload failed:", err)
					continue
				}
				*cfg = *config.Get()
				log.Println("Configuration reloaded")
			}
		}()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, cfg, sessionKey, blobs, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
