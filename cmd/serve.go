package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"

	"github.com/jjenkins/lobbying/internal/handlers"
	"github.com/jjenkins/lobbying/internal/store"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lobbying disclosure web server",
	Long: `Start the web server: the stream catalogue, load history, and an endpoint
that flattens an uploaded XML document into CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flag wins over PORT and the config file
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = port
		}

		db, err := store.NewDB(cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			AppName:   "Lobbying Disclosures",
			BodyLimit: 64 * 1024 * 1024,
		})

		app.Use(fiberlogger.New())

		handlers.Register(app, db, logger)

		logger.Info("starting server", "port", cfg.Server.Port, "database", db.Dialect.String())
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
