package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/de-tools/ipo-report/pkg/server"
	"github.com/de-tools/ipo-report/pkg/services/config"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profileName  string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the IPO revenue report",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultProfilePath(),
		"Path to the profile file (default is $HOME/.reportcfg)")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", config.DefaultProfile,
		"Profile naming the report source")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Optional settings file, overridden by REPORT_* environment variables")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Profile file `%s` loaded, found %d profiles", cfgPath, len(profiles))
	for _, name := range profiles {
		logger.Debug().Msgf("Profile: `%s`", name)
	}

	svc, err := report.Open(ctx, registry, profileName, settings.LoadTimeout)
	if err != nil {
		logger.Error().Err(err).Str("profile", profileName).Msg("failed to load report")
		return err
	}

	api, err := server.NewWebAPI(server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		AllowedOrigins:  settings.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Report: svc,
			Logger: logger,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	if err := api.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
