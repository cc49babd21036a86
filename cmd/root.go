package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagr/pagr/internal/aws"
	"github.com/pagr/pagr/internal/config"
	"github.com/pagr/pagr/internal/config/data"
	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/view"
)

const (
	appName    = "pagr"
	appVersion = "0.1.0"
)

var (
	pagrFlags *data.Flags
	logLevel  = new(slog.LevelVar)
	rootCmd   = &cobra.Command{
		Use:   appName,
		Short: "A paginated terminal browser for AWS resources",
		Long:  `pagr is a terminal UI that pages through AWS resources using backend cursors, one page at a time.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	pagrFlags = config.NewFlags()
	initPagrFlags()
	rootCmd.AddCommand(versionCmd)
}

func initPagrFlags() {
	rootCmd.Flags().StringVar(pagrFlags.Profile, "profile", "", "AWS profile to use")
	rootCmd.Flags().StringVar(pagrFlags.Region, "region", "", "AWS region to use")
	rootCmd.Flags().StringVarP(pagrFlags.Resource, "resource", "c", "", "Startup resource, e.g. ec2/instance")
	rootCmd.Flags().IntVarP(pagrFlags.PageSize, "page-size", "p", 0, "Rows per page")
	rootCmd.Flags().BoolVar(pagrFlags.Demo, "demo", false, "Browse built-in demo data, no AWS access")
	rootCmd.Flags().BoolVar(pagrFlags.ReadOnly, "readonly", false, "Disable commands that modify the displayed data")
	rootCmd.Flags().StringVarP(pagrFlags.LogLevel, "logLevel", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(pagrFlags.LogFile, "logFile", "", "Log file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.InitLocs(); err != nil {
		return fmt.Errorf("failed to initialize locations: %w", err)
	}
	if err := initLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	if config.IsBoolSet(pagrFlags.Demo) {
		return runDemo()
	}

	awsSettings, err := aws.NewProfileManager()
	if err != nil {
		return fmt.Errorf("failed to load AWS profiles: %w", err)
	}

	cfg := config.NewConfig(awsSettings)
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Refine(pagrFlags, awsSettings); err != nil {
		return fmt.Errorf("failed to refine configuration: %w", err)
	}
	_ = cfg.Save(false)
	logLevel.Set(cfg.Pagr.Logger.SlogLevel())

	profile := cfg.Pagr.ActiveProfile()
	region := cfg.Pagr.ActiveRegion()
	timeout, err := cfg.Pagr.GetAPITimeout()
	if err != nil {
		return err
	}

	apiClient, err := aws.NewAPIClient(awsSettings, &aws.ClientConfig{
		Profile: profile,
		Region:  region,
		Timeout: timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	app := view.NewApp(cfg, appVersion)
	app.SetFactory(dao.NewFactory(apiClient))
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	app.Status().SetContext(profile, region)
	if apiClient.CheckConnectivity() {
		slog.Info("Connected", "account", apiClient.AccountID(), "profile", profile, "region", region)
	} else {
		slog.Warn("Connectivity check failed", "profile", profile)
	}

	return app.Run()
}

// runDemo browses the built-in in-memory dataset without touching AWS.
func runDemo() error {
	cfg := config.NewConfig(nil)
	cfg.Pagr.DefaultResource = "demo/item"
	cfg.Pagr.Override(pagrFlags)
	cfg.Pagr.Validate()
	logLevel.Set(cfg.Pagr.Logger.SlogLevel())
	_ = cfg.Pagr.ActivateProfile("demo", aws.DefaultRegion)

	app := view.NewApp(cfg, appVersion)
	app.SetFactory(dao.NewOfflineFactory("demo", aws.DefaultRegion))
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.Status().SetContext("demo", aws.DefaultRegion)

	return app.Run()
}

// initLogging sends structured logs to the app log file so they do not
// fight the terminal UI for the screen. The level starts from the flag
// and is re-leveled once the configuration is refined.
func initLogging() error {
	if err := config.InitLogLoc(); err != nil {
		return err
	}

	path := config.AppLogFile
	if config.IsStringSet(pagrFlags.LogFile) {
		path = *pagrFlags.LogFile
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	logLevel.Set(data.Logger{Level: *pagrFlags.LogLevel}.SlogLevel())
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: logLevel,
	})))

	return nil
}
