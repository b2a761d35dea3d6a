package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"quilt-bootstrap/dialog"
	"quilt-bootstrap/javacheck"
	"quilt-bootstrap/launch"
	"quilt-bootstrap/payload"
	"quilt-bootstrap/shared"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	config   *shared.Config
	exitCode = launch.ExitOK

	// Collaborators replaced in tests.
	executor      javacheck.Executor       = javacheck.OSExecutor{}
	nativeDialogs dialog.Dialogs           = dialog.NativeDialogs{}
	openURL       func(string) error       = shared.OpenBrowser
	payloadDir    func() string            = os.TempDir
	locator       func() javacheck.Locator = func() javacheck.Locator { return javacheck.PlatformSources() }

	flagConfigFile     string
	flagLogLevel       string
	flagLogFile        string
	flagListCandidates bool
)

var rootCmd = &cobra.Command{
	Use:   "quilt-installer [flags] [-- installer arguments]",
	Short: "Finds a Java runtime and starts the Quilt installer with it",
	// Anything after the flags is handed to the installer jar.
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	// Finder on older macOS adds -psn_* to double-clicked apps.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	PersistentPreRunE:  initBootstrap,
	RunE:               runInstaller,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bootstrap version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(shared.GetBootstrapVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "properties file overriding the built-in settings")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides log.level)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", shared.DefaultLogPath(), `log file, or "console" for stderr`)
	rootCmd.Flags().BoolVar(&flagListCandidates, "list-candidates", false, "print the runtime candidates in probe order and exit")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Errorf("bootstrap failed: %v", err)
		os.Exit(launch.ExitLaunchFailed)
	}
	os.Exit(exitCode)
}

func initBootstrap(cmd *cobra.Command, args []string) error {
	var cfgErr error
	config, cfgErr = shared.LoadConfig(shared.GetGoos(), shared.ExecutableOverridePath(), flagConfigFile)
	if cfgErr != nil {
		// a broken override must not keep the installer from starting
		var err error
		if config, err = shared.LoadConfig(shared.GetGoos()); err != nil {
			config = &shared.Config{LogLevel: defaultLogLevel}
		}
	}

	level := config.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logErr := initLogging(level, flagLogFile)

	log.Infof("Quilt installer bootstrap %s", shared.GetBootstrapVersion())
	shared.LogHostInfo()
	if logErr != nil {
		log.Warnf("Logging fell back to defaults: %v", logErr)
	}
	if cfgErr != nil {
		log.Warnf("Ignoring config overrides: %v", cfgErr)
	}
	for _, path := range config.Loaded {
		log.Infof("Loaded config overrides from %s", path)
	}
	return nil
}

const defaultLogLevel = "info"

// initLogging never fails the run. A bad level falls back to info, an unusable
// log file to stderr; the first error is returned for reporting once logging works.
func initLogging(level, path string) error {
	err := shared.InitLog(level, path)
	if err == nil {
		return nil
	}
	if shared.InitLog(defaultLogLevel, path) != nil {
		_ = shared.InitLog(defaultLogLevel, shared.ConsoleLog)
	}
	return err
}

func runInstaller(cmd *cobra.Command, args []string) error {
	candidates := locator()

	if flagListCandidates {
		out := cmd.OutOrStdout()
		for _, candidate := range candidates.Locate() {
			fmt.Fprintln(out, candidate)
		}
		fmt.Fprintln(out, javacheck.FallbackCommand)
		return nil
	}

	prober, err := javacheck.NewProber(executor, config.JavaVersionConstraint, args)
	if err != nil {
		log.Warnf("Java version check disabled: %v", err)
		prober, _ = javacheck.NewProber(executor, "", args)
	}

	var extracted *payload.Payload
	controller := &launch.Controller{
		Extract: func() (string, error) {
			dir := payloadDir()
			p, err := payload.Extract(dir, payload.InstallerJar)
			if err != nil {
				return "", err
			}
			extracted = p
			payload.Sweep(dir, p.Path)
			return p.Path, nil
		},
		Locator:  candidates,
		Prober:   prober,
		Fallback: javacheck.FallbackCommand,
		Presenter: &dialog.Presenter{
			Dialogs: nativeDialogs,
			Open:    openURL,
			URLs: dialog.HelpURLs{
				JREHelp:    config.JREHelpURL,
				OSIssues:   config.OSIssuesURL,
				LastResort: config.LastResortURL,
			},
		},
	}

	result := controller.Run(cmd.Context())
	if extracted != nil {
		if err := extracted.Release(); err != nil {
			log.Debugf("Releasing payload: %v", err)
		}
	}
	switch {
	case result.Cancelled:
		log.Warn("Installer launch cancelled")
	case result.ExitCode != launch.ExitOK:
		log.Errorf("Installer was not started (%s, %s)", result.Failure, result.Action)
	}
	exitCode = result.ExitCode
	return nil
}
