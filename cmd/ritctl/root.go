package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-rit/internal/config"
	"github.com/sirosfoundation/go-rit/pkg/rit"
	"github.com/sirosfoundation/go-rit/pkg/transport"
)

// app holds the global flags shared by every command
type app struct {
	configFile  string
	channel     string
	password    string
	certificate string
	environment string
	test        bool
	language    string
	capture     bool
	verbose     bool

	out    io.Writer
	errOut io.Writer
	// newClient is replaced in tests
	newClient func(cfg *rit.Config, opts ...rit.Option) (*rit.Client, error)
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&app{
		out:       os.Stdout,
		errOut:    os.Stderr,
		newClient: rit.New,
	})
}

func buildRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ritctl",
		Short: "Console client for the RIT tourism object catalog",
		Long: `ritctl reads and updates objects in the RIT catalog.

Settings come from --config, RIT_* environment variables (a .env file in
the working directory is loaded first) and the flags below, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env.local overrides .env
			for _, f := range []string{".env.local", ".env"} {
				_ = godotenv.Load(f)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&a.channel, "channel", "", "distribution channel id")
	flags.StringVar(&a.password, "password", "", "certificate passphrase")
	flags.StringVar(&a.certificate, "certificate", "", "client certificate (PEM or PKCS#12)")
	flags.StringVar(&a.environment, "env", "", "environment name")
	flags.BoolVar(&a.test, "test", false, "use the test environment")
	flags.StringVar(&a.language, "language", "", "request language (default pl-PL)")
	flags.BoolVar(&a.capture, "capture", false, "print raw SOAP requests and responses to stderr")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newGetCmd(a),
		newSendCmd(a),
		newReportCmd(a),
		newEventsCmd(a),
		newLanguagesCmd(a),
		newAttributesCmd(a),
		newCategoryCmd(a),
		newDictionaryCmd(a),
		newCertCmd(a),
	)

	return root
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
}

// loadConfig merges the configuration file, the environment and the flags
func (a *app) loadConfig() (*config.Config, error) {
	override := func(c *config.Config) {
		if a.channel != "" {
			c.Channel = a.channel
		}
		if a.password != "" {
			c.Secret = a.password
		}
		if a.certificate != "" {
			c.Certificate = a.certificate
		}
		if a.test {
			c.Environment = rit.EnvironmentTest
		}
		if a.environment != "" {
			c.Environment = a.environment
		}
		if a.language != "" {
			c.Language = a.language
		}
		if a.capture {
			c.Transport.Capture = true
		}
	}

	if a.configFile != "" {
		return config.Load(a.configFile, override)
	}
	return config.FromEnv(override)
}

// client returns a client and the request language
func (a *app) client(extra ...rit.Option) (*rit.Client, string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, "", err
	}

	opts := []rit.Option{
		rit.WithLogger(a.logger()),
		rit.WithMetadataCache(),
		rit.WithExchangeHandler(a.printExchange),
	}
	opts = append(opts, extra...)

	c, err := a.newClient(cfg.ClientConfig(), opts...)
	if err != nil {
		return nil, "", err
	}
	return c, cfg.Language, nil
}

func (a *app) printExchange(ex *transport.Exchange) {
	fmt.Fprintf(a.errOut, "--- %s %s (%s, %s)\n", ex.Action, ex.Endpoint, ex.ID, ex.Duration)
	fmt.Fprintf(a.errOut, "%s\n--- response\n%s\n", ex.Request, ex.Response)
}
