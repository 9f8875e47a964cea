// Command ots shares and retrieves one-time secrets from the command line.
//
// Credentials and the server are taken from flags, then from the
// OTS_USERNAME, OTS_API_KEY and OTS_URL environment variables. A .env file
// in the working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	onetimesecret "github.com/onetimesecret/client-go"
)

// Environment variables read when the matching flag is not given.
const (
	envURL      = "OTS_URL"
	envUsername = "OTS_USERNAME"
	envAPIKey   = "OTS_API_KEY"
)

// Config holds the process streams used by run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	url      string
	username string
	apiKey   string
	envFile  string
	timeout  time.Duration
	verbose  bool
}

// app carries state from the root command into subcommands.
type app struct {
	cfg    Config
	flags  globalFlags
	logger *slog.Logger
	client *onetimesecret.Client
}

// SecretOutput is printed by share and generate.
type SecretOutput struct {
	Metadata     onetimesecret.Metadata `json:"metadata"`
	Value        string                 `json:"value,omitempty"`
	SecretLink   string                 `json:"secret_link"`
	MetadataLink string                 `json:"metadata_link"`
}

// StatusOutput is printed by status.
type StatusOutput struct {
	Status string `json:"status"`
	System string `json:"system"`
}

func run(args []string, cfg Config) error {
	a := &app{cfg: cfg}
	root := a.rootCommand()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	defer a.close()
	return root.ExecuteContext(context.Background())
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ots",
		Short:         "Share secrets that can be viewed only once",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.url, "url", "", "API base URL (env "+envURL+", default "+onetimesecret.DefaultBaseURL+")")
	pf.StringVar(&a.flags.username, "username", "", "account username (env "+envUsername+")")
	pf.StringVar(&a.flags.apiKey, "api-key", "", "account API key (env "+envAPIKey+")")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout, 0 for none")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log every request to stderr")

	root.AddCommand(
		a.shareCommand(),
		a.generateCommand(),
		a.getCommand(),
		a.metadataCommand(),
		a.statusCommand(),
	)
	return root
}

// setup loads the environment and builds the client.
func (a *app) setup(flags *pflag.FlagSet) error {
	if a.flags.envFile != "" {
		if err := godotenv.Load(a.flags.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", a.flags.envFile, err)
		}
	}

	level := slog.LevelInfo
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.cfg.Stderr, &slog.HandlerOptions{Level: level}))

	fromEnv(flags, "url", &a.flags.url, envURL)
	fromEnv(flags, "username", &a.flags.username, envUsername)
	fromEnv(flags, "api-key", &a.flags.apiKey, envAPIKey)

	opts := []onetimesecret.Option{
		onetimesecret.WithTimeout(a.flags.timeout),
		onetimesecret.WithLogger(a.logger),
	}
	if a.flags.url != "" {
		opts = append(opts, onetimesecret.WithBaseURL(a.flags.url))
	}
	if a.flags.username != "" || a.flags.apiKey != "" {
		opts = append(opts, onetimesecret.WithCredentials(a.flags.username, a.flags.apiKey))
	}

	client, err := onetimesecret.New(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = client
	a.logger.Debug("client ready", "api", client.APIURL(), "username", client.Username())
	return nil
}

func (a *app) close() {
	if a.client != nil {
		a.client.Close()
	}
}

// fromEnv fills dst from the environment unless the flag was given.
func fromEnv(flags *pflag.FlagSet, name string, dst *string, env string) {
	if flags.Changed(name) {
		return
	}
	if v, ok := os.LookupEnv(env); ok {
		*dst = v
	}
}

// sharingFlags registers --passphrase, --recipient and --ttl and returns a
// function building SharingOptions from the flags that were given.
func sharingFlags(cmd *cobra.Command) func() onetimesecret.SharingOptions {
	var (
		passphrase string
		recipient  string
		ttl        time.Duration
	)
	f := cmd.Flags()
	f.StringVarP(&passphrase, "passphrase", "p", "", "passphrase the recipient must know")
	f.StringVarP(&recipient, "recipient", "r", "", "e-mail address to send the secret link to")
	f.DurationVarP(&ttl, "ttl", "t", 0, "time-to-live, e.g. 30m or 168h")

	return func() onetimesecret.SharingOptions {
		var opts onetimesecret.SharingOptions
		if f.Changed("passphrase") {
			opts = opts.WithPassphrase(passphrase)
		}
		if f.Changed("recipient") {
			opts = opts.WithRecipient(recipient)
		}
		if f.Changed("ttl") {
			opts = opts.WithTTL(ttl)
		}
		return opts
	}
}

func (a *app) shareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <secret|->",
		Short: "Share a secret; - reads it from stdin",
		Args:  cobra.ExactArgs(1),
	}
	options := sharingFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		secret := args[0]
		if secret == "-" {
			data, err := io.ReadAll(a.cfg.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			secret = strings.TrimRight(string(data), "\r\n")
		}

		shared, err := a.client.ShareSecret(cmd.Context(), secret, options())
		if err != nil {
			return fmt.Errorf("share secret: %w", err)
		}
		return a.print(SecretOutput{
			Metadata:     shared.Metadata,
			SecretLink:   a.client.SecretLink(shared.Metadata),
			MetadataLink: a.client.MetadataLink(shared.Metadata),
		})
	}
	return cmd
}

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a short random secret",
		Args:  cobra.NoArgs,
	}
	options := sharingFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		gen, err := a.client.GenerateSecret(cmd.Context(), options())
		if err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}
		return a.print(SecretOutput{
			Metadata:     gen.Metadata,
			Value:        gen.Value,
			SecretLink:   a.client.SecretLink(gen.Metadata),
			MetadataLink: a.client.MetadataLink(gen.Metadata),
		})
	}
	return cmd
}

func (a *app) getCommand() *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "get <secret-key>",
		Short: "Retrieve a secret; it is destroyed on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				secret *onetimesecret.Secret
				err    error
			)
			if cmd.Flags().Changed("passphrase") {
				secret, err = a.client.RetrieveSecretWithPassphrase(cmd.Context(), args[0], passphrase)
			} else {
				secret, err = a.client.RetrieveSecret(cmd.Context(), args[0])
			}
			if err != nil {
				return fmt.Errorf("retrieve secret: %w", err)
			}
			return a.print(secret)
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase the secret was shared with")
	return cmd
}

func (a *app) metadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata <metadata-key>",
		Short: "Show what the server knows about a shared secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := a.client.RetrieveMetadata(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieve metadata: %w", err)
			}
			return a.print(meta)
		},
	}
}

func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.client.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("get status: %w", err)
			}
			return a.print(StatusOutput{Status: status.Status, System: status.System().String()})
		},
	}
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.cfg.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "ots: "+format+"\n", args...)
	os.Exit(1)
}
