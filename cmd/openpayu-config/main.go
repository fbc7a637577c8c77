// Command openpayu-config resolves the SDK configuration from a YAML file,
// a dotenv file and OPENPAYU_* environment variables and prints the result.
//
//	openpayu-config -c openpayu.yaml -e .env
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/openpayu/openpayu-go/pkg/config"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Options are the command line flags.
type Options struct {
	ConfigFile  string `short:"c" long:"config" description:"YAML configuration file"`
	EnvFile     string `short:"e" long:"env-file" description:"dotenv file loaded before reading OPENPAYU_* variables"`
	ShowSecrets bool   `long:"show-secrets" description:"print credentials instead of masking them"`
	Verbose     bool   `short:"v" long:"verbose" description:"debug logging"`
}

const mask = "********"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		zap.L().Error("openpayu-config failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	setupLogger(options.Verbose)
	defer func() { _ = zap.L().Sync() }()

	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		return err
	}

	snapshot := cfg.Snapshot()
	if !options.ShowSecrets {
		snapshot = masked(snapshot)
	}
	view := struct {
		config.Snapshot `yaml:",inline"`
		SDKVersion      string `yaml:"sdk_version"`
		FullSenderName  string `yaml:"full_sender_name"`
	}{snapshot, cfg.SDKVersion(), cfg.FullSenderName()}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func masked(s config.Snapshot) config.Snapshot {
	if s.SignatureKey != "" {
		s.SignatureKey = mask
	}
	if s.OAuthClientSecret != "" {
		s.OAuthClientSecret = mask
	}
	return s
}

func setupLogger(verbose bool) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
