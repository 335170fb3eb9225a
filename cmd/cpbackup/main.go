package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	client "github.com/carriercomm/cpanel-remote-backup-client"
	"github.com/carriercomm/cpanel-remote-backup-client/internal/cliconfig"
	"github.com/carriercomm/cpanel-remote-backup-client/internal/zlog"
)

const longHelp = `Drive a cPanel server over HTTP(S) with preemptive Basic authentication.

Configuration is read from $HOME/.cpanel-remote-backup/config.toml, then
CPRB_* environment variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  cpbackup trigger --host cpanel.example.com --user me --dest scp --backup-server archive.example.com --backup-user arch
  cpbackup post /frontend/x3/backup/dofullbackup.html -p dest=homedir -p email=ops@example.com
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     *zlog.Adapter
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:          "cpbackup",
		Short:        "Trigger and drive cPanel backups over HTTP",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "config file (default $HOME/.cpanel-remote-backup/config.toml)")
	f.StringVar(&a.cfg.Host, "host", a.cfg.Host, "cPanel host name")
	f.IntVar(&a.cfg.Port, "port", a.cfg.Port, "cPanel port")
	f.BoolVar(&a.cfg.Secure, "secure", a.cfg.Secure, "use HTTPS")
	f.StringVar(&a.cfg.Username, "user", a.cfg.Username, "cPanel user")
	f.StringVar(&a.cfg.Password, "password", a.cfg.Password, "cPanel password")
	f.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "request timeout (0 disables)")
	f.BoolVar(&a.cfg.Insecure, "insecure", a.cfg.Insecure, "skip TLS certificate verification")
	f.StringVar(&a.cfg.Proxy, "proxy", a.cfg.Proxy, "HTTP proxy URL")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&a.cfg.Skin, "skin", a.cfg.Skin, "cPanel theme the backup form lives under")

	root.AddCommand(newPostCmd(a), newTriggerCmd(a))

	return root
}

// load resolves the configuration (defaults < file < env < flags) and
// sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := zlog.NewWithWriter(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log

	logger := a.log.Logger()
	logger.Debug().Interface("config", a.cfg.Masked()).Msg("configuration")

	return nil
}

func (a *app) newClient() *client.Client {
	opts := []client.Option{
		client.WithRequestLogger(a.log),
		client.WithTimeout(a.cfg.Timeout),
		client.WithInsecureSkipVerify(a.cfg.Insecure),
		client.WithUserAgent("cpbackup/" + getVersion()),
	}
	if a.cfg.Proxy != "" {
		opts = append(opts, client.WithProxy(a.cfg.Proxy))
	}

	return client.New(a.cfg.Host, a.cfg.Port, a.cfg.Secure, a.cfg.Username, a.cfg.Password, opts...)
}

func newPostCmd(a *app) *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "post <uri>",
		Short: "POST form parameters to a path on the cPanel server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}
			if err := a.load(cmd); err != nil {
				return err
			}
			return a.newClient().Post(cmd.Context(), args[0], params)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "form parameter key=value (repeatable)")

	return cmd
}

func newTriggerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Ask cPanel to generate a full backup and deliver it to a destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if err := a.cfg.ValidateBackup(); err != nil {
				return err
			}
			if err := a.newClient().Post(cmd.Context(), a.cfg.BackupURI(), a.cfg.BackupParams()); err != nil {
				return fmt.Errorf("trigger full backup: %w", err)
			}
			logger := a.log.Logger()
			logger.Info().Str("dest", a.cfg.Backup.Dest).Msg("full backup requested")
			return nil
		},
	}

	b := &a.cfg.Backup
	f := cmd.Flags()
	f.StringVar(&b.Dest, "dest", b.Dest, "backup destination: "+strings.Join(cliconfig.BackupDestinations, ", "))
	f.StringVar(&b.Email, "email", b.Email, "address notified when the backup completes")
	f.StringVar(&b.Server, "backup-server", b.Server, "remote server receiving the backup")
	f.StringVar(&b.User, "backup-user", b.User, "remote server user")
	f.StringVar(&b.Pass, "backup-pass", b.Pass, "remote server password")
	f.IntVar(&b.Port, "backup-port", b.Port, "remote server port")
	f.StringVar(&b.RDir, "rdir", b.RDir, "remote directory")

	return cmd
}

// parseParams turns key=value pairs into a parameter map. Repeated keys
// become multiple values.
func parseParams(raw []string) (map[string]any, error) {
	params := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, want key=value", kv)
		}

		switch existing := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{existing, value}
		case []string:
			params[key] = append(existing, value)
		}
	}
	return params, nil
}
