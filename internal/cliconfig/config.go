package cliconfig

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the cPanel HTTPS port.
	DefaultPort = 2083
	// DefaultSkin is the cPanel theme the backup form lives under.
	DefaultSkin = "x3"
)

// BackupDestinations are the destinations the cPanel full backup form accepts.
var BackupDestinations = []string{"homedir", "ftp", "passiveftp", "scp"}

// Config holds CLI configuration for cpbackup.
type Config struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string

	Timeout  time.Duration
	Insecure bool
	Proxy    string
	LogLevel string

	Skin   string
	Backup BackupConfig
}

// BackupConfig describes where cPanel should push a generated full backup.
type BackupConfig struct {
	Dest   string
	Email  string
	Server string
	User   string
	Pass   string
	Port   int
	RDir   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Port:     DefaultPort,
		Secure:   true,
		Timeout:  60 * time.Second,
		LogLevel: "info",
		Skin:     DefaultSkin,
		Backup: BackupConfig{
			Dest: "homedir",
			Port: 21,
		},
	}
}

// Validate checks the connection settings.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Username == "" {
		return fmt.Errorf("user is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.Proxy != "" {
		u, err := url.Parse(c.Proxy)
		if err != nil {
			return fmt.Errorf("parse proxy: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("proxy must be an absolute URL such as http://host:port, got %q", c.Proxy)
		}
	}

	c.Skin = strings.Trim(c.Skin, "/")
	if c.Skin == "" {
		c.Skin = DefaultSkin
	}

	return nil
}

// ValidateBackup checks the settings needed to trigger a full backup.
func (c *Config) ValidateBackup() error {
	b := c.Backup
	if !slices.Contains(BackupDestinations, b.Dest) {
		return fmt.Errorf("backup dest must be one of %s, got %q", strings.Join(BackupDestinations, ", "), b.Dest)
	}
	if b.Dest == "homedir" {
		return nil
	}
	if b.Server == "" {
		return fmt.Errorf("backup server is required for dest %s", b.Dest)
	}
	if b.User == "" {
		return fmt.Errorf("backup user is required for dest %s", b.Dest)
	}
	if b.Port <= 0 || b.Port > 65535 {
		return fmt.Errorf("backup port must be between 1 and 65535, got %d", b.Port)
	}
	return nil
}

// BackupURI is the path of the cPanel full backup form handler.
func (c *Config) BackupURI() string {
	return "/frontend/" + c.Skin + "/backup/dofullbackup.html"
}

// BackupParams are the form fields posted to [Config.BackupURI].
func (c *Config) BackupParams() map[string]any {
	return map[string]any{
		"dest":   c.Backup.Dest,
		"email":  c.Backup.Email,
		"server": c.Backup.Server,
		"user":   c.Backup.User,
		"pass":   c.Backup.Pass,
		"port":   c.Backup.Port,
		"rdir":   c.Backup.RDir,
	}
}

// Masked returns a copy safe to log.
func (c Config) Masked() Config {
	if c.Password != "" {
		c.Password = "*****"
	}
	if c.Backup.Pass != "" {
		c.Backup.Pass = "*****"
	}
	return c
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a bool with strconv.ParseBool and sets the destination if valid.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
