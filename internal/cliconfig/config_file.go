package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Secure   *bool  `toml:"secure"`
	Username string `toml:"user"`
	Password string `toml:"password"`
	Timeout  string `toml:"timeout"`
	Insecure *bool  `toml:"insecure"`
	Proxy    string `toml:"proxy"`
	LogLevel string `toml:"log_level"`
	Skin     string `toml:"skin"`

	Backup FileBackupConfig `toml:"backup"`
}

// FileBackupConfig is the [backup] table of the config file.
type FileBackupConfig struct {
	Dest   string `toml:"dest"`
	Email  string `toml:"email"`
	Server string `toml:"server"`
	User   string `toml:"user"`
	Pass   string `toml:"pass"`
	Port   int    `toml:"port"`
	RDir   string `toml:"rdir"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.cpanel-remote-backup/config.toml, or "" when
// the home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".cpanel-remote-backup", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", fc.Host, &cfg.Host)
	s.setInt("port", fc.Port, &cfg.Port)
	s.setBool("secure", fc.Secure, &cfg.Secure)
	s.setString("user", fc.Username, &cfg.Username)
	s.setString("password", fc.Password, &cfg.Password)
	s.setBool("insecure", fc.Insecure, &cfg.Insecure)
	s.setString("proxy", fc.Proxy, &cfg.Proxy)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("skin", fc.Skin, &cfg.Skin)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}

	s.setString("dest", fc.Backup.Dest, &cfg.Backup.Dest)
	s.setString("email", fc.Backup.Email, &cfg.Backup.Email)
	s.setString("backup-server", fc.Backup.Server, &cfg.Backup.Server)
	s.setString("backup-user", fc.Backup.User, &cfg.Backup.User)
	s.setString("backup-pass", fc.Backup.Pass, &cfg.Backup.Pass)
	s.setInt("backup-port", fc.Backup.Port, &cfg.Backup.Port)
	s.setString("rdir", fc.Backup.RDir, &cfg.Backup.RDir)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
