package cliconfig

import "os"

// ApplyEnvConfig applies CPRB_* environment variables to cfg. Flags that
// were set explicitly win.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("CPRB_HOST"), &cfg.Host)
	s.setString("user", os.Getenv("CPRB_USER"), &cfg.Username)
	s.setString("password", os.Getenv("CPRB_PASSWORD"), &cfg.Password)
	s.setString("proxy", os.Getenv("CPRB_PROXY"), &cfg.Proxy)
	s.setString("log-level", os.Getenv("CPRB_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("skin", os.Getenv("CPRB_SKIN"), &cfg.Skin)

	if err := s.setIntFromString("port", os.Getenv("CPRB_PORT"), &cfg.Port); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("CPRB_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	if err := s.setBoolFromString("secure", os.Getenv("CPRB_SECURE"), &cfg.Secure); err != nil {
		return err
	}
	if err := s.setBoolFromString("insecure", os.Getenv("CPRB_INSECURE"), &cfg.Insecure); err != nil {
		return err
	}

	s.setString("dest", os.Getenv("CPRB_BACKUP_DEST"), &cfg.Backup.Dest)
	s.setString("email", os.Getenv("CPRB_BACKUP_EMAIL"), &cfg.Backup.Email)
	s.setString("backup-server", os.Getenv("CPRB_BACKUP_SERVER"), &cfg.Backup.Server)
	s.setString("backup-user", os.Getenv("CPRB_BACKUP_USER"), &cfg.Backup.User)
	s.setString("backup-pass", os.Getenv("CPRB_BACKUP_PASS"), &cfg.Backup.Pass)
	s.setString("rdir", os.Getenv("CPRB_BACKUP_RDIR"), &cfg.Backup.RDir)

	if err := s.setIntFromString("backup-port", os.Getenv("CPRB_BACKUP_PORT"), &cfg.Backup.Port); err != nil {
		return err
	}

	return nil
}
