package workspace

import "time"

type Option func(*Config)

// WithRootDir sets the directory projects are created under.
func WithRootDir(dir string) Option {
	return func(c *Config) {
		c.rootDir = dir
	}
}

// WithStartCommand sets the command used to start a project.
func WithStartCommand(cmd []string) Option {
	return func(c *Config) {
		c.startCommand = cmd
	}
}

// WithTimeout bounds how long a start command may run.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.timeout = d
	}
}
