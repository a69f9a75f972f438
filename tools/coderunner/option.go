package coderunner

import "time"

type Option func(*Config)

// WithBaseDir sets the directory code files are saved to and run from.
func WithBaseDir(dir string) Option {
	return func(c *Config) {
		c.baseDir = dir
	}
}

// WithInterpreter sets the command used to execute files, e.g.
// ["python3"] or ["node"].
func WithInterpreter(cmd []string) Option {
	return func(c *Config) {
		c.interpreter = cmd
	}
}

// WithTimeout bounds how long an execution may run.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.timeout = d
	}
}

// WithSaveAndRun toggles whether new code may be written before running.
func WithSaveAndRun(enabled bool) Option {
	return func(c *Config) {
		c.saveAndRun = enabled
	}
}
