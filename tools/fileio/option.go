package fileio

type Option func(*Config)

// WithDirName sets the working directory. The value is used verbatim.
func WithDirName(dir string) Option {
	return func(c *Config) {
		c.dirName = dir
	}
}

// WithSaveEnabled toggles the save operation.
func WithSaveEnabled(enabled bool) Option {
	return func(c *Config) {
		c.saveEnabled = enabled
	}
}

// WithReadEnabled toggles the read and list operations.
func WithReadEnabled(enabled bool) Option {
	return func(c *Config) {
		c.readEnabled = enabled
	}
}
