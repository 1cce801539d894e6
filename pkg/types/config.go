package types

import "errors"

// Config holds the parameters for opening a Haven store.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	CurrentUser string `json:"current_user" yaml:"current_user"`
}

// DefaultCurrentUser is the demo account selected when no currentUser
// setting exists yet.
const DefaultCurrentUser = "itskylebrooks"

// Config validation errors.
var ErrDataDirEmpty = errors.New("data dir must not be empty")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
