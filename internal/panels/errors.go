package panels

import (
	"errors"
	"fmt"
)

// Construction errors. They are programmer errors and are never produced by
// runtime resize operations.
var (
	ErrOutOfRange         = errors.New("size must be between 0 and 100")
	ErrMinExceedsMax      = errors.New("minSize cannot be greater than maxSize")
	ErrMinExceedsDefault  = errors.New("minSize cannot be greater than defaultSize")
	ErrDefaultExceedsMax  = errors.New("defaultSize cannot be greater than maxSize")
	ErrDefaultOutOfBounds = errors.New("default layout puts a panel outside its minSize/maxSize")
	ErrDefaultSumExceeded = errors.New("the sum of the defaultSize of all panels in a group cannot exceed 100")
	ErrMinSumExceeded     = errors.New("the sum of the minSize of all panels in a group cannot exceed 100")
)

// ConfigError describes an invalid panel or group configuration.
type ConfigError struct {
	PanelID string
	Field   string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.PanelID == "" {
		return fmt.Sprintf("invalid group configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid panel %q (%s): %v", e.PanelID, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
