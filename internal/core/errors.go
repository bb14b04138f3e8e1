package core

import "fmt"

// ResourceLoadError reports an asset or audio device that could not be loaded.
// It is fatal at startup: the game loop never starts with missing resources.
type ResourceLoadError struct {
	Resource string // What was being loaded, e.g. "font goregular" or "audio speaker"
	Err      error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Resource, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}
