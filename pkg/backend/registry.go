package backend

import (
	"fmt"

	"golang.org/x/mod/semver"

	togaerrors "github.com/samtupy/toga/pkg/errors"
	"github.com/samtupy/toga/pkg/logging"
)

// Version is the toolkit version backends are validated against.
const Version = "v0.1.0"

var current Factory

// Register installs factory as the current backend after validating its
// version requirement against the toolkit version. The previous factory, if
// any, is replaced; Register returns it so callers (typically test
// harnesses) can restore it.
func Register(factory Factory) (Factory, error) {
	required := factory.Requires()
	if !semver.IsValid(required) {
		return nil, togaerrors.New("backend.Register", togaerrors.KindBackend,
			fmt.Errorf("backend %q declares invalid version requirement %q", factory.Name(), required))
	}
	if semver.Compare(Version, required) < 0 {
		return nil, togaerrors.New("backend.Register", togaerrors.KindBackend,
			fmt.Errorf("backend %q requires toolkit %s, have %s", factory.Name(), required, Version))
	}
	previous := current
	current = factory
	logging.Debug("backend registered", "name", factory.Name(), "requires", required)
	return previous, nil
}

// Restore reinstates a factory previously returned by Register. A nil
// factory leaves no backend registered.
func Restore(factory Factory) {
	current = factory
}

// Current returns the registered backend factory, or an error when no
// backend has been registered.
func Current() (Factory, error) {
	if current == nil {
		return nil, togaerrors.New("backend.Current", togaerrors.KindBackend,
			fmt.Errorf("no backend registered"))
	}
	return current, nil
}
