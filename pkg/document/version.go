package document

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-scals/scals/pkg/errors"
)

// SupportedSchema is the document schema major version this engine resolves.
const SupportedSchema = "v1"

// CheckVersion validates a declared schema version against the engine's
// supported major. An empty version is treated as current. Versions are
// semver strings with or without the "v" prefix; anything invalid or from a
// different major is rejected, since silently resolving a future schema
// would drop features the document relies on.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.New("document.CheckVersion", errors.KindVersion,
			&errors.VersionError{Version: version, Supported: SupportedSchema})
	}
	if semver.Major(v) != SupportedSchema {
		return errors.New("document.CheckVersion", errors.KindVersion,
			&errors.VersionError{Version: version, Supported: SupportedSchema})
	}
	return nil
}
