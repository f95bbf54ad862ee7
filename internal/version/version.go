// Package version checks that the CLI and a running server speak
// compatible semantic versions.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// Compatible reports whether a client at clientVersion can talk to a server
// at serverVersion: both must share the same major version. Development
// builds are compatible with everything.
func Compatible(clientVersion, serverVersion string) (bool, error) {
	if isDev(clientVersion) || isDev(serverVersion) {
		return true, nil
	}
	cv, err := parse(clientVersion)
	if err != nil {
		return false, fmt.Errorf("parsing client version %q: %w", clientVersion, err)
	}
	sv, err := parse(serverVersion)
	if err != nil {
		return false, fmt.Errorf("parsing server version %q: %w", serverVersion, err)
	}
	return cv.Major() == sv.Major(), nil
}

func isDev(v string) bool {
	return v == "" || v == Dev
}

// parse strips a leading "v" and parses the version string.
func parse(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
