package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
)

// CheckRequirement reports whether toolVersion satisfies the semver
// constraint a config file declares, e.g. ">= 0.3, < 1.0".
//
// An empty requirement always passes, as does a "main" development build.
func CheckRequirement(toolVersion, requirement string) error {
	requirement = strings.TrimSpace(requirement)
	if requirement == "" {
		return nil
	}

	toolVersion = strings.TrimPrefix(toolVersion, "v")
	if toolVersion == "main" {
		return nil
	}

	constraint, err := semver.NewConstraint(requirement)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid version requirement %q", requirement)
	}

	current, err := semver.NewVersion(toolVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid tool version %q", toolVersion)
	}

	if ok, reasons := constraint.Validate(current); !ok {
		message := make([]string, 0, len(reasons))
		for _, reason := range reasons {
			message = append(message, reason.Error())
		}

		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"config requires version %s but this is %s: %s", requirement, current, strings.Join(message, "; "))
	}

	return nil
}
