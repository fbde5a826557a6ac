package seed

import "errors"

var (
	// ErrParseManifest is returned when the manifest is not valid YAML.
	ErrParseManifest = errors.New("seed.parse_manifest")

	// ErrInvalidManifest is returned when the manifest fails validation.
	ErrInvalidManifest = errors.New("seed.invalid_manifest")

	// ErrApply is returned when the provider rejects an entry while applying.
	ErrApply = errors.New("seed.apply_failed")
)
