// Package config provides configuration types and loading for nextfit.
//
// # Configuration Files
//
// Configuration is TOML. Without flags, nextfit reads
// $NEXTFIT_CONFIG_DIR/config.toml (default: <user config dir>/nextfit) when
// it exists and falls back to the built-in defaults otherwise:
//
//	blocks = [300, 200, 100, 250, 150, 50]
//
//	[display]
//	max_occupants = 3
//
//	[log]
//	verbose = false
//	json = false
//
// Keys left out of a file keep their default value. Unknown keys are
// logged as warnings.
//
// # Profiles
//
// Named layouts live in <config dir>/profiles/<name>.toml and are selected
// with --profile. Profile paths are resolved with filepath-securejoin so a
// symlinked profile cannot point outside the profiles directory.
//
// # Validation
//
// Load validates after parsing: the block layout must be non-empty with
// positive sizes and display.max_occupants must be at least 1.
package config
