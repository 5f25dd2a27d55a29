// Package config resolves build settings from layered YAML files.
//
// Settings come from three layers, each overriding the one below: built-in
// defaults for a stock Sofle workspace, a global file at
// $XDG_CONFIG_HOME/zmkbuild/config.yaml, and a workspace file named
// .zmkbuild.yaml in the working directory. Command-line flags are applied
// on top by the caller. Empty fields never override.
//
// Example usage:
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Image)
package config
