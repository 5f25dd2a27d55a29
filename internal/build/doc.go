// Package build orchestrates containerized firmware builds.
//
// A run builds one or more firmware targets strictly sequentially, each in
// its own ephemeral container: the keyboard config is bind-mounted
// read-only, the output directory read-write, and a fixed west command
// sequence compiles the shield and stages the UF2 on the host. The build
// image is pulled once per run, before the first target.
//
// Success is judged entirely on the host side: a target passed when its
// expected artifact exists in the output directory after the container
// exits, whatever the exit code was. Per-target failures are collected in
// the [Summary] so one broken half never blocks the other; after the loop
// a run manifest is written next to the artifacts.
//
// Container operations are delegated to the [Docker] interface, satisfied
// by the docker package's client.
//
// Example usage:
//
//	summary, err := build.Run(ctx, client, build.Options{
//	    Targets:   []target.Target{target.Left, target.Right},
//	    Image:     "zmkfirmware/zmk-build-arm:stable",
//	    Board:     "nice_nano_v2",
//	    ConfigDir: "config",
//	    OutputDir: "firmware",
//	})
//	if err != nil {
//	    return err
//	}
//	if !summary.OK() {
//	    // inspect summary.Results
//	}
package build
