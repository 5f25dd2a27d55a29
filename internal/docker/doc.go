// Package docker drives the Docker CLI for containerized builds.
//
// A [Client] shells out to the docker binary for every operation: a PATH
// lookup verifies the binary is installed, "docker info" verifies the
// daemon is reachable, "docker pull" fetches the build image, and
// "docker run" executes one ephemeral container per invocation with the
// requested bind mounts and working directory.
//
// All process invocation flows through the [Runner] seam so tests can
// substitute a fake that records arguments and scripts exit codes. A
// non-zero container exit code is reported in the [Result] rather than
// as an error; callers decide what a failure means.
//
// Example usage:
//
//	client := docker.New("")
//	if err := client.Available(); err != nil {
//	    return err
//	}
//	if err := client.Ping(ctx); err != nil {
//	    return err
//	}
//
//	if err := client.Pull(ctx, "zmkfirmware/zmk-build-arm:stable"); err != nil {
//	    return err
//	}
//
//	res, err := client.Run(ctx, docker.RunSpec{
//	    Name:    "zmkbuild-left",
//	    Image:   "zmkfirmware/zmk-build-arm:stable",
//	    Workdir: "/workspace",
//	    Mounts: []docker.Mount{
//	        {Source: "/home/me/zmk-config/config", Target: "/workspace/config", ReadOnly: true},
//	        {Source: "/home/me/zmk-config/firmware", Target: "/workspace/firmware"},
//	    },
//	    Command: []string{"sh", "-c", "west build ..."},
//	})
package docker
