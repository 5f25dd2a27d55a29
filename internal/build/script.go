package build

import (
	"fmt"
	"strings"

	"github.com/keebtools/zmkbuild/internal/target"
)

// Paths inside the build container. The keyboard config is mounted
// read-only; the firmware directory is the writable channel back to the
// host.
const (
	containerWorkdir   = "/workspace"
	containerConfigDir = "/workspace/config"
	containerOutputDir = "/workspace/firmware"
)

// Assembles the shell command run inside the build container for one
// target.
//
// The sequence follows the ZMK local-build flow: initialize a west
// workspace from the mounted config, fetch the module tree with shallow
// clones, build the shield for the board, and stage the UF2 under its
// distinguishing name where the host can see it. Initialization failure is
// tolerated because the image may carry an already initialized workspace.
func buildScript(tgt target.Target, board string) string {
	steps := []string{
		"west init -l config || true",
		"west update --fetch-opt=--depth=1",
		fmt.Sprintf("west build -s zmk/app -b %s -- -DSHIELD=%s -DZMK_CONFIG=%s",
			board, tgt.Shield(), containerConfigDir),
		fmt.Sprintf("cp build/zephyr/zmk.uf2 %s/%s", containerOutputDir, tgt.Artifact(board)),
	}
	return strings.Join(steps, " && ")
}
