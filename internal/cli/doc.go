// Parses flags and configures logging for the zmkbuild tool.
//
// The tool accepts the following flags:
//
//	-l, --left             Build only the left half firmware.
//	-r, --right            Build only the right half firmware.
//	-s, --settings-reset   Build only the settings reset firmware.
//	-q, --quiet            Suppress informational output.
//	-v, --verbose          Enable verbose output.
//	-d, --debug            Enable debug output.
//	    --config=DIR       Override the keyboard config directory.
//	    --output=DIR       Override the firmware output directory.
//	    --image=REF        Override the build image reference.
//	    --version          Show version information.
//
// The selection flags are mutually exclusive; without one, every target is
// built in the fixed order. Flags override build-time defaults set via
// linker flags and settings read from configuration files. After parsing,
// the global logger is reconfigured to reflect the final level before the
// build starts.
package cli
