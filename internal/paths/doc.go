// Provides platform-appropriate paths for the tool.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The tool name "zmkbuild" is used as the subdirectory
// under each base path. The per-workspace configuration file is an exception:
// it lives dotfile-style next to the keyboard config it describes.
package paths
