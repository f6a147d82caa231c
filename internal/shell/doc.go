// Package shell renders the stored environment snapshot as shell commands
// (export for POSIX shells, set -gx for Fish) so the user can copy them into
// a terminal. Nothing here touches the real process environment.
package shell
