// Package platform holds the target OS enum and the fixed OS-to-compiler
// lookup the build form offers.
package platform
