// Package platform provides the filesystem primitives the scaffold relies on:
// exclusive file creation that never truncates an existing file, and
// permission changes that degrade to a no-op on Windows.
package platform
