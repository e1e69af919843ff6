// Package requirements reads a project's requirements file into an ordered
// list of dependency specifiers. The editable-install line "-e ." refers to
// the project itself and is never reported as a dependency.
package requirements
