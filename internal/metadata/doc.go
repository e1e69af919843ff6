// Package metadata assembles the package description handed to the
// packaging toolchain: the static identity from package.yaml, the long
// description from README.md, the requirements list and the discovered
// sub-packages. It validates the result against an embedded JSON Schema
// and registers it through a Registrar in yaml, json or PKG-INFO form.
package metadata
