package metadata

import (
	"bytes"
	"fmt"
)

// pkgInfoVersion is the Core Metadata version emitted by renderPkgInfo.
const pkgInfoVersion = "2.1"

// renderPkgInfo writes m as Core Metadata headers followed by the long
// description as the message body.
func renderPkgInfo(m *Metadata) []byte {
	var buf bytes.Buffer
	header := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&buf, "%s: %s\n", key, value)
		}
	}

	header("Metadata-Version", pkgInfoVersion)
	header("Name", m.Name)
	header("Version", m.Version)
	header("Summary", m.Description)
	header("Author", m.Author)
	header("Author-email", m.AuthorEmail)
	for _, c := range m.Classifiers {
		header("Classifier", c)
	}
	header("Requires-Python", m.PythonRequires)
	header("Description-Content-Type", m.LongDescriptionContentType)
	for _, r := range m.InstallRequires {
		header("Requires-Dist", r)
	}

	if m.LongDescription != "" {
		buf.WriteByte('\n')
		buf.WriteString(m.LongDescription)
	}
	return buf.Bytes()
}
