package domain

// InputDigest is the provenance record for one root executable.
type InputDigest struct {
	// Path is the executable as given on the command line.
	Path string
	// Digest is the xxhash of the file content, formatted as 16 hex digits.
	Digest string
}

// ManifestEntry is one dependency line of the emitted manifest.
type ManifestEntry struct {
	// Name is the composite "package:arch" key.
	Name string
	// MinVersion, when non-empty, is emitted as a ">=" constraint.
	MinVersion string
}

// Manifest is the complete output artifact of a resolution run. Entries and
// Warnings are fully ordered by the time the emitter sees them.
type Manifest struct {
	// FormatVersion is the manifest format marker.
	FormatVersion int
	// Tool identifies the generating tool and its version.
	Tool string
	// Inputs lists the root executables with their content digests.
	Inputs []InputDigest
	// Entries are the resolved packages, sorted by name.
	Entries []ManifestEntry
	// Warnings are emitted as comment blocks after the dependency lines.
	Warnings []string
}

// ManifestFormatVersion is the current manifest format.
const ManifestFormatVersion = 1
