package domain

// Settings holds the run configuration merged from the optional
// shlibdeps.yaml file and command line flags. Flags win over file
// values.
type Settings struct {
	// LibraryPaths are directories scanned for locally built libraries,
	// in declaration order. Earlier entries shadow later ones.
	LibraryPaths []string

	// Output is the manifest destination path. Empty means stdout.
	Output string

	// Versions enables minimum version constraints in manifest entries.
	Versions bool

	// Exclude lists package names removed from the manifest after
	// resolution.
	Exclude []string
}

// Merge overlays non-zero values from other onto a copy of s and
// returns the result. Boolean flags are ORed.
func (s Settings) Merge(other Settings) Settings {
	merged := s
	if len(other.LibraryPaths) > 0 {
		merged.LibraryPaths = other.LibraryPaths
	}
	if other.Output != "" {
		merged.Output = other.Output
	}
	if len(other.Exclude) > 0 {
		merged.Exclude = other.Exclude
	}
	merged.Versions = s.Versions || other.Versions
	return merged
}

// Excluded reports whether the given package name is on the exclude
// list.
func (s Settings) Excluded(name string) bool {
	for _, excluded := range s.Exclude {
		if excluded == name {
			return true
		}
	}
	return false
}
