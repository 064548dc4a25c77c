package domain

import "regexp"

// Architecture identifies the machine architecture of an inspected binary.
// It uses the package manager's architecture names so it can be spliced
// directly into composite package keys like "libc6:amd64".
type Architecture string

const (
	// ArchUnknown means the binary signature matched no known architecture.
	ArchUnknown Architecture = ""
	// ArchI386 is 32-bit x86.
	ArchI386 Architecture = "i386"
	// ArchAmd64 is 64-bit x86.
	ArchAmd64 Architecture = "amd64"
	// ArchArmhf is 32-bit ARM with hardware floating point.
	ArchArmhf Architecture = "armhf"
	// ArchArm64 is 64-bit ARM.
	ArchArm64 Architecture = "arm64"
)

// String returns the architecture name, or "unknown" for the zero value.
func (a Architecture) String() string {
	if a == ArchUnknown {
		return "unknown"
	}
	return string(a)
}

// signaturePattern maps a binary type signature to an architecture tag.
type signaturePattern struct {
	re   *regexp.Regexp
	arch Architecture
}

// signatureTable is evaluated in order; the first match wins.
// The patterns target the type strings reported by file(1), e.g.
// "ELF 64-bit LSB pie executable, x86-64, version 1 (SYSV), ...".
var signatureTable = []signaturePattern{
	{regexp.MustCompile(`ELF 32-bit.*Intel 80386`), ArchI386},
	{regexp.MustCompile(`ELF 64-bit.*x86-64`), ArchAmd64},
	{regexp.MustCompile(`ELF 64-bit.*aarch64`), ArchArm64},
	{regexp.MustCompile(`ELF 32-bit.*ARM`), ArchArmhf},
}

// ClassifySignature matches a raw binary type signature against the
// architecture table. It returns ArchUnknown if no pattern matches.
func ClassifySignature(signature string) Architecture {
	for _, p := range signatureTable {
		if p.re.MatchString(signature) {
			return p.arch
		}
	}
	return ArchUnknown
}
