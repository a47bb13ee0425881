// Package pathmodel splits and joins path strings without touching the
// filesystem. One implementation serves both POSIX and Windows conventions;
// a Style value selects separators and drive handling.
package pathmodel

import (
	"fmt"
	"os"
	"strings"
)

// Style describes the separator and drive conventions of a platform.
type Style struct {
	Sep    byte
	AltSep byte
	Drives bool
}

var (
	Posix   = Style{Sep: '/'}
	Windows = Style{Sep: '\\', AltSep: '/', Drives: true}

	// Native is the style of the host operating system.
	Native = nativeStyle()
)

func nativeStyle() Style {
	if os.PathSeparator == '\\' {
		return Windows
	}
	return Posix
}

// StyleByName returns the style called "posix", "windows" or "native".
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native, nil
	case "posix":
		return Posix, nil
	case "windows":
		return Windows, nil
	default:
		return Style{}, fmt.Errorf("unknown path style: %q", name)
	}
}

// IsSep reports whether c is a path separator in this style.
func (s Style) IsSep(c byte) bool {
	return c == s.Sep || (s.AltSep != 0 && c == s.AltSep)
}

func (s Style) indexSep(p string) int {
	for i := 0; i < len(p); i++ {
		if s.IsSep(p[i]) {
			return i
		}
	}
	return -1
}

func (s Style) lastSep(p string) int {
	for i := len(p) - 1; i >= 0; i-- {
		if s.IsSep(p[i]) {
			return i
		}
	}
	return -1
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// SplitDrive separates a drive prefix from the rest of path. Drives are
// "X:" letters and "\\machine\mount" UNC prefixes; anything else, and every
// path in a style without drives, has an empty drive.
func (s Style) SplitDrive(path string) (drive, rest string) {
	if !s.Drives || len(path) < 2 {
		return "", path
	}
	if path[1] == ':' && isDriveLetter(path[0]) {
		return path[:2], path[2:]
	}
	if !s.IsSep(path[0]) || !s.IsSep(path[1]) {
		return "", path
	}

	tail := path[2:]
	machine := s.indexSep(tail)
	if machine <= 0 {
		return "", path
	}
	tail = tail[machine+1:]
	mount := s.indexSep(tail)
	if mount < 0 {
		if tail == "" {
			return "", path
		}
		return path, ""
	}
	if mount == 0 {
		return "", path
	}
	n := 2 + machine + 1 + mount
	return path[:n], path[n:]
}

// Split returns the directory and final component of path. Trailing
// separators belong to the preceding component. A path with no separator
// has dirname "." (or its drive, if any); a root path splits into itself
// twice.
func (s Style) Split(path string) (dir, base string) {
	drive, local := s.SplitDrive(path)
	if local == "" {
		if drive == "" {
			return ".", ""
		}
		return drive, ""
	}

	end := len(local)
	for end > 1 && s.IsSep(local[end-1]) {
		end--
	}
	local = local[:end]
	if len(local) == 1 && s.IsSep(local[0]) {
		return drive + local, local
	}

	i := s.lastSep(local)
	switch {
	case i < 0:
		if drive != "" {
			return drive, local
		}
		return ".", local
	case i == 0:
		return drive + local[:1], local[1:]
	default:
		return drive + local[:i], local[i+1:]
	}
}

func (s Style) Dirname(path string) string {
	dir, _ := s.Split(path)
	return dir
}

func (s Style) Basename(path string) string {
	_, base := s.Split(path)
	return base
}

// Join appends segments to root with one separator between each. A segment
// that is absolute, or carries a drive, discards everything before it.
func (s Style) Join(root string, segments ...string) string {
	drive, local := s.SplitDrive(root)
	from := 0
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if d, l := s.SplitDrive(seg); d != "" {
			drive, local, from = d, l, i+1
		} else if s.IsSep(seg[0]) {
			local, from = seg, i+1
		}
	}

	var b strings.Builder
	b.WriteString(drive)
	b.WriteString(local)
	for _, seg := range segments[from:] {
		if b.Len() > 0 && !s.atBoundary(b.String()) {
			b.WriteByte(s.Sep)
		}
		b.WriteString(seg)
	}
	return b.String()
}

// atBoundary reports whether p can take another component without a
// separator: it already ends in one, or it is a bare "X:" drive.
func (s Style) atBoundary(p string) bool {
	if s.IsSep(p[len(p)-1]) {
		return true
	}
	if !s.Drives {
		return false
	}
	drive, rest := s.SplitDrive(p)
	return rest == "" && strings.HasSuffix(drive, ":")
}

func SplitDrive(path string) (string, string) { return Native.SplitDrive(path) }
func Split(path string) (string, string)      { return Native.Split(path) }
func Dirname(path string) string              { return Native.Dirname(path) }
func Basename(path string) string             { return Native.Basename(path) }

func Join(root string, segments ...string) string {
	return Native.Join(root, segments...)
}
