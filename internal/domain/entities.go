package domain

import (
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// WalkType selects whether symbolic links are followed during a walk.
type WalkType int

const (
	// WalkPhysical treats symbolic links as leaf entries.
	WalkPhysical WalkType = iota
	// WalkLogical follows symbolic links to their targets.
	WalkLogical
)

func (t WalkType) String() string {
	switch t {
	case WalkPhysical:
		return "physical"
	case WalkLogical:
		return "logical"
	default:
		return fmt.Sprintf("WalkType(%d)", int(t))
	}
}

// ParseWalkType parses "physical" or "logical" (case-insensitive).
func ParseWalkType(s string) (WalkType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "physical":
		return WalkPhysical, nil
	case "logical":
		return WalkLogical, nil
	default:
		return WalkPhysical, fmt.Errorf("unknown walk type: %q", s)
	}
}

// Stat is a metadata snapshot captured when an entry is visited.
type Stat struct {
	Name    string
	Mode    fs.FileMode
	Size    int64
	ModTime time.Time
	Sys     any
}

// NewStat copies the fields of info into a Stat.
func NewStat(info fs.FileInfo) Stat {
	return Stat{
		Name:    info.Name(),
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Sys:     info.Sys(),
	}
}

func (s Stat) IsDir() bool     { return s.Mode.IsDir() }
func (s Stat) IsRegular() bool { return s.Mode.IsRegular() }
func (s Stat) IsSymlink() bool { return s.Mode&fs.ModeSymlink != 0 }

// Kind classifies a visited entry.
type Kind int

const (
	PreDirectory Kind = iota
	PostDirectory
	CycleDirectory
	File
	Symlink
	BrokenSymlink
	Other
)

var kindNames = [...]string{
	PreDirectory:   "pre_directory",
	PostDirectory:  "post_directory",
	CycleDirectory: "cycle_directory",
	File:           "file",
	Symlink:        "symlink",
	BrokenSymlink:  "broken_symlink",
	Other:          "other",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown entry kind: %q", s)
}

// Entry is one visited filesystem entry.
type Entry struct {
	Path string
	Kind Kind
	Stat Stat
}

type SnapshotEntry struct {
	Path    string    `json:"path"`
	Kind    string    `json:"kind"`
	Mode    uint32    `json:"mode"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

type SnapshotMeta struct {
	Root     string    `json:"root"`
	WalkType string    `json:"walk_type"`
	TakenAt  time.Time `json:"taken_at"`
	Entries  int       `json:"entries"`
}

type SnapshotDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Changed []string `json:"changed"`
}

// Empty reports whether the diff carries no changes.
func (d SnapshotDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}
