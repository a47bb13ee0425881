package fs

import "sfz/internal/domain"

// NopVisitor ignores every entry. Embed it to implement only the callbacks
// a visitor cares about.
type NopVisitor struct{}

func (NopVisitor) PreDirectory(string, domain.Stat) error   { return nil }
func (NopVisitor) PostDirectory(string, domain.Stat) error  { return nil }
func (NopVisitor) CycleDirectory(string, domain.Stat) error { return nil }
func (NopVisitor) File(string, domain.Stat) error           { return nil }
func (NopVisitor) Symlink(string, domain.Stat) error        { return nil }
func (NopVisitor) BrokenSymlink(string, domain.Stat) error  { return nil }
func (NopVisitor) Other(string, domain.Stat) error          { return nil }

// EntryFunc adapts a function over tagged entries to a TreeWalker.
type EntryFunc func(e domain.Entry) error

func (f EntryFunc) PreDirectory(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.PreDirectory, Stat: st})
}

func (f EntryFunc) PostDirectory(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.PostDirectory, Stat: st})
}

func (f EntryFunc) CycleDirectory(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.CycleDirectory, Stat: st})
}

func (f EntryFunc) File(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.File, Stat: st})
}

func (f EntryFunc) Symlink(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.Symlink, Stat: st})
}

func (f EntryFunc) BrokenSymlink(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.BrokenSymlink, Stat: st})
}

func (f EntryFunc) Other(path string, st domain.Stat) error {
	return f(domain.Entry{Path: path, Kind: domain.Other, Stat: st})
}
