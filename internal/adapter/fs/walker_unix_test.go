//go:build unix

package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"sfz/internal/domain"
)

// buildHierarchy lays out two trees under dir. "cyrillic" mirrors "roman"
// through symlinks, one of which dangles.
func buildHierarchy(t *testing.T, dir string) {
	t.Helper()
	for _, d := range []string{"roman/upper", "roman/lower", "cyrillic/upper", "cyrillic/lower"} {
		if err := Makedirs(filepath.Join(dir, d), 0700); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"roman/upper/A", "roman/upper/B", "roman/upper/Z", "roman/README", "cyrillic/README"} {
		writeFile(t, filepath.Join(dir, f))
	}
	if err := Symlink("../../roman/upper/A", filepath.Join(dir, "cyrillic/upper/A")); err != nil {
		t.Fatal(err)
	}
	if err := Symlink("../../roman/lower/a", filepath.Join(dir, "cyrillic/lower/a")); err != nil {
		t.Fatal(err)
	}
}

func TestHierarchyPredicates(t *testing.T) {
	dir := t.TempDir()
	buildHierarchy(t, dir)

	tests := []struct {
		path                         string
		exists, isDir, isFile, isLnk bool
	}{
		{"roman/upper", true, true, false, false},
		{"roman/upper/A", true, false, true, false},
		{"cyrillic/upper/A", true, false, true, true},
		{"cyrillic/lower/a", false, false, false, true},
		{"cyrillic/lower/Z", false, false, false, false},
	}
	for _, tt := range tests {
		p := filepath.Join(dir, tt.path)
		if got := Exists(p); got != tt.exists {
			t.Errorf("Exists(%s) = %v", tt.path, got)
		}
		if got := IsDir(p); got != tt.isDir {
			t.Errorf("IsDir(%s) = %v", tt.path, got)
		}
		if got := IsFile(p); got != tt.isFile {
			t.Errorf("IsFile(%s) = %v", tt.path, got)
		}
		if got := IsLink(p); got != tt.isLnk {
			t.Errorf("IsLink(%s) = %v", tt.path, got)
		}
	}
}

func TestWalkHierarchy(t *testing.T) {
	dir := t.TempDir()
	buildHierarchy(t, dir)
	cwd, err := Getcwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	assertCalls(t, record(t, "roman", domain.WalkPhysical), []string{
		"pre_directory roman",
		"file roman/README",
		"pre_directory roman/lower",
		"post_directory roman/lower",
		"pre_directory roman/upper",
		"file roman/upper/A",
		"file roman/upper/B",
		"file roman/upper/Z",
		"post_directory roman/upper",
		"post_directory roman",
	})

	assertCalls(t, record(t, "cyrillic", domain.WalkPhysical), []string{
		"pre_directory cyrillic",
		"file cyrillic/README",
		"pre_directory cyrillic/lower",
		"symlink cyrillic/lower/a",
		"post_directory cyrillic/lower",
		"pre_directory cyrillic/upper",
		"symlink cyrillic/upper/A",
		"post_directory cyrillic/upper",
		"post_directory cyrillic",
	})

	assertCalls(t, record(t, "cyrillic", domain.WalkLogical), []string{
		"pre_directory cyrillic",
		"file cyrillic/README",
		"pre_directory cyrillic/lower",
		"broken_symlink cyrillic/lower/a",
		"post_directory cyrillic/lower",
		"pre_directory cyrillic/upper",
		"file cyrillic/upper/A",
		"post_directory cyrillic/upper",
		"post_directory cyrillic",
	})

	for _, p := range []string{"cyrillic/lower/a", "cyrillic/README", "roman/README"} {
		if err := Unlink(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := Rmdir("cyrillic/lower"); err != nil {
		t.Fatal(err)
	}
	if err := Rmtree("roman/upper"); err != nil {
		t.Fatal(err)
	}

	assertCalls(t, record(t, ".", domain.WalkLogical), []string{
		"pre_directory .",
		"pre_directory ./cyrillic",
		"pre_directory ./cyrillic/upper",
		"broken_symlink ./cyrillic/upper/A",
		"post_directory ./cyrillic/upper",
		"post_directory ./cyrillic",
		"pre_directory ./roman",
		"pre_directory ./roman/lower",
		"post_directory ./roman/lower",
		"post_directory ./roman",
		"post_directory .",
	})
}

func TestWalkSymlinkStats(t *testing.T) {
	dir := t.TempDir()
	buildHierarchy(t, dir)

	check := func(walkType domain.WalkType, name string, wantLink bool) {
		t.Helper()
		err := Walk(filepath.Join(dir, "cyrillic"), walkType, EntryFunc(func(e domain.Entry) error {
			if filepath.Base(e.Path) == name && e.Stat.IsSymlink() != wantLink {
				t.Errorf("%s %s: IsSymlink = %v, want %v", walkType, e.Path, e.Stat.IsSymlink(), wantLink)
			}
			return nil
		}))
		if err != nil {
			t.Fatal(err)
		}
	}
	check(domain.WalkPhysical, "A", true)
	check(domain.WalkLogical, "A", false)
	check(domain.WalkLogical, "a", true)
}

func TestWalkOtherAndCycle(t *testing.T) {
	dir := t.TempDir()
	if err := Makedirs(filepath.Join(dir, "aesc", "wynn"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := Symlink("../..", filepath.Join(dir, "aesc", "wynn", "eth")); err != nil {
		t.Fatal(err)
	}
	if err := Mkfifo(filepath.Join(dir, "aesc", "thorn"), 0600); err != nil {
		t.Fatal(err)
	}

	j := filepath.Join
	var cycles int
	err := Walk(dir, domain.WalkLogical, EntryFunc(func(e domain.Entry) error {
		if e.Kind == domain.CycleDirectory {
			cycles++
			if !e.Stat.IsDir() {
				t.Errorf("cycle %s: stat is not a directory", e.Path)
			}
		}
		if e.Kind == domain.Other && e.Stat.Mode&os.ModeNamedPipe == 0 {
			t.Errorf("other %s: mode %v is not a fifo", e.Path, e.Stat.Mode)
		}
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 1 {
		t.Errorf("got %d cycle callbacks, want 1", cycles)
	}

	assertCalls(t, record(t, dir, domain.WalkLogical), []string{
		"pre_directory " + dir,
		"pre_directory " + j(dir, "aesc"),
		"other " + j(dir, "aesc", "thorn"),
		"pre_directory " + j(dir, "aesc", "wynn"),
		"cycle_directory " + j(dir, "aesc", "wynn", "eth"),
		"post_directory " + j(dir, "aesc", "wynn"),
		"post_directory " + j(dir, "aesc"),
		"post_directory " + dir,
	})

	assertCalls(t, record(t, dir, domain.WalkPhysical), []string{
		"pre_directory " + dir,
		"pre_directory " + j(dir, "aesc"),
		"other " + j(dir, "aesc", "thorn"),
		"pre_directory " + j(dir, "aesc", "wynn"),
		"symlink " + j(dir, "aesc", "wynn", "eth"),
		"post_directory " + j(dir, "aesc", "wynn"),
		"post_directory " + j(dir, "aesc"),
		"post_directory " + dir,
	})
}

func TestWalkUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "f"))
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	var posts int
	err := Walk(dir, domain.WalkPhysical, EntryFunc(func(e domain.Entry) error {
		if e.Kind == domain.PostDirectory {
			posts++
		}
		return nil
	}))
	if err == nil {
		t.Fatal("expected error for unreadable directory")
	}
	if !os.IsPermission(err) {
		t.Errorf("expected permission error, got %v", err)
	}
	if posts != 0 {
		t.Errorf("walk continued after failure: %d post callbacks", posts)
	}
}

func TestRmtreeDoesNotFollowLinks(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "outside")
	writeFile(t, filepath.Join(outside, "keep.txt"))
	victim := filepath.Join(dir, "victim")
	if err := Makedirs(victim, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Symlink(outside, filepath.Join(victim, "link")); err != nil {
		t.Fatal(err)
	}
	if err := Mkfifo(filepath.Join(victim, "pipe"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Rmtree(victim); err != nil {
		t.Fatal(err)
	}
	if Exists(victim) || IsLink(victim) {
		t.Error("victim still exists")
	}
	if !IsFile(filepath.Join(outside, "keep.txt")) {
		t.Error("rmtree followed a symlink out of the tree")
	}
}

func TestWalkSkipDirFromCycleDirectoryIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := Makedirs(filepath.Join(dir, "a"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := Symlink("..", filepath.Join(dir, "a", "up")); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "b", "y"))

	var calls []string
	err := Walk(dir, domain.WalkLogical, EntryFunc(func(e domain.Entry) error {
		calls = append(calls, e.Kind.String()+" "+e.Path)
		if e.Kind == domain.CycleDirectory {
			return iofs.SkipDir
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("expected walk to complete, got %v", err)
	}

	j := filepath.Join
	assertCalls(t, calls, []string{
		"pre_directory " + dir,
		"pre_directory " + j(dir, "a"),
		"cycle_directory " + j(dir, "a", "up"),
		"post_directory " + j(dir, "a"),
		"pre_directory " + j(dir, "b"),
		"file " + j(dir, "b", "y"),
		"post_directory " + j(dir, "b"),
		"post_directory " + dir,
	})
}
