package locate

import "testing"

func openTestDriver(t *testing.T, root string, blocks [][2]interface{}) *Driver {
	t.Helper()
	path := writeTestDatabase(t, root, blocks)
	d, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening test database: %s", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewDriver(d)
}

func TestDriverFind(t *testing.T) {
	dr := openTestDriver(t, "/home", [][2]interface{}{
		{"/home/user", []Entry{
			{Name: []byte("report.txt")},
			{IsSubdir: true, Name: []byte("Photos")},
		}},
		{"/home/user/Photos", []Entry{
			{Name: []byte("cat.jpg")},
		}},
	})

	patterns, err := CompilePatterns([]string{"*.txt"}, false, false)
	if err != nil {
		t.Fatalf("unexpected error compiling patterns: %s", err)
	}

	results, err := dr.Find(patterns, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one matching directory, got %d", len(results))
	}
	if string(results[0].Block.Path) != "/home/user" {
		t.Errorf("expected match in /home/user, got %q", results[0].Block.Path)
	}
	if len(results[0].Matches) != 1 || string(results[0].Matches[0].Name) != "report.txt" {
		t.Errorf("expected one match report.txt, got %v", results[0].Matches)
	}
}

func TestDriverFindLimitOutputDirs(t *testing.T) {
	dr := openTestDriver(t, "/", [][2]interface{}{
		{"/a", []Entry{{Name: []byte("x.log")}}},
		{"/b", []Entry{{Name: []byte("y.log")}}},
		{"/c", []Entry{{Name: []byte("z.log")}}},
	})

	patterns, _ := CompilePatterns([]string{"*.log"}, false, false)
	results, err := dr.Find(patterns, 0, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected limitOutputDirs=2 to cap results, got %d", len(results))
	}
}

func TestDriverDups(t *testing.T) {
	leaf := []Entry{{Name: []byte("same.txt")}}
	dr := openTestDriver(t, "/", [][2]interface{}{
		{"/a", []Entry{{IsSubdir: true, Name: []byte("dup1")}}},
		{"/a/dup1", leaf},
		{"/b", []Entry{{IsSubdir: true, Name: []byte("dup2")}}},
		{"/b/dup2", leaf},
		{"/c", []Entry{{IsSubdir: true, Name: []byte("unique")}}},
		{"/c/unique", []Entry{{Name: []byte("only-here.txt")}}},
	})

	sets, err := dr.Dups(nil, DigestSHA256, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected one duplicate set, got %d: %v", len(sets), sets)
	}
	if len(sets[0].Paths) != 2 {
		t.Errorf("expected 2 duplicated paths, got %v", sets[0].Paths)
	}
}

func TestDriverDupsPathSelector(t *testing.T) {
	leaf := []Entry{{Name: []byte("same.txt")}}
	dr := openTestDriver(t, "/", [][2]interface{}{
		{"/a/dup1", leaf},
		{"/b/dup2", leaf},
	})

	selectors, _ := CompilePatterns([]string{"/a/*"}, false, false)
	sets, err := dr.Dups(selectors, DigestSHA256, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(sets) != 0 {
		t.Errorf("expected no duplicates when only one selected directory shares the content, got %v", sets)
	}
}

func TestDriverTree(t *testing.T) {
	dr := openTestDriver(t, "/", [][2]interface{}{
		{"/keep/a", nil},
		{"/keep/a/b", nil},
		{"/other", nil},
	})

	roots, _ := CompilePatterns([]string{"/keep/a"}, false, false)
	results, err := dr.Tree(roots, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one subtree, got %d", len(results))
	}
	if results[0].Root != "/keep/a" {
		t.Errorf("expected root /keep/a, got %q", results[0].Root)
	}
	if len(results[0].Tree.Root.Children) != 1 || results[0].Tree.Root.Children[0].Segment != "b" {
		t.Errorf("expected one child segment %q, got %v", "b", results[0].Tree.Root.Children)
	}
}
