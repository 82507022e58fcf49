package steam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ultrakill-save-editor/internal/game"
)

func makeSlot(t *testing.T, lib string, slot game.SaveSlot) string {
	t.Helper()
	dir := filepath.Join(lib, "steamapps", "common", "ULTRAKILL", "Saves", slot.DirName())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create slot dir: %v", err)
	}
	return dir
}

func TestLocator_FindsSlotInRoot(t *testing.T) {
	root := t.TempDir()
	want := makeSlot(t, root, game.SlotTwo)

	l := &Locator{Roots: []string{root}}
	got, err := l.SlotDir(game.SlotTwo)
	if err != nil {
		t.Fatalf("SlotDir() returned unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("SlotDir() = %s, want %s", got, want)
	}
}

func TestLocator_FollowsLibraryFolders(t *testing.T) {
	root := t.TempDir()
	extra := t.TempDir()
	want := makeSlot(t, extra, game.SlotOne)

	vdf := "\"libraryfolders\"\n{\n\t\"0\"\n\t{\n\t\t\"path\"\t\t\"" + root + "\"\n\t}\n" +
		"\t\"1\"\n\t{\n\t\t\"path\"\t\t\"" + extra + "\"\n\t\t\"label\"\t\t\"\"\n\t}\n}\n"
	if err := os.MkdirAll(filepath.Join(root, "steamapps"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "steamapps", "libraryfolders.vdf"), []byte(vdf), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Locator{Roots: []string{root}}
	libs := l.Libraries()
	if len(libs) != 2 {
		t.Fatalf("expected 2 libraries, got %v", libs)
	}
	got, err := l.SlotDir(game.SlotOne)
	if err != nil {
		t.Fatalf("SlotDir() returned unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("SlotDir() = %s, want %s", got, want)
	}
}

func TestLibraryFolders_Formats(t *testing.T) {
	tests := []struct {
		name string
		vdf  string
		want []string
	}{
		{
			name: "numbered blocks",
			vdf:  "\"libraryfolders\"\n{\n\t\"1\"\n\t{\n\t\t\"path\"\t\t\"/games/b\"\n\t}\n\t\"0\"\n\t{\n\t\t\"path\"\t\t\"/games/a\"\n\t}\n}\n",
			want: []string{"/games/a", "/games/b"},
		},
		{
			name: "flat legacy entries",
			vdf:  "\"LibraryFolders\"\n{\n\t\"TimeNextStatsReport\"\t\t\"1700000000\"\n\t\"1\"\t\t\"/games/old\"\n}\n",
			want: []string{"/games/old"},
		},
		{
			name: "unparseable",
			vdf:  "\"libraryfolders\"\n{\n\t\"0\"\n\t{\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "libraryfolders.vdf")
			if err := os.WriteFile(path, []byte(tt.vdf), 0o644); err != nil {
				t.Fatal(err)
			}
			got := libraryFolders(path)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("libraryFolders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocator_MissingSlot(t *testing.T) {
	root := t.TempDir()
	makeSlot(t, root, game.SlotOne)

	l := &Locator{Roots: []string{root, filepath.Join(root, "nope")}}
	_, err := l.SlotDir(game.SlotFive)
	if err == nil {
		t.Fatal("expected an error for a missing slot")
	}
	if !strings.Contains(err.Error(), "Slot5") {
		t.Errorf("error should name the searched directory: %v", err)
	}

	if _, err := l.SlotDir(game.SaveSlot(9)); err == nil {
		t.Error("expected an error for slot 9")
	}
}

func TestNewLocator_PrefersOverride(t *testing.T) {
	root := t.TempDir()
	l := NewLocator(root)
	if len(l.Roots) == 0 || l.Roots[0] != filepath.Clean(root) {
		t.Errorf("override should come first, got %v", l.Roots)
	}
}
