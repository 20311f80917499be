package category

import (
	"testing"

	"tidy/internal/config"
)

func TestClassifyDefaults(t *testing.T) {
	table := NewTable(config.DefaultCategories())

	cases := map[string]string{
		"photo.JPG":    "Images",
		"trip.heic":    "Images",
		"report.pdf":   "Documents",
		"clip.mkv":     "Videos",
		"song.flac":    "Audio",
		"backup.tar":   "Archives",
		"main.go":      "Code",
		"setup.exe":    "Executables",
		"data.xyz123":  "Other",
		"no_extension": "Other",
	}
	for path, want := range cases {
		if got := table.Classify(path); got != want {
			t.Errorf("Classify(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestClassifyFirstCategoryWins(t *testing.T) {
	table := NewTable([]config.Category{
		{Name: "Scripts", Extensions: []string{".sh"}},
		{Name: "Executables", Extensions: []string{".sh", ".exe"}},
	})
	if got := table.Classify("run.sh"); got != "Scripts" {
		t.Fatalf("Classify(run.sh) = %s, want Scripts", got)
	}
	if got := table.Classify("setup.exe"); got != "Executables" {
		t.Fatalf("Classify(setup.exe) = %s, want Executables", got)
	}
}

func TestCounts(t *testing.T) {
	table := NewTable(config.DefaultCategories())
	table.Classify("a.jpg")
	table.Classify("b.png")
	table.Classify("c.weird")

	counts := table.Counts()
	if counts["Images"] != 2 {
		t.Fatalf("Images count = %d, want 2", counts["Images"])
	}
	if counts[DefaultName] != 1 {
		t.Fatalf("Other count = %d, want 1", counts[DefaultName])
	}
	if _, present := counts["Videos"]; present {
		t.Fatal("empty category should not appear in counts")
	}
}
