package dates

import (
	"testing"
	"time"

	"tidy/internal/logging"
	"tidy/internal/scan"
)

func TestFromFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"2022-03-04_party.jpg", "2022-03-04"},
		{"backup_2021_12_31.tar", "2021-12-31"},
		{"report_20230515.pdf", "2023-05-15"},
		{"scan 15-05-2023.png", "2023-05-15"},
		{"IMG_20181216_140830.jpg", "2018-12-16"},
		{"VID-20200701-WA0001.mp4", "2020-07-01"},
		{"19991231.log", "1999-12-31"},
	}
	for _, tc := range cases {
		got, ok := FromFilename(tc.name)
		if !ok {
			t.Errorf("FromFilename(%q): no date found", tc.name)
			continue
		}
		if formatted := got.Format("2006-01-02"); formatted != tc.want {
			t.Errorf("FromFilename(%q) = %s, want %s", tc.name, formatted, tc.want)
		}
	}
}

func TestFromFilenameNoMatch(t *testing.T) {
	for _, name := range []string{
		"notes.txt",
		"invoice_123456.pdf",
		"20230230_bad.txt", // February 30 is not a date
		"9999-12-31.png",   // year out of range
	} {
		if _, ok := FromFilename(name); ok {
			t.Errorf("FromFilename(%q): unexpected match", name)
		}
	}
}

func TestFromFilenameAmbiguousPrefersDayFirst(t *testing.T) {
	got, ok := FromFilename("05-04-2023.txt")
	if !ok {
		t.Fatal("expected a date")
	}
	if formatted := got.Format("2006-01-02"); formatted != "2023-04-05" {
		t.Fatalf("got %s, want 2023-04-05", formatted)
	}
}

func TestFromFilenameMonthFirstFallback(t *testing.T) {
	// Day-first reading would need month 13, so the month-first pattern wins.
	got, ok := FromFilename("04-13-2022_notes.txt")
	if !ok {
		t.Fatal("expected a date")
	}
	if formatted := got.Format("2006-01-02"); formatted != "2022-04-13" {
		t.Fatalf("got %s, want 2022-04-13", formatted)
	}
}

func TestFolderName(t *testing.T) {
	ts := time.Date(2023, time.May, 15, 10, 30, 0, 0, time.Local)
	if got := FolderName(ts, GranularityYear); got != "2023" {
		t.Errorf("year: got %s", got)
	}
	if got := FolderName(ts, GranularityMonth); got != "2023-05" {
		t.Errorf("month: got %s", got)
	}
	if got := FolderName(ts, GranularityDay); got != "2023-05-15" {
		t.Errorf("day: got %s", got)
	}
}

func TestFromFilesystem(t *testing.T) {
	mod := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
	access := mod.Add(-48 * time.Hour)
	birth := mod.Add(-30 * 24 * time.Hour)

	record := scan.FileRecord{ModTime: mod, AccessTime: access, BirthTime: birth}
	if got := FromFilesystem(record); !got.Equal(birth) {
		t.Errorf("with birth time: got %v, want %v", got, birth)
	}

	record.BirthTime = time.Time{}
	if got := FromFilesystem(record); !got.Equal(access) {
		t.Errorf("without birth time: got %v, want %v", got, access)
	}

	record.AccessTime = time.Time{}
	if got := FromFilesystem(record); !got.Equal(mod) {
		t.Errorf("mod time only: got %v, want %v", got, mod)
	}
}

func TestResolveFileDatePolicyIgnoresFilename(t *testing.T) {
	mod := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	record := scan.FileRecord{Path: "/tmp/2022-03-04_party.jpg", ModTime: mod}

	resolver := NewResolver(logging.NewNop(), 0)
	resolved := resolver.Resolve(record, SourceFileDate)
	if resolved.Origin != OriginFilesystem {
		t.Fatalf("origin = %s, want %s", resolved.Origin, OriginFilesystem)
	}
	if !resolved.Time.Equal(mod) {
		t.Fatalf("time = %v, want %v", resolved.Time, mod)
	}
}

func TestResolveFilenamePolicy(t *testing.T) {
	record := scan.FileRecord{Path: "/tmp/2022-03-04_party.jpg", ModTime: time.Now()}

	resolver := NewResolver(logging.NewNop(), 0)
	resolved := resolver.Resolve(record, SourceFilename)
	if resolved.Origin != OriginFilename {
		t.Fatalf("origin = %s, want %s", resolved.Origin, OriginFilename)
	}
	if formatted := resolved.Time.Format("2006-01-02"); formatted != "2022-03-04" {
		t.Fatalf("time = %s, want 2022-03-04", formatted)
	}
}

func TestParseSource(t *testing.T) {
	if _, err := ParseSource("filename"); err != nil {
		t.Fatalf("valid source rejected: %v", err)
	}
	if _, err := ParseSource("exif"); err == nil {
		t.Fatal("expected error for unsupported source")
	}
}

func TestParseGranularity(t *testing.T) {
	if _, err := ParseGranularity("Month"); err != nil {
		t.Fatalf("valid granularity rejected: %v", err)
	}
	if _, err := ParseGranularity("week"); err == nil {
		t.Fatal("expected error for unsupported granularity")
	}
}
