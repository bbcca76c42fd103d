package yearinfo_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"sorter/internal/classify"
	"sorter/internal/services"
	"sorter/internal/testsupport"
	"sorter/internal/yearinfo"
)

func TestYearPrefersExifForPhotos(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "IMG_0001.jpg")
	testsupport.WriteDated(t, path, testsupport.JPEGWithCaptureDate("2019:06:15 10:30:00"), 2022)

	extractor := yearinfo.New(nil)
	year, err := extractor.Year(path, classify.Photos)
	if err != nil {
		t.Fatalf("Year returned error: %v", err)
	}
	if year != "2019" {
		t.Fatalf("expected EXIF year 2019, got %q", year)
	}
}

func TestYearIgnoresExifForOtherCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	testsupport.WriteDated(t, path, testsupport.JPEGWithCaptureDate("2019:06:15 10:30:00"), 2021)

	year, err := yearinfo.New(nil).Year(path, classify.Text)
	if err != nil {
		t.Fatalf("Year returned error: %v", err)
	}
	if year != "2021" {
		t.Fatalf("expected mtime year 2021, got %q", year)
	}
}

func TestYearFallsBackToModTime(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "no exif", data: []byte("plain bytes, not a jpeg")},
		{name: "non numeric year", data: testsupport.JPEGWithCaptureDate("abcd:06:15 10:30:00")},
		{name: "short year", data: testsupport.JPEGWithCaptureDate("19:06:15 10:30:00")},
		{name: "empty value", data: testsupport.JPEGWithCaptureDate("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "photo.jpg")
			testsupport.WriteDated(t, path, tc.data, 2018)

			year, err := yearinfo.New(nil).Year(path, classify.Photos)
			if err != nil {
				t.Fatalf("Year returned error: %v", err)
			}
			if year != "2018" {
				t.Fatalf("expected fallback year 2018, got %q", year)
			}
		})
	}
}

func TestYearUsesConfiguredLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	testsupport.WriteContent(t, path, []byte("x"))
	// 2020-12-31 23:30 UTC is already 2021 east of UTC.
	testsupport.SetModTime(t, path, time.Date(2020, time.December, 31, 23, 30, 0, 0, time.UTC))

	utc, err := yearinfo.New(nil, yearinfo.WithLocation(time.UTC)).Year(path, classify.Videos)
	if err != nil {
		t.Fatalf("Year returned error: %v", err)
	}
	if utc != "2020" {
		t.Fatalf("expected 2020 in UTC, got %q", utc)
	}

	east := time.FixedZone("UTC+2", 2*60*60)
	shifted, err := yearinfo.New(nil, yearinfo.WithLocation(east)).Year(path, classify.Videos)
	if err != nil {
		t.Fatalf("Year returned error: %v", err)
	}
	if shifted != "2021" {
		t.Fatalf("expected 2021 in UTC+2, got %q", shifted)
	}
}

func TestYearMissingFileIsMetadataError(t *testing.T) {
	_, err := yearinfo.New(nil).Year(filepath.Join(t.TempDir(), "missing.log"), classify.Logs)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, services.ErrMetadataRead) {
		t.Fatalf("expected ErrMetadataRead, got %v", err)
	}
}

func TestCaptureYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpeg")
	testsupport.WriteContent(t, path, testsupport.JPEGWithCaptureDate("2007:01:02 03:04:05"))

	year, err := yearinfo.CaptureYear(path)
	if err != nil {
		t.Fatalf("CaptureYear returned error: %v", err)
	}
	if year != "2007" {
		t.Fatalf("expected 2007, got %q", year)
	}
}
