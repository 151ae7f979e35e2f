package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacenote/internal/catalog"
	"pacenote/internal/domain"
	"pacenote/internal/store"
)

func stage(t *testing.T) domain.Stage {
	t.Helper()
	st, ok := catalog.Resolve("1", "1")
	if !ok {
		t.Fatal("stage 1/1 missing from catalog")
	}
	return st
}

func writeStageFile(t *testing.T, root string, st domain.Stage, name, body string) {
	t.Helper()
	dir := filepath.Join(root, catalog.Dir(st))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const telemetry = "" +
	"1,0,0.000000,0.000000,0.000000\n" +
	"2,1500000000,1.000000,2.000000,3.000000\n" +
	"3,2500000000,4.000000,5.000000,6.000000\n" +
	"4,4000000000,7.000000,8.000000,9.000000\n"

func TestRecorded(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	fs := store.NewFileStore(root)

	if fs.Recorded(st) {
		t.Fatal("empty root reported as recorded")
	}
	writeStageFile(t, root, st, "telemetry.log", telemetry)
	if fs.Recorded(st) {
		t.Fatal("telemetry alone reported as recorded")
	}
	writeStageFile(t, root, st, "capture.wav", "RIFF")
	if !fs.Recorded(st) {
		t.Fatal("expected stage to be recorded")
	}
}

func TestRegions_MissingFileIsEmpty(t *testing.T) {
	fs := store.NewFileStore(t.TempDir())
	regions, err := fs.Regions(stage(t))
	if err != nil {
		t.Fatalf("regions: %v", err)
	}
	if regions == nil || len(regions) != 0 {
		t.Fatalf("expected empty non-nil regions, got %#v", regions)
	}
}

func TestSaveRegions_SortsAndGeneratesPacenotes(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	writeStageFile(t, root, st, "telemetry.log", telemetry)
	fs := store.NewFileStore(root)

	in := domain.Regions{
		{Start: 2.0, End: 3.0, Content: "right 4, long"},
		{Start: 1.0, End: 1.5, Content: "left 3"},
	}
	if err := fs.SaveRegions(st, in); err != nil {
		t.Fatalf("save regions: %v", err)
	}

	got, err := fs.Regions(st)
	if err != nil {
		t.Fatalf("regions: %v", err)
	}
	if len(got) != 2 || got[0].Content != "left 3" || got[1].Content != "right 4, long" {
		t.Fatalf("unexpected regions after save: %#v", got)
	}
	if in[0].Content != "right 4, long" {
		t.Fatal("SaveRegions reordered the caller's slice")
	}

	b, err := os.ReadFile(filepath.Join(root, catalog.Dir(st), "pacenote.log"))
	if err != nil {
		t.Fatalf("read pacenote.log: %v", err)
	}
	want := "" +
		"1.000000,2.000000,3.000000,left 3\n" +
		"4.000000,5.000000,6.000000,right 4, long\n"
	if string(b) != want {
		t.Fatalf("pacenote.log mismatch:\n got %q\nwant %q", b, want)
	}
}

func TestSaveRegions_RequiresTelemetry(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	fs := store.NewFileStore(root)

	err := fs.SaveRegions(st, domain.Regions{{Start: 1, End: 2, Content: "x"}})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestTrack_SkipsMalformedLines(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	writeStageFile(t, root, st, "telemetry.log", telemetry+"bad,line\n5,x,1,2,3\n")
	fs := store.NewFileStore(root)

	track, err := fs.Track(st)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if len(track) != 4 {
		t.Fatalf("expected 4 points, got %d", len(track))
	}
	if track[3].UID != 4 || track[3].Z != 9 {
		t.Fatalf("unexpected last point: %#v", track[3])
	}
}

func TestFilePath_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	fs := store.NewFileStore(root)

	p, err := fs.FilePath(st, "capture.wav")
	if err != nil {
		t.Fatalf("file path: %v", err)
	}
	if !strings.HasPrefix(p, root) {
		t.Fatalf("path %q outside root %q", p, root)
	}

	for _, name := range []string{"", ".", "..", "../secret", "a/b"} {
		if _, err := fs.FilePath(st, name); !errors.Is(err, domain.ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestSaveTelemetry_KeepsEarlierRecording(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	fs := store.NewFileStore(root)

	points := []domain.TrackPoint{
		{UID: 1, Elapsed: 0, X: 0, Y: 0, Z: 0},
		{UID: 2, Elapsed: 1500000000, X: 1, Y: 2, Z: 3},
	}
	first, err := fs.SaveTelemetry(st, points)
	if err != nil {
		t.Fatalf("SaveTelemetry: %v", err)
	}
	if filepath.Base(first) != "telemetry.log" {
		t.Fatalf("first recording = %q", first)
	}
	second, err := fs.SaveTelemetry(st, points[:1])
	if err != nil {
		t.Fatalf("SaveTelemetry again: %v", err)
	}
	if filepath.Base(second) != "telemetry.log.1" {
		t.Fatalf("second recording = %q", second)
	}

	track, err := fs.Track(st)
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if len(track) != 2 || track[1] != points[1] {
		t.Fatalf("track = %+v", track)
	}
}

func TestCues(t *testing.T) {
	root := t.TempDir()
	st := stage(t)
	fs := store.NewFileStore(root)

	if fs.HasPacenotes(st) {
		t.Fatal("no pacenote.log yet")
	}
	if _, err := fs.Cues(st); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Cues without file: %v", err)
	}

	writeStageFile(t, root, st, "pacenote.log", ""+
		"1.000000,2.000000,3.000000,left 3\n"+
		"bad,2,3,skipped\n"+
		"4.000000,5.000000,6.000000,right 2,over crest\n")
	if !fs.HasPacenotes(st) {
		t.Fatal("expected pacenotes")
	}
	cues, err := fs.Cues(st)
	if err != nil {
		t.Fatalf("Cues: %v", err)
	}
	want := []domain.Cue{
		{X: 1, Y: 2, Z: 3, Message: "left 3"},
		{X: 4, Y: 5, Z: 6, Message: "right 2 over crest"},
	}
	if len(cues) != len(want) {
		t.Fatalf("cues = %+v", cues)
	}
	for i := range want {
		if cues[i] != want[i] {
			t.Fatalf("cue %d = %+v, want %+v", i, cues[i], want[i])
		}
	}
}
