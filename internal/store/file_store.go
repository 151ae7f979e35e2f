package store

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"pacenote/internal/catalog"
	"pacenote/internal/domain"
)

const (
	telemetryFile = "telemetry.log"
	captureFile   = "capture.wav"
	regionsFile   = "regions.log"
	pacenoteFile  = "pacenote.log"
)

// FileStore keeps stage recordings under a single log root.
type FileStore struct {
	root string
	mu   sync.RWMutex
}

func NewFileStore(root string) *FileStore { return &FileStore{root: root} }

var (
	_ domain.PacenoteStore  = (*FileStore)(nil)
	_ domain.TelemetryStore = (*FileStore)(nil)
)

// Root returns the log root directory.
func (s *FileStore) Root() string { return s.root }

func (s *FileStore) dir(stage domain.Stage) string {
	return filepath.Join(s.root, catalog.Dir(stage))
}

// Recorded reports whether both the telemetry and the audio capture exist.
func (s *FileStore) Recorded(stage domain.Stage) bool {
	dir := s.dir(stage)
	return exists(filepath.Join(dir, captureFile)) && exists(filepath.Join(dir, telemetryFile))
}

// ---------- Regions ----------

// Regions returns the saved regions of stage; a missing file yields an empty
// list. Lines that do not parse are skipped.
func (s *FileStore) Regions(stage domain.Stage) (domain.Regions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := readFile(filepath.Join(s.dir(stage), regionsFile))
	if err != nil {
		return nil, err
	}
	return parseRegions(b), nil
}

func parseRegions(b []byte) domain.Regions {
	regions := domain.Regions{}
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), ",", 3)
		if len(fields) != 3 {
			continue
		}
		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		regions = append(regions, domain.Region{Start: start, End: end, Content: fields[2]})
	}
	return regions
}

// SaveRegions stores regions sorted by start time and regenerates the
// stage's pacenote.log from its telemetry.
func (s *FileStore) SaveRegions(stage domain.Stage, regions domain.Regions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.dir(stage)
	track, err := readTrack(filepath.Join(dir, telemetryFile), true)
	if err != nil {
		return err
	}

	sorted := append(domain.Regions(nil), regions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var buf bytes.Buffer
	for _, r := range sorted {
		content := strings.ReplaceAll(r.Content, "\n", " ")
		fmt.Fprintf(&buf, "%f,%f,%s\n", r.Start, r.End, content)
	}
	if err := writeFile(filepath.Join(dir, regionsFile), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%s save failed: %w", regionsFile, err)
	}

	if err := writeFile(filepath.Join(dir, pacenoteFile), pacenotes(track, sorted), 0o644); err != nil {
		return fmt.Errorf("%s save failed: %w", pacenoteFile, err)
	}
	return nil
}

// pacenotes places each region, in order, at the first telemetry sample
// recorded after the region starts.
func pacenotes(track []domain.TrackPoint, regions domain.Regions) []byte {
	var buf bytes.Buffer
	index := 0
	for _, p := range track {
		if index >= len(regions) {
			break
		}
		region := regions[index]
		if region.Start < float64(p.Elapsed)/float64(time.Second) {
			content := strings.ReplaceAll(region.Content, "\n", " ")
			fmt.Fprintf(&buf, "%f,%f,%f,%s\n", p.X, p.Y, p.Z, content)
			index++
		}
	}
	return buf.Bytes()
}

// ---------- Telemetry ----------

// Track returns the telemetry samples of stage, skipping malformed lines.
func (s *FileStore) Track(stage domain.Stage) ([]domain.TrackPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return readTrack(filepath.Join(s.dir(stage), telemetryFile), false)
}

func readTrack(path string, strict bool) ([]domain.TrackPoint, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var points []domain.TrackPoint
	scanner := bufio.NewScanner(fp)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) != 5 {
			continue
		}
		p, err := parseTrackPoint(fields)
		if err != nil {
			if strict {
				return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), line, err)
			}
			continue
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func parseTrackPoint(fields []string) (domain.TrackPoint, error) {
	var p domain.TrackPoint
	uid, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return p, err
	}
	elapsed, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return p, err
	}
	var pos [3]float64
	for i := range pos {
		if pos[i], err = strconv.ParseFloat(fields[i+2], 64); err != nil {
			return p, err
		}
	}
	return domain.TrackPoint{UID: uid, Elapsed: elapsed, X: pos[0], Y: pos[1], Z: pos[2]}, nil
}

// SaveTelemetry writes a finished recording as the stage's telemetry.log.
// An existing recording is kept and the new one gets the first free
// "telemetry.log.N" name. It returns the path written.
func (s *FileStore) SaveTelemetry(stage domain.Stage, points []domain.TrackPoint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.dir(stage)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, p := range points {
		fmt.Fprintf(&buf, "%d,%d,%f,%f,%f\n", p.UID, p.Elapsed, p.X, p.Y, p.Z)
	}
	path := uniqueName(filepath.Join(dir, telemetryFile))
	if err := writeFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("%s save failed: %w", filepath.Base(path), err)
	}
	return path, nil
}

// ---------- Pacenotes ----------

// HasPacenotes reports whether pacenote.log was generated for stage.
func (s *FileStore) HasPacenotes(stage domain.Stage) bool {
	return exists(filepath.Join(s.dir(stage), pacenoteFile))
}

// Cues parses pacenote.log. Fields after the position are joined with spaces
// into the message; lines with an unparsable position are skipped.
func (s *FileStore) Cues(stage domain.Stage) ([]domain.Cue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(filepath.Join(s.dir(stage), pacenoteFile))
	if err != nil {
		return nil, err
	}
	var cues []domain.Cue
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 3 {
			continue
		}
		var pos [3]float64
		valid := true
		for i := range pos {
			if pos[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		cues = append(cues, domain.Cue{
			X: pos[0], Y: pos[1], Z: pos[2],
			Message: strings.Join(fields[3:], " "),
		})
	}
	return cues, nil
}

// ---------- Files ----------

// FilePath returns the path of name inside the stage directory. name must be
// a plain file name.
func (s *FileStore) FilePath(stage domain.Stage, name string) (string, error) {
	if name == "" || name == "." || name != filepath.Base(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	return filepath.Join(s.dir(stage), name), nil
}
