package stats

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jmguzman/blackjack/internal/fileutil"
)

// Store holds every player record keyed by display identity, backed by a
// flat file: one whitespace-separated record per line, spaces in the
// identity escaped with underscores, nine numeric fields, optionally
// followed by a comma-joined achievement list. Loading skips malformed
// lines; saving rewrites the whole file atomically.
type Store struct {
	path    string
	logger  *log.Logger
	records map[string]*Record
}

// NewStore creates an empty store bound to path.
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{
		path:    path,
		logger:  logger.WithPrefix("stats"),
		records: make(map[string]*Record),
	}
}

// Load reads the backing file. A missing file is an empty store, not an
// error. Individually malformed lines are skipped.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read stats file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		name, rec, ok := parseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				s.logger.Warn("skipping malformed stats line", "line", line)
			}
			continue
		}
		s.records[name] = rec
	}
	return nil
}

// Save rewrites the backing file from the current records, sorted by
// identity for stable output.
func (s *Store) Save() error {
	var buf bytes.Buffer
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := s.records[name]
		fmt.Fprintf(&buf, "%s %d %d %d %d %d %d %d %d",
			escapeName(name), r.Wins, r.Losses, r.Ties, r.BestStreak,
			r.CurrentStreak, r.BiggestWin, r.TotalGames, r.Blackjacks)
		if ids := r.AchievementIDs(); len(ids) > 0 {
			fmt.Fprintf(&buf, " %s", strings.Join(ids, ","))
		}
		buf.WriteByte('\n')
	}
	if err := fileutil.WriteFileAtomic(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// Get returns the record for name, creating an empty one if absent.
func (s *Store) Get(name string) *Record {
	if r, ok := s.records[name]; ok {
		return r
	}
	r := NewRecord()
	s.records[name] = r
	return r
}

// Lookup returns the record for name without creating one.
func (s *Store) Lookup(name string) (*Record, bool) {
	r, ok := s.records[name]
	return r, ok
}

// Names returns every known identity, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset replaces one record with an empty one. Returns false if the
// identity is unknown.
func (s *Store) Reset(name string) bool {
	if _, ok := s.records[name]; !ok {
		return false
	}
	s.records[name] = NewRecord()
	return true
}

// ResetAll replaces every record with an empty one.
func (s *Store) ResetAll() {
	for name := range s.records {
		s.records[name] = NewRecord()
	}
}

// CurrentStreak implements game.RecordsView.
func (s *Store) CurrentStreak(name string) int {
	if r, ok := s.records[name]; ok {
		return r.CurrentStreak
	}
	return 0
}

// parseLine decodes one store line. ok=false for blank or malformed lines.
func parseLine(line string) (string, *Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return "", nil, false
	}
	nums := make([]int, 8)
	for i, f := range fields[1:9] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", nil, false
		}
		nums[i] = n
	}
	rec := NewRecord()
	rec.Wins, rec.Losses, rec.Ties = nums[0], nums[1], nums[2]
	rec.BestStreak, rec.CurrentStreak = nums[3], nums[4]
	rec.BiggestWin, rec.TotalGames, rec.Blackjacks = nums[5], nums[6], nums[7]
	if len(fields) > 9 {
		for _, id := range strings.Split(fields[9], ",") {
			if id != "" {
				rec.Achievements[id] = true
			}
		}
	}
	return unescapeName(fields[0]), rec, true
}

// escapeName replaces spaces with underscores so identities survive the
// whitespace-separated encoding.
func escapeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

func unescapeName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
