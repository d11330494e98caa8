// Package cache implements a content-addressed, time-bounded store of scan
// reports.
//
// Entries are files named `{hash}-{unixMillis}` under a single cache root.
// They are addressed purely by content hash: two units that produce
// identical content legitimately share an entry. The store performs no
// cross-process locking; entries are idempotent artifacts of a deterministic
// hash, so last-write-wins is acceptable.
package cache

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/depscan/depscan-cli/api/vulnscan"
	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/files"
)

// TTL is the maximum age an entry may be served before it is treated as
// stale and evicted.
const TTL = 24 * time.Hour

// A Store is a scan-report cache rooted at one directory. The directory is
// owned by the Store; nothing else mutates its files.
type Store struct {
	Dir string
}

// DefaultDir returns the conventional per-user cache root.
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "could not find user home directory")
	}
	return filepath.Join(home, ".depscan", "cache"), nil
}

// Open returns a Store rooted at dir, creating the directory if absent.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "could not create cache directory %q", dir)
	}
	return &Store{Dir: dir}, nil
}

// Get looks up the report cached for hash. It returns ok == false on a
// miss.
//
// When multiple entries exist for the hash, the lexicographically greatest
// filename is the most recent, since timestamps are monotonically
// increasing decimal strings of equal or greater width. Only that entry is
// examined: if it is older than the TTL it is deleted and the call is a
// miss. A corrupt entry is logged and treated as a miss, but left in place;
// the next Put for the hash supersedes it.
func (s *Store) Get(unitKey, hash string) ([]vulnscan.Finding, bool) {
	name := s.latest(hash)
	if name == "" {
		return nil, false
	}

	ts, err := entryTimestamp(name)
	if err != nil {
		log.WithField("unit", unitKey).Debugf("malformed cache entry name %q: %s", name, err.Error())
		return nil, false
	}

	if time.Since(time.UnixMilli(ts)) > TTL {
		log.WithField("unit", unitKey).Debugf("cache entry %q expired, evicting", name)
		if err := files.Rm(s.Dir, name); err != nil {
			log.Debugf("could not evict cache entry %q: %s", name, err.Error())
		}
		return nil, false
	}

	var findings []vulnscan.Finding
	if err := files.ReadJSON(&findings, filepath.Join(s.Dir, name)); err != nil {
		// No destructive auto-repair: the corrupt file stays until the
		// next Put for this hash replaces it.
		log.WithField("unit", unitKey).Warnf("unreadable or corrupt cache entry %q, treating as miss: %s", name, err.Error())
		return nil, false
	}

	log.WithField("unit", unitKey).Debugf("cache hit for hash %s", hash)
	return findings, true
}

// Put stores a fresh report for hash, deleting any existing entries for the
// hash first so that at most one entry per hash is ever retained.
func (s *Store) Put(unitKey, hash string, findings []vulnscan.Finding) error {
	for _, name := range s.entries(hash) {
		if err := files.Rm(s.Dir, name); err != nil {
			log.Debugf("could not remove superseded cache entry %q: %s", name, err.Error())
		}
	}

	vulnscan.SortFindings(findings)
	content, err := json.Marshal(findings)
	if err != nil {
		return errors.Wrap(err, "could not serialize report")
	}

	name := hash + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := ioutil.WriteFile(filepath.Join(s.Dir, name), content, 0644); err != nil {
		return errors.Wrapf(err, "could not write cache entry %q", name)
	}

	log.WithField("unit", unitKey).Debugf("cached report for hash %s", hash)
	return nil
}

// Clean removes expired entries, or every entry when all is true. It
// returns the number of removed entries.
func (s *Store) Clean(all bool) (int, error) {
	names, err := s.list()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range names {
		if !all {
			ts, err := entryTimestamp(name)
			if err != nil {
				// Unrecognized files in the cache root are left alone.
				continue
			}
			if time.Since(time.UnixMilli(ts)) <= TTL {
				continue
			}
		}
		if err := files.Rm(s.Dir, name); err != nil {
			return removed, errors.Wrapf(err, "could not remove cache entry %q", name)
		}
		removed++
	}
	return removed, nil
}

// latest returns the lexicographically greatest entry name for hash, or "".
func (s *Store) latest(hash string) string {
	var latest string
	for _, name := range s.entries(hash) {
		if name > latest {
			latest = name
		}
	}
	return latest
}

// entries returns every entry name for hash.
func (s *Store) entries(hash string) []string {
	names, err := s.list()
	if err != nil {
		log.Debugf("could not list cache directory %q: %s", s.Dir, err.Error())
		return nil
	}

	var matched []string
	for _, name := range names {
		if strings.HasPrefix(name, hash+"-") {
			matched = append(matched, name)
		}
	}
	return matched
}

func (s *Store) list() ([]string, error) {
	infos, err := ioutil.ReadDir(s.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read cache directory %q", s.Dir)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Mode().IsRegular() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func entryTimestamp(name string) (int64, error) {
	i := strings.LastIndex(name, "-")
	if i < 0 || i == len(name)-1 {
		return 0, errors.Errorf("no timestamp in entry name %q", name)
	}
	return strconv.ParseInt(name[i+1:], 10, 64)
}
