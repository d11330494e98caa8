// Package archive packages an analysis unit's manifests into a byte archive
// with a stable content hash.
//
// Determinism is the whole point: the hash and the archive byte layout
// depend only on the members' relative paths and byte contents, never on
// filesystem enumeration order, timestamps, or the originating host. Entries
// are sorted lexicographically by relative path before hashing and writing,
// and all tar header metadata that could vary between hosts is zeroed.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/errors"
	"github.com/depscan/depscan-cli/module"
)

// An Archive is a packed unit ready for upload.
type Archive struct {
	// Path is the file to upload: a tar.gz for aggregate units, or the
	// manifest itself for standalone units.
	Path string
	// Hash is the hex MD5 content hash. Collision resistance is not a
	// requirement here; the hash only detects content change.
	Hash string

	// scratch is the temporary directory holding the tar.gz, or "" when
	// packaging was skipped.
	scratch string
}

// Cleanup removes the archive's scratch directory. It is safe to call on
// both success and failure paths, and on archives that own no scratch state.
func (a *Archive) Cleanup() {
	if a == nil || a.scratch == "" {
		return
	}
	if err := os.RemoveAll(a.scratch); err != nil {
		log.Debugf("could not remove scratch directory %q: %s", a.scratch, err.Error())
	}
}

// Pack packages a unit. Standalone units skip archiving: the manifest file
// is uploaded as-is and the hash is computed directly over its bytes.
func Pack(unit module.Unit) (*Archive, error) {
	if !unit.IsAggregate && len(unit.Manifests) == 1 {
		return packSingle(unit.Manifests[0])
	}
	return packAggregate(unit)
}

func packSingle(manifest string) (*Archive, error) {
	content, err := ioutil.ReadFile(manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read manifest %q", manifest)
	}

	sum := md5.Sum(content)
	return &Archive{
		Path: manifest,
		Hash: hex.EncodeToString(sum[:]),
	}, nil
}

func packAggregate(unit module.Unit) (*Archive, error) {
	// Sorted relative paths are the determinism anchor.
	entries := make([]string, 0, len(unit.Manifests))
	byRel := make(map[string]string, len(unit.Manifests))
	for _, manifest := range unit.Manifests {
		rel, err := filepath.Rel(unit.Dir(), manifest)
		if err != nil {
			return nil, errors.Wrapf(err, "could not relativize %q against %q", manifest, unit.Dir())
		}
		rel = filepath.ToSlash(rel)
		entries = append(entries, rel)
		byRel[rel] = manifest
	}
	sort.Strings(entries)

	scratch, err := ioutil.TempDir("", "depscan-archive-")
	if err != nil {
		return nil, errors.Wrap(err, "could not create scratch directory")
	}

	a, err := writeAggregate(unit, scratch, entries, byRel)
	if err != nil {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			log.Debugf("could not remove scratch directory %q: %s", scratch, rmErr.Error())
		}
		return nil, err
	}
	return a, nil
}

func writeAggregate(unit module.Unit, scratch string, entries []string, byRel map[string]string) (*Archive, error) {
	name := filepath.Join(scratch, "unit.tar.gz")
	out, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "could not create archive file")
	}
	defer out.Close()

	h := md5.New()
	g := gzip.NewWriter(out)
	t := tar.NewWriter(g)

	for _, rel := range entries {
		content, err := ioutil.ReadFile(byRel[rel])
		if err != nil {
			return nil, errors.Wrapf(err, "could not read manifest %q", byRel[rel])
		}

		// Feed the relative path and the bytes into the digest. Reusing
		// the same bytes for the archive entry keeps the two views of the
		// unit in lockstep.
		if _, err := io.WriteString(h, rel); err != nil {
			return nil, errors.Wrap(err, "could not hash entry path")
		}
		if _, err := h.Write(content); err != nil {
			return nil, errors.Wrap(err, "could not hash entry content")
		}

		header := &tar.Header{
			Name: rel,
			Mode: 0644,
			Size: int64(len(content)),
		}
		if err := t.WriteHeader(header); err != nil {
			return nil, errors.Wrapf(err, "could not write archive header for %q", rel)
		}
		if _, err := t.Write(content); err != nil {
			return nil, errors.Wrapf(err, "could not write archive entry for %q", rel)
		}
	}

	if err := t.Close(); err != nil {
		return nil, errors.Wrap(err, "could not finalize archive")
	}
	if err := g.Close(); err != nil {
		return nil, errors.Wrap(err, "could not finalize compression")
	}
	if err := out.Sync(); err != nil {
		return nil, errors.Wrap(err, "could not flush archive")
	}

	hash := hex.EncodeToString(h.Sum(nil))
	log.Debugf("packed unit %q: %d entries, hash %s", unit.Name, len(entries), hash)

	return &Archive{
		Path:    name,
		Hash:    hash,
		scratch: scratch,
	}, nil
}
