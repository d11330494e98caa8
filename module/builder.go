package module

import (
	"path/filepath"

	"github.com/apex/log"

	"github.com/depscan/depscan-cli/errors"
)

// A Builder groups discovered manifests into analysis units.
type Builder struct {
	Provider StructureProvider
}

// Build converts a flat list of manifest paths into non-overlapping units.
//
// Every input manifest ends up in exactly one unit: either as the root of a
// standalone unit, or as a member of exactly one aggregate unit. A module
// ref that does not resolve to an input manifest is treated as an external
// dependency and ignored. Output order follows input order and is stable
// within a run.
//
// Build errors are enumeration failures: they abort the entire run.
func (b *Builder) Build(manifestPaths []string) ([]Unit, error) {
	descriptors := make(map[string]Descriptor)
	children := make(map[string][]string)
	parent := make(map[string]string)

	known := make(map[string]bool)
	for _, path := range manifestPaths {
		known[path] = true
	}

	for _, path := range manifestPaths {
		desc, err := b.Provider.Read(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read manifest %q", path)
		}
		descriptors[path] = desc

		for _, ref := range desc.ModuleRefs {
			child, ok := b.resolveRef(path, ref, known)
			if !ok {
				log.Debugf("manifest %q declares unresolvable module %q, skipping", path, ref)
				continue
			}
			children[path] = append(children[path], child)
			parent[child] = path
		}
	}

	processed := make(map[string]bool)
	var units []Unit

	// Aggregate units first, so that members of an aggregator are claimed
	// before standalone-unit consideration.
	for _, path := range manifestPaths {
		desc := descriptors[path]
		if desc.Packaging != Aggregator || len(children[path]) == 0 {
			continue
		}
		if _, hasParent := parent[path]; hasParent {
			continue
		}
		units = append(units, b.collect(path, descriptors, children, processed))
	}

	var out []Unit
	i := 0
	for _, path := range manifestPaths {
		if processed[path] {
			// Emit the aggregate at the position of its root manifest.
			if i < len(units) && units[i].RootManifest == path {
				out = append(out, units[i])
				i++
			}
			continue
		}
		desc := descriptors[path]
		out = append(out, Unit{
			Name:         displayName(desc),
			RootManifest: path,
			Manifests:    []string{path},
		})
	}

	return out, nil
}

// collect walks the aggregator tree rooted at root with an explicit stack. A
// visited set guards against module cycles and diamond inclusion: a
// re-visited manifest is already collected and is skipped.
func (b *Builder) collect(root string, descriptors map[string]Descriptor, children map[string][]string, processed map[string]bool) Unit {
	var members []string
	visited := make(map[string]bool)

	stack := []string{root}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[path] {
			continue
		}
		visited[path] = true
		processed[path] = true
		members = append(members, path)

		// Push in reverse so members come off the stack in declared order.
		kids := children[path]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return Unit{
		Name:         displayName(descriptors[root]),
		RootManifest: root,
		Manifests:    members,
		IsAggregate:  true,
	}
}

// resolveRef resolves a module ref against the declaring manifest's
// directory. Refs may name the child manifest file directly or its
// containing directory.
func (b *Builder) resolveRef(manifest, ref string, known map[string]bool) (string, bool) {
	dir := filepath.Dir(manifest)

	candidate := filepath.Clean(filepath.Join(dir, ref))
	if known[candidate] {
		return candidate, true
	}

	candidate = filepath.Clean(filepath.Join(dir, ref, b.Provider.ManifestFilename()))
	if known[candidate] {
		return candidate, true
	}

	return "", false
}

func displayName(desc Descriptor) string {
	if desc.Name != "" {
		return desc.Name
	}
	return filepath.Base(filepath.Dir(desc.Path))
}
