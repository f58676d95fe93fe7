// Package deps defines the canonical dependency model shared by every
// ecosystem, and the manifest access helpers used to load it.
//
// # Overview
//
// A project declares its direct dependencies in one manifest per ecosystem:
//
//   - Node.js: package.json ([javascript])
//   - Python: requirements.txt ([python])
//
// Each ecosystem subpackage exposes a [Language] value that names the
// manifest file and knows how to turn its raw content into an ordered
// []Dependency. Order is significant: it is the declaration order of the
// manifest, and for package.json runtime dependencies always precede
// development dependencies.
//
// # Reading Manifests
//
// Manifests are read through an [io/fs.FS] rooted at the project directory,
// so callers can substitute an in-memory filesystem in tests:
//
//	fsys := os.DirFS(projectPath)
//	if deps.Exists(fsys, javascript.Language.ManifestFile) {
//	    data, _ := deps.ReadManifest(fsys, javascript.Language)
//	    list, err := javascript.Language.Parse(data)
//	}
//
// [javascript]: github.com/matzehuels/techstack/pkg/deps/javascript
// [python]: github.com/matzehuels/techstack/pkg/deps/python
package deps
