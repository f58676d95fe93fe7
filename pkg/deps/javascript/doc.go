// Package javascript reads Node.js dependency declarations from package.json.
//
// Only the "dependencies" and "devDependencies" objects are consulted. Each
// entry becomes a [deps.Dependency] whose version has range operators and
// whitespace removed ("^4.18.0" becomes "4.18.0"). Runtime entries are
// returned before development entries, each in file order.
//
//	list, err := javascript.ParsePackageJSON(data)
//
// [deps.Dependency]: github.com/matzehuels/techstack/pkg/deps.Dependency
package javascript
