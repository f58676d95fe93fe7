package deps_test

import (
	"fmt"
	"testing/fstest"

	"github.com/matzehuels/techstack/pkg/deps"
)

func ExampleRequirementLines() {
	data := []byte("# web\nflask==2.0.1\n\n  requests>=2.25  \n")

	for _, line := range deps.RequirementLines(data) {
		fmt.Println(line)
	}
	// Output:
	// flask==2.0.1
	// requests>=2.25
}

func ExampleDetect() {
	node := &deps.Language{Ecosystem: deps.EcosystemNode, ManifestFile: "package.json"}
	python := &deps.Language{Ecosystem: deps.EcosystemPython, ManifestFile: "requirements.txt"}

	fsys := fstest.MapFS{
		"requirements.txt": {Data: []byte("flask\n")},
	}

	for _, l := range deps.Detect(fsys, node, python) {
		fmt.Println(l.Ecosystem)
	}
	// Output:
	// python
}

func ExampleDependency_MajorVersion() {
	d := deps.Dependency{Name: "react", Version: "17.0.2"}
	fmt.Println(d.MajorVersion())
	// Output:
	// 17
}
