package python

import (
	"reflect"
	"testing"

	"github.com/matzehuels/techstack/pkg/deps"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		line string
		want deps.Dependency
	}{
		{"flask==2.0.1", deps.Dependency{Name: "flask", Constraint: "==", Version: "2.0.1"}},
		{"requests>=2.25.0", deps.Dependency{Name: "requests", Constraint: ">=", Version: "2.25.0"}},
		{"numpy<2", deps.Dependency{Name: "numpy", Constraint: "<", Version: "2"}},
		{"numpy~=1.20.0", deps.Dependency{Name: "numpy", Constraint: "~=", Version: "1.20.0"}},
		{"Django!=4.0", deps.Dependency{Name: "Django", Constraint: "!=", Version: "4.0"}},
		{"celery<=5.3", deps.Dependency{Name: "celery", Constraint: "<=", Version: "5.3"}},
		{"scikit-learn", deps.Dependency{Name: "scikit-learn"}},
		{"zope.interface", deps.Dependency{Name: "zope.interface"}},
		{"python_dateutil>2.8", deps.Dependency{Name: "python_dateutil", Constraint: ">", Version: "2.8"}},
		{"django>=3.2,<4.0", deps.Dependency{Name: "django", Constraint: ">=", Version: "3.2,<4.0"}},
		{"-e git+https://github.com/x/y.git", deps.Dependency{Name: "-e git+https://github.com/x/y.git"}},
		{"flask ==2.0", deps.Dependency{Name: "flask ==2.0"}},
		{"requests[security]>=2.0", deps.Dependency{Name: "requests[security]>=2.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := ParseRequirement(tt.line); got != tt.want {
				t.Errorf("ParseRequirement(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseRequirementRoundTrip(t *testing.T) {
	for _, line := range []string{"flask==2.0.1", "requests>=2.25.0", "numpy~=1.20.0", "pandas<2", "attrs!=21.1"} {
		d := ParseRequirement(line)
		if got := d.Name + d.Constraint + d.Version; got != line {
			t.Errorf("round trip of %q = %q", line, got)
		}
	}
}

func TestParseRequirementsKeepsOrder(t *testing.T) {
	lines := []string{"flask==2.0.1", "-r base.txt", "requests", "pytest>=7"}

	got := deps.Names(ParseRequirements(lines))
	want := []string{"flask", "-r base.txt", "requests", "pytest"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRequirements() names = %v, want %v", got, want)
	}

	if got := ParseRequirements(nil); len(got) != 0 {
		t.Errorf("ParseRequirements(nil) = %v, want empty", got)
	}
}

func TestLanguageParse(t *testing.T) {
	data := []byte("# deps\nflask==2.0.1\n\nrequests>=2.25\n")

	got, err := Language.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []deps.Dependency{
		{Name: "flask", Constraint: "==", Version: "2.0.1"},
		{Name: "requests", Constraint: ">=", Version: "2.25"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}
