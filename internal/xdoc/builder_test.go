package xdoc

import (
	"testing"

	"github.com/unbound-force/defectdoc/internal/analysis"
	"github.com/unbound-force/defectdoc/internal/severity"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Version: "3.0.1",
		ClassStats: []analysis.ClassStat{
			{Class: "com.example.Foo", Bugs: "2"},
			{Class: "com.example.Bar", Bugs: "0"},
			{Class: "com.example.Baz", Bugs: "1"},
		},
		Defects: []analysis.Defect{
			{
				Type:         "NP_NULL_ON_SOME_PATH",
				Category:     "CORRECTNESS",
				Message:      "Possible null pointer dereference",
				Priority:     "1",
				PrimaryClass: "com.example.Foo",
				StartLine:    "42",
			},
			{
				Type:         "DM_EXIT",
				Category:     "BAD_PRACTICE",
				Message:      "Method invokes System.exit",
				Priority:     "9",
				PrimaryClass: "com.example.Foo",
			},
			{
				Type:         "URF_UNREAD_FIELD",
				Category:     "PERFORMANCE",
				Message:      "Unread field",
				Priority:     "3",
				PrimaryClass: "com.example.Baz",
				StartLine:    "7",
			},
		},
		Errors:         []string{"Unable to read class file"},
		MissingClasses: []string{"com.example.Gone"},
	}
}

func sampleConfig() Config {
	return Config{
		Threshold:       "2",
		Effort:          "default",
		SourceRoots:     []string{"src/main/java"},
		TestSourceRoots: []string{"src/test/java"},
		Names:           severity.DefaultTable(),
	}
}

func TestBuild_RootAttributes(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	if rep.Version != "3.0.1" {
		t.Errorf("Version = %q", rep.Version)
	}
	if rep.Threshold != "Normal" {
		t.Errorf("Threshold = %q, want Normal", rep.Threshold)
	}
	if rep.Effort != "Default" {
		t.Errorf("Effort = %q, want Default", rep.Effort)
	}
}

func TestBuild_UnknownThresholdOmitted(t *testing.T) {
	cfg := sampleConfig()
	cfg.Threshold = "42"
	cfg.Effort = "turbo"

	rep := Build(sampleResult(), cfg, "3.0.1")

	if rep.Threshold != "" {
		t.Errorf("Threshold = %q, want empty for unknown code", rep.Threshold)
	}
	if rep.Effort != "" {
		t.Errorf("Effort = %q, want empty for unknown code", rep.Effort)
	}
}

func TestBuild_SelectsOnlyClassesWithBugs(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	if len(rep.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(rep.Files))
	}
	if rep.Files[0].ClassName != "com.example.Foo" {
		t.Errorf("Files[0] = %q, want com.example.Foo", rep.Files[0].ClassName)
	}
	if rep.Files[1].ClassName != "com.example.Baz" {
		t.Errorf("Files[1] = %q, want com.example.Baz", rep.Files[1].ClassName)
	}
	for _, f := range rep.Files {
		if f.ClassName == "com.example.Bar" {
			t.Error("class with zero bugs appeared in output")
		}
	}
}

func TestBuild_GroupsDefectsByPrimaryClass(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	foo := rep.Files[0]
	if len(foo.Bugs) != 2 {
		t.Fatalf("Foo has %d bugs, want 2", len(foo.Bugs))
	}
	// Defect order within a class follows document order.
	if foo.Bugs[0].Type != "NP_NULL_ON_SOME_PATH" || foo.Bugs[1].Type != "DM_EXIT" {
		t.Errorf("Foo bug order = %q, %q", foo.Bugs[0].Type, foo.Bugs[1].Type)
	}

	baz := rep.Files[1]
	if len(baz.Bugs) != 1 || baz.Bugs[0].Type != "URF_UNREAD_FIELD" {
		t.Errorf("Baz bugs = %+v", baz.Bugs)
	}
}

func TestBuild_PriorityNames(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	foo := rep.Files[0]
	if foo.Bugs[0].Priority != "High" {
		t.Errorf("priority = %q, want High", foo.Bugs[0].Priority)
	}
	if foo.Bugs[1].Priority != "Invalid Priority" {
		t.Errorf("priority = %q, want Invalid Priority", foo.Bugs[1].Priority)
	}
}

func TestBuild_LineNumbers(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	foo := rep.Files[0]
	if foo.Bugs[0].LineNumber != 42 {
		t.Errorf("LineNumber = %d, want 42", foo.Bugs[0].LineNumber)
	}
	// Absent start line maps to the -1 sentinel.
	if foo.Bugs[1].LineNumber != -1 {
		t.Errorf("LineNumber = %d, want -1", foo.Bugs[1].LineNumber)
	}
}

func TestBuild_NonNumericLineNumber(t *testing.T) {
	res := sampleResult()
	res.Defects[0].StartLine = "forty-two"

	rep := Build(res, sampleConfig(), "3.0.1")

	if rep.Files[0].Bugs[0].LineNumber != -1 {
		t.Errorf("LineNumber = %d, want -1 for non-numeric start line",
			rep.Files[0].Bugs[0].LineNumber)
	}
}

func TestBuild_DefectWithoutPrimaryClassDropped(t *testing.T) {
	res := sampleResult()
	res.Defects = append(res.Defects, analysis.Defect{
		Type:     "ORPHAN",
		Priority: "1",
		// No primary class.
	})

	rep := Build(res, sampleConfig(), "3.0.1")

	for _, f := range rep.Files {
		for _, b := range f.Bugs {
			if b.Type == "ORPHAN" {
				t.Fatal("defect without primary class appeared in a class report")
			}
		}
	}
}

func TestBuild_NonNumericBugCountSkipped(t *testing.T) {
	res := sampleResult()
	res.ClassStats = append(res.ClassStats, analysis.ClassStat{
		Class: "com.example.Odd", Bugs: "many",
	})

	rep := Build(res, sampleConfig(), "3.0.1")

	// The run completes and the odd class simply is not reported.
	if len(rep.Files) != 2 {
		t.Errorf("got %d files, want 2", len(rep.Files))
	}
}

func TestBuild_DuplicateClassStatsFirstWins(t *testing.T) {
	res := sampleResult()
	res.ClassStats = append(res.ClassStats, analysis.ClassStat{
		Class: "com.example.Foo", Bugs: "5",
	})

	rep := Build(res, sampleConfig(), "3.0.1")

	count := 0
	for _, f := range rep.Files {
		if f.ClassName == "com.example.Foo" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("com.example.Foo appears %d times, want 1", count)
	}
}

func TestBuild_Diagnostics(t *testing.T) {
	rep := Build(sampleResult(), sampleConfig(), "3.0.1")

	got := len(rep.Diagnostics.AnalysisErrors) + len(rep.Diagnostics.MissingClasses)
	if got != 2 {
		t.Errorf("diagnostics count = %d, want 2", got)
	}
	if rep.Diagnostics.AnalysisErrors[0] != "Unable to read class file" {
		t.Errorf("AnalysisErrors = %v", rep.Diagnostics.AnalysisErrors)
	}
	if rep.Diagnostics.MissingClasses[0] != "com.example.Gone" {
		t.Errorf("MissingClasses = %v", rep.Diagnostics.MissingClasses)
	}
}

func TestBuild_DiagnosticsIndependentOfSelection(t *testing.T) {
	res := sampleResult()
	res.ClassStats = nil // no classes selected at all

	rep := Build(res, sampleConfig(), "3.0.1")

	if len(rep.Files) != 0 {
		t.Errorf("got %d files, want 0", len(rep.Files))
	}
	if len(rep.Diagnostics.AnalysisErrors) != 1 || len(rep.Diagnostics.MissingClasses) != 1 {
		t.Errorf("diagnostics lost: %+v", rep.Diagnostics)
	}
}

func TestBuild_ProjectOrder(t *testing.T) {
	cfg := sampleConfig()
	cfg.SourceRoots = []string{"src/a", "src/b"}
	cfg.TestSourceRoots = []string{"test/a"}

	rep := Build(sampleResult(), cfg, "3.0.1")

	if rep.Project == nil {
		t.Fatal("Project block missing")
	}
	want := []string{"src/a", "src/b", "test/a"}
	if len(rep.Project.SrcDirs) != len(want) {
		t.Fatalf("SrcDirs = %v", rep.Project.SrcDirs)
	}
	for i, dir := range want {
		if rep.Project.SrcDirs[i] != dir {
			t.Errorf("SrcDirs[%d] = %q, want %q", i, rep.Project.SrcDirs[i], dir)
		}
	}
}

func TestBuild_NoRootsOmitsProject(t *testing.T) {
	cfg := sampleConfig()
	cfg.SourceRoots = nil
	cfg.TestSourceRoots = nil

	rep := Build(sampleResult(), cfg, "3.0.1")

	if rep.Project != nil {
		t.Errorf("Project = %+v, want nil when no roots are configured", rep.Project)
	}
}
