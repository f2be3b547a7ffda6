package diff

import "testing"

func TestCompareExtensions(t *testing.T) {
	from := Counts{
		".go": {Files: 2, Lines: 100},
		".py": {Files: 1, Lines: 10},
		".sh": {Files: 1, Lines: 5},
	}
	to := Counts{
		".go": {Files: 2, Lines: 100},
		".py": {Files: 2, Lines: 30},
		".rs": {Files: 1, Lines: 7},
	}
	result := CompareExtensions(from, to)
	if len(result.Added) != 1 || result.Added[0].Extension != ".rs" || result.Added[0].LineDelta() != 7 {
		t.Fatalf("unexpected added: %+v", result.Added)
	}
	if len(result.Modified) != 1 || result.Modified[0].Extension != ".py" {
		t.Fatalf("unexpected modified: %+v", result.Modified)
	}
	if got := result.Modified[0].LineDelta(); got != 20 {
		t.Fatalf("expected .py line delta 20, got %d", got)
	}
	if got := result.Modified[0].FileDelta(); got != 1 {
		t.Fatalf("expected .py file delta 1, got %d", got)
	}
	if len(result.Removed) != 1 || result.Removed[0].Extension != ".sh" || result.Removed[0].LineDelta() != -5 {
		t.Fatalf("unexpected removed: %+v", result.Removed)
	}
	if result.Empty() {
		t.Fatalf("expected non-empty result")
	}
}

func TestCompareExtensionsIdentical(t *testing.T) {
	counts := Counts{".go": {Files: 1, Lines: 1}}
	if result := CompareExtensions(counts, counts); !result.Empty() {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestCompareExtensionsSorted(t *testing.T) {
	result := CompareExtensions(nil, Counts{".z": {}, ".a": {}, ".m": {}})
	if len(result.Added) != 3 || result.Added[0].Extension != ".a" || result.Added[2].Extension != ".z" {
		t.Fatalf("expected sorted additions, got %+v", result.Added)
	}
}
