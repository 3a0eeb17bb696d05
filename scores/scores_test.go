package scores

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func scoresOf(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		want  Entry
		valid bool
	}{
		{"Alice - Score: 12", Entry{"Alice", 12}, true},
		{"Alice - Score: 12\r\n", Entry{"Alice", 12}, true},
		{" - Score: 3", Entry{"", 3}, true},
		{"a - Score: b - Score: 7", Entry{"a - Score: b", 7}, true},
		{"Bob - Score: -4", Entry{"Bob", -4}, true},
		{"Bob - Score: ", Entry{}, false},
		{"Bob - Score: ten", Entry{}, false},
		{"just some text", Entry{}, false},
		{"Bob: 10", Entry{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseLine(tt.line)
		if ok != tt.valid {
			t.Errorf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.valid)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestReadSortsAndTruncates(t *testing.T) {
	var b strings.Builder
	for i, s := range []int{10, 50, 30, 90, 20, 5} {
		b.WriteString(Entry{Name: "p" + string(rune('a'+i)), Score: s}.Label() + "\n")
	}
	path := writeFile(t, "scores.txt", b.String())

	res, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []int{90, 50, 30, 20, 10}
	if got := scoresOf(res.Entries); !equalInts(got, want) {
		t.Errorf("scores = %v, want %v", got, want)
	}
	if res.Total != 6 {
		t.Errorf("Total = %d, want 6", res.Total)
	}
}

func TestReadFewerThanTopN(t *testing.T) {
	path := writeFile(t, "scores.txt", "a - Score: 1\nb - Score: 3\n")

	res, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := scoresOf(res.Entries); !equalInts(got, []int{3, 1}) {
		t.Errorf("scores = %v, want [3 1]", got)
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "scores.txt", "a - Score: 4\ngarbage line\nb - Score: 8\n\n")

	res, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := scoresOf(res.Entries); !equalInts(got, []int{8, 4}) {
		t.Errorf("scores = %v, want [8 4]", got)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
}

func TestReadAllMalformedIsEmptySuccess(t *testing.T) {
	path := writeFile(t, "scores.txt", "nope\nstill nope\n")

	res, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.Entries) != 0 || res.Skipped != 2 {
		t.Errorf("got %+v, want no entries and 2 skipped", res)
	}
}

func TestReadSkipsOverlongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	path := writeFile(t, "scores.txt", "a - Score: 10\n"+long+"\nb - Score: 20\n")

	res, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := scoresOf(res.Entries); !equalInts(got, []int{20, 10}) {
		t.Errorf("scores = %v, want [20 10]", got)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
}

func TestReadOverlongLastLineWithoutNewline(t *testing.T) {
	path := writeFile(t, "scores.txt", "a - Score: 3\n"+strings.Repeat("y", 3*maxLineLen))

	entries, skipped, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 3 || skipped != 1 {
		t.Errorf("entries = %+v skipped = %d, want one entry and 1 skipped", entries, skipped)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrRead) {
		t.Fatalf("err = %v, want ErrRead", err)
	}
}

func TestReadMergesFilesTiesKeepOrder(t *testing.T) {
	first := writeFile(t, "a.txt", "first - Score: 5\n")
	second := writeFile(t, "b.txt", "second - Score: 5\nthird - Score: 9\n")

	res, err := Read(first, second)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	names := []string{}
	for _, e := range res.Entries {
		names = append(names, e.Name)
	}
	if strings.Join(names, ",") != "third,first,second" {
		t.Errorf("order = %v", names)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	cases := []Entry{
		{"Player", 42},
		{"", 7},
		{"  spaced  ", 0},
		{"name - Score: tricky", 13},
	}
	for _, e := range cases {
		if err := Append(path, e); err != nil {
			t.Fatalf("Append(%+v): %v", e, err)
		}
	}

	got, skipped, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(got) != len(cases) {
		t.Fatalf("got %d entries, want %d", len(got), len(cases))
	}
	for i := range cases {
		if got[i] != cases[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], cases[i])
		}
	}
}

func TestAppendFlattensNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := Append(path, Entry{"two\nlines", 3}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, _, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 || got[0].Name != "two lines" || got[0].Score != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestAppendFailsOnDirectory(t *testing.T) {
	err := Append(t.TempDir(), Entry{"x", 1})
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestCheckPath(t *testing.T) {
	existing := writeFile(t, "mine.txt", "")
	csv := writeFile(t, "mine.csv", "")

	tests := []struct {
		name string
		path string
		ok   bool
	}{
		{"default always valid", DefaultPath, true},
		{"existing txt", existing, true},
		{"wrong extension", csv, false},
		{"missing txt", filepath.Join(t.TempDir(), "gone.txt"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPath(tt.path, DefaultPath)
			if tt.ok && err != nil {
				t.Errorf("CheckPath(%q) = %v, want nil", tt.path, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidPath) {
				t.Errorf("CheckPath(%q) = %v, want ErrInvalidPath", tt.path, err)
			}
		})
	}
}
