package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	out := buf.String()

	if !strings.Contains(out, "--help, -h, -help, help\n") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "foo\n    FOO\n  bar\n      BAR\n  baz\n      BAZ\n    qux\n        QUX\n") {
		t.Fatalf("got %s", out)
	}
}

func TestUsageWrap(t *testing.T) {
	executor := NewExecutor()
	executor.Define("long", Func(func() {}).Desc(strings.Repeat("word ", 40)))
	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if len(line) > usageWidth {
			t.Fatalf("line too long: %q", line)
		}
	}
}
