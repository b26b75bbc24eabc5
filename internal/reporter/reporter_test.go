package reporter

import (
	"go/token"
	"reflect"
	"sync"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/codecop/internal/coprules"
)

func TestReporter_Sorted(t *testing.T) {
	var r Reporter

	report := r.Func()
	report(coprules.Finding{Rule: coprules.NamespaceMatch(), Pos: 40, Name: "foo", Expected: "bar"})
	report(coprules.Finding{Rule: coprules.EnumSuffix(), Pos: 10, Name: "Color", Expected: "ColorEnum"})
	report(coprules.Finding{Rule: coprules.EnumSuffix(), Pos: 40, Name: "Mode", Expected: "ModeEnum"})

	want := []coprules.Finding{
		{Rule: coprules.EnumSuffix(), Pos: 10, Name: "Color", Expected: "ColorEnum"},
		{Rule: coprules.EnumSuffix(), Pos: 40, Name: "Mode", Expected: "ModeEnum"},
		{Rule: coprules.NamespaceMatch(), Pos: 40, Name: "foo", Expected: "bar"},
	}
	got := r.Sorted()
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "findings", want, got)
		t.FailNow()
	}

	// Report order is kept by Findings.
	if first := r.Findings()[0]; first.Name != "foo" {
		t.Errorf("expected report order to be kept, got %q first", first.Name)
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(coprules.Finding{
				Rule: coprules.EnumSuffix(),
				Pos:  token.Pos(i),
				Name: "parallel",
			})
		}(i)
	}
	wg.Wait()

	if r.Len() != n {
		t.Fatalf("expected %d findings, got %d", n, r.Len())
	}

	fs := r.Findings()
	fs[0].Name = "changed"
	if r.Findings()[0].Name == "changed" {
		t.Fatalf("Findings() returned shared slice, expected copy")
	}
}
