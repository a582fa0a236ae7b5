package news

import "testing"

func TestTapeAppendAndAll(t *testing.T) {
	tape := NewTape(3)

	if tape.Count() != 0 {
		t.Fatalf("fresh tape count = %d, want 0", tape.Count())
	}

	for day := 1; day <= 5; day++ {
		tape.Append(Event{Kind: KindTrade, Day: day})
	}

	if tape.Count() != 3 {
		t.Fatalf("count = %d, want 3", tape.Count())
	}

	all := tape.All()
	if len(all) != 3 {
		t.Fatalf("All() length = %d, want 3", len(all))
	}
	// Oldest first; the first two appends were overwritten.
	for i, want := range []int{3, 4, 5} {
		if all[i].Day != want {
			t.Errorf("all[%d].Day = %d, want %d", i, all[i].Day, want)
		}
	}
}

func TestTapeLatest(t *testing.T) {
	tape := NewTape(5)
	for day := 1; day <= 4; day++ {
		tape.Append(Event{Day: day})
	}

	latest := tape.Latest(2)
	if len(latest) != 2 {
		t.Fatalf("Latest(2) length = %d", len(latest))
	}
	if latest[0].Day != 3 || latest[1].Day != 4 {
		t.Errorf("Latest(2) = days %d,%d, want 3,4", latest[0].Day, latest[1].Day)
	}

	// Asking for more than stored returns everything.
	if got := tape.Latest(10); len(got) != 4 {
		t.Errorf("Latest(10) length = %d, want 4", len(got))
	}
}

func TestFill(t *testing.T) {
	got := Fill("{company} dominates the {sector} sector", "ACME1", "Energy")
	want := "ACME1 dominates the Energy sector"
	if got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}

	// Templates without placeholders pass through untouched.
	if got := Fill("markets rally broadly", "X", "Y"); got != "markets rally broadly" {
		t.Errorf("Fill mangled a plain template: %q", got)
	}
}

func TestDefaultCatalogCoversAllSectors(t *testing.T) {
	c := DefaultCatalog()
	sectors := []string{"IT", "Pharma", "Chemical", "Gaming", "Energy", "Finance"}

	for _, s := range sectors {
		if len(c.PositiveBySector[s]) == 0 {
			t.Errorf("no positive templates for %s", s)
		}
		if len(c.NegativeBySector[s]) == 0 {
			t.Errorf("no negative templates for %s", s)
		}
		if len(c.PolicyBySector[s]) == 0 {
			t.Errorf("no policy templates for %s", s)
		}
	}
	if len(c.EconomicPositive) == 0 || len(c.EconomicNegative) == 0 {
		t.Error("economic headline tables are empty")
	}
}

func TestPolicySectorsSorted(t *testing.T) {
	c := DefaultCatalog()
	sectors := c.PolicySectors()
	for i := 1; i < len(sectors); i++ {
		if sectors[i-1] > sectors[i] {
			t.Fatalf("policy sectors not sorted: %v", sectors)
		}
	}
}
