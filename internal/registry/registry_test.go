package registry

import (
	"testing"

	"github.com/steuerpilot/steuerpilot/internal/document"
)

func TestDefaultRegistryIsValid(t *testing.T) {
	r := Default()
	if len(r.Screens()) == 0 {
		t.Fatal("default registry is empty")
	}
	if r.First().Name != "personData" {
		t.Errorf("wizard must open on personData, got %q", r.First().Name)
	}
	if len(r.Categories()) != 5 {
		t.Errorf("expected 5 categories, got %d", len(r.Categories()))
	}
}

func TestValidationRejectsDuplicateNames(t *testing.T) {
	screens := []*Screen{
		{Name: "a", IsDone: func(document.Document) bool { return true }},
		{Name: "a", IsDone: func(document.Document) bool { return true }},
	}
	if _, err := New(screens, nil); err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestValidationRejectsUnknownBranchTarget(t *testing.T) {
	screens := []*Screen{
		{Name: "gate", Type: YesNo, YesScreen: "missing"},
	}
	if _, err := New(screens, nil); err == nil {
		t.Fatal("expected unknown branch target error")
	}
}

func TestValidationRejectsUnpairedArrayScreens(t *testing.T) {
	screens := []*Screen{
		{Name: "detail", Type: ArrayForm, Array: document.JobsLens},
	}
	if _, err := New(screens, nil); err == nil {
		t.Fatal("array form without overview must be rejected")
	}
}

// Every array overview must sit directly after its detail screen, so that
// advancing two positions from the detail screen always lands on the screen
// following the overview.
func TestDetailPrecedesOverview(t *testing.T) {
	r := Default()
	for _, s := range r.Screens() {
		if s.Type != ArrayOverview {
			continue
		}
		di := r.IndexOf(s.DetailScreen)
		oi := r.IndexOf(s.Name)
		if di < 0 {
			t.Fatalf("overview %q pairs unknown detail %q", s.Name, s.DetailScreen)
		}
		if oi != di+1 {
			t.Errorf("overview %q at %d, detail %q at %d; want adjacent", s.Name, oi, s.DetailScreen, di)
		}
	}
}

func TestArrayScreenPairsAreSymmetric(t *testing.T) {
	r := Default()
	for _, s := range r.Screens() {
		switch s.Type {
		case ArrayForm:
			ov, ok := r.Get(s.OverviewScreen)
			if !ok || ov.DetailScreen != s.Name {
				t.Errorf("detail %q and overview %q are not mutually paired", s.Name, s.OverviewScreen)
			}
		case ArrayOverview:
			det, ok := r.Get(s.DetailScreen)
			if !ok || det.OverviewScreen != s.Name {
				t.Errorf("overview %q and detail %q are not mutually paired", s.Name, s.DetailScreen)
			}
		}
	}
}

func TestEligibilityOnEmptyDocument(t *testing.T) {
	r := Default()
	doc := document.New()
	eligible := map[string]bool{}
	for _, s := range r.Eligible(doc) {
		eligible[s.Name] = true
	}

	for _, name := range []string{"personData", "verheiratet", "kinder", "jobs", "bankkonten", "generatePdf"} {
		if !eligible[name] {
			t.Errorf("%q must be eligible on an empty document", name)
		}
	}
	for _, name := range []string{"partner", "kinderDetail", "kinderOverview", "jobsDetail", "lohnausweisScan", "kinderbetreuung", "berufsauslagen"} {
		if eligible[name] {
			t.Errorf("%q must be hidden on an empty document", name)
		}
	}
}

func TestEligibilityFollowsGateAnswers(t *testing.T) {
	r := Default()
	doc := document.New()

	doc = document.VerheiratetLens.SetStart(doc, true)
	doc = document.KinderLens.SetStart(doc, true)
	doc = document.JobsLens.SetStart(doc, true)

	eligible := map[string]bool{}
	for _, s := range r.Eligible(doc) {
		eligible[s.Name] = true
	}
	for _, name := range []string{"partner", "kinderDetail", "kinderOverview", "jobsDetail", "jobsOverview", "lohnausweisScan", "kinderbetreuung", "berufsauslagen"} {
		if !eligible[name] {
			t.Errorf("%q must become eligible after its gate", name)
		}
	}

	// Answering no hides the dependents again; the data stays in place.
	doc = document.KinderLens.SetStart(doc, false)
	for _, s := range r.Eligible(doc) {
		if s.Name == "kinderDetail" || s.Name == "kinderbetreuung" {
			t.Errorf("%q still eligible after gate answered with no", s.Name)
		}
	}
}

func TestCategoryEntrySkipsGateWhenPopulated(t *testing.T) {
	r := Default()
	cat, ok := r.CategoryByName(CatEinkommen)
	if !ok {
		t.Fatal("einkommen category missing")
	}

	doc := document.New()
	if got := cat.Entry(doc); got != "jobs" {
		t.Errorf("empty document entry = %q, want jobs gate", got)
	}

	doc = document.JobsLens.SetStart(doc, true)
	doc = document.JobsLens.Append(doc, document.Job{Arbeitgeber: "Migros"})
	if got := cat.Entry(doc); got != "jobsOverview" {
		t.Errorf("populated document entry = %q, want jobsOverview", got)
	}
}

func TestVerheiratetUpdateSetsZivilstand(t *testing.T) {
	r := Default()
	s, ok := r.Get("verheiratet")
	if !ok || s.Update == nil {
		t.Fatal("verheiratet screen must carry a cross-topic update")
	}

	doc := document.New()
	doc = document.VerheiratetLens.SetStart(doc, true)
	doc = s.Update(doc)
	if got := document.PersonDataLens.Data(doc).Zivilstand; got != "verheiratet" {
		t.Errorf("zivilstand = %q after yes answer", got)
	}

	doc = document.VerheiratetLens.SetStart(doc, false)
	doc = s.Update(doc)
	if got := document.PersonDataLens.Data(doc).Zivilstand; got != "ledig" {
		t.Errorf("zivilstand = %q after no answer", got)
	}
}

func TestGateDoneOnceAnswered(t *testing.T) {
	r := Default()
	gate, _ := r.Get("spenden")

	doc := document.New()
	if gate.IsDone(doc) {
		t.Error("unanswered gate reported done")
	}
	doc = document.SpendenLens.SetStart(doc, false)
	if !gate.IsDone(doc) {
		t.Error("gate answered with no must count as done")
	}
}

func TestDetailDoneTracksItemFlags(t *testing.T) {
	r := Default()
	detail, _ := r.Get("bankkontenDetail")

	doc := document.New()
	doc = document.BankkontenLens.SetStart(doc, true)
	if detail.IsDone(doc) {
		t.Error("started topic with no items reported done")
	}

	doc = document.BankkontenLens.Append(doc, document.Bankkonto{Bank: "ZKB"})
	if detail.IsDone(doc) {
		t.Error("unfinished item reported done")
	}

	doc = document.BankkontenLens.SetAt(doc, 0, document.Bankkonto{Bank: "ZKB", Finished: true})
	if !detail.IsDone(doc) {
		t.Error("all items finished but detail not done")
	}
}

func TestFieldRoundTrip(t *testing.T) {
	r := Default()
	detail, _ := r.Get("jobsDetail")

	var item any = document.Job{}
	for _, f := range detail.Fields {
		switch f.Name {
		case "arbeitgeber":
			item = f.Set(item, "Coop")
		case "nettolohn":
			item = f.Set(item, "85000")
		}
	}
	j := item.(document.Job)
	if j.Arbeitgeber != "Coop" || j.Nettolohn != 85000 {
		t.Errorf("field edits did not land: %+v", j)
	}

	for _, f := range detail.Fields {
		if f.Name == "nettolohn" && f.Get(item) != "85000" {
			t.Errorf("nettolohn rendered as %q", f.Get(item))
		}
	}
}
