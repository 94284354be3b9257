package wizard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/registry"
	"github.com/steuerpilot/steuerpilot/internal/scan"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(registry.Default(), document.New())
}

func mustScreen(t *testing.T, e *Engine, want string) {
	t.Helper()
	if got := e.Current().Name; got != want {
		t.Fatalf("on screen %q, want %q", got, want)
	}
}

func TestStartsOnFirstEligibleScreen(t *testing.T) {
	e := newEngine(t)
	mustScreen(t, e, "personData")
}

func TestNextSkipsHiddenScreens(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("verheiratet"); err != nil {
		t.Fatal(err)
	}
	// partner and the kinder detail screens are hidden on an empty document.
	if err := e.Next(); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinder")
	if err := e.Next(); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "uebersichtEinkommen")
}

func TestPreviousWalksEligibleListBackwards(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}
	if err := e.Previous(); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "verheiratet")
}

func TestSetScreenToCurrentKeepsUndoStack(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}
	// Jumping to the screen already shown must not grow the undo stack.
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}
	e.GoBack()
	mustScreen(t, e, "personData")
}

func TestNavigationReportsBoundaries(t *testing.T) {
	// At the very start Previous stays put and reports the boundary.
	e := newEngine(t)
	if err := e.Previous(); err == nil {
		t.Error("Previous at the first screen should return an error")
	}
	mustScreen(t, e, "personData")

	// Past the last screen there is nothing to advance to.
	if err := e.SetScreen("generatePdf"); err != nil {
		t.Fatal(err)
	}
	if err := e.Next(); err == nil {
		t.Error("Next at the last screen should return an error")
	}
	mustScreen(t, e, "generatePdf")
}

func TestGoBackReplaysVisitHistory(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetScreen("uebersichtVermoegen"); err != nil {
		t.Fatal(err)
	}
	e.GoBack()
	mustScreen(t, e, "kinder")
	e.GoBack()
	mustScreen(t, e, "personData")
	e.GoBack() // empty stack is a no-op
	mustScreen(t, e, "personData")
}

func TestGoBackSkipsScreensThatBecameHidden(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("verheiratet"); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitYesNo(true); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "partner")
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}

	// Revisiting the gate and answering no hides partner; going back from
	// kinder must not land on it.
	if err := e.SetScreen("verheiratet"); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitYesNo(false); err != nil {
		t.Fatal(err)
	}
	if err := e.SetScreen("uebersichtVermoegen"); err != nil {
		t.Fatal(err)
	}
	for e.Current().Name != "personData" {
		before := e.Current().Name
		e.GoBack()
		if e.Current().Name == "partner" {
			t.Fatal("GoBack landed on a hidden screen")
		}
		if e.Current().Name == before {
			break
		}
	}
}

func TestAwaitNextFiresOnceAfterWrite(t *testing.T) {
	e := newEngine(t)
	e.AwaitNext("uebersichtAbzuege")

	doc := document.PersonDataLens.SetData(e.Document(), document.PersonData{Vorname: "Anna"})
	e.Apply(doc)
	mustScreen(t, e, "uebersichtAbzuege")

	// Consumed: a later write without arming stays put.
	e.Apply(document.PersonDataLens.SetData(e.Document(), document.PersonData{Vorname: "Berta"}))
	mustScreen(t, e, "uebersichtAbzuege")
}

func TestAwaitNextReplacement(t *testing.T) {
	e := newEngine(t)
	e.AwaitNext("kinder")
	e.AwaitNext("generatePdf")

	e.Apply(e.Document())
	mustScreen(t, e, "generatePdf")
}

func TestAwaitNextHiddenTargetSkipsForward(t *testing.T) {
	e := newEngine(t)
	// partner is hidden; the advance lands on the next eligible screen after
	// its registry position.
	e.AwaitNext("partner")
	e.Apply(e.Document())
	mustScreen(t, e, "kinder")
}

func TestMarriageAnswerUpdatesCivilStatus(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("verheiratet"); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitYesNo(true); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "partner")
	if got := document.PersonDataLens.Data(e.Document()).Zivilstand; got != "verheiratet" {
		t.Errorf("zivilstand = %q after yes", got)
	}

	if err := e.SetScreen("verheiratet"); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitYesNo(false); err != nil {
		t.Fatal(err)
	}
	// partner hidden again, linear fallback lands on kinder
	mustScreen(t, e, "kinder")
	if got := document.PersonDataLens.Data(e.Document()).Zivilstand; got != "ledig" {
		t.Errorf("zivilstand = %q after no", got)
	}
}

func TestObjFormSubmitAdvances(t *testing.T) {
	e := newEngine(t)
	if err := e.SubmitForm(document.PersonData{Vorname: "Anna", Nachname: "Muster"}); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "verheiratet")
	if got := document.PersonDataLens.Data(e.Document()).Vorname; got != "Anna" {
		t.Errorf("form data not written: %q", got)
	}
}

func TestArrayFormProvisionsOnEntry(t *testing.T) {
	e := newEngine(t)
	if err := e.SetScreen("kinder"); err != nil {
		t.Fatal(err)
	}
	if err := e.SubmitYesNo(true); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinderDetail")

	if n := document.KinderLens.Len(e.Document()); n != 1 {
		t.Fatalf("expected provisioned item, len = %d", n)
	}
	item, ok := e.Item()
	if !ok {
		t.Fatal("no item under cursor")
	}
	if item.(document.Kind).ID == "" {
		t.Error("provisioned item has no ID")
	}
}

func TestArrayItemSaveLandsOnOverview(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("kinder")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	k := item.(document.Kind)
	k.Vorname = "Mia"
	if err := e.SubmitItem(k); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinderOverview")

	saved := document.KinderLens.Data(e.Document())[0]
	if saved.Vorname != "Mia" || !saved.Finished {
		t.Errorf("saved item = %+v", saved)
	}
}

func TestCancelRemovesProvisionedItem(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("kinder")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	k := item.(document.Kind)
	k.Vorname = "Mia"
	e.SubmitItem(k)

	if err := e.OverviewAdd(); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinderDetail")
	if n := document.KinderLens.Len(e.Document()); n != 2 {
		t.Fatalf("expected second provisioned item, len = %d", n)
	}

	if err := e.CancelItem(); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinderOverview")
	if n := document.KinderLens.Len(e.Document()); n != 1 {
		t.Errorf("cancelled item not removed, len = %d", n)
	}
}

func TestCancelKeepsEditedExistingItem(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("kinder")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	e.SubmitItem(item)

	if err := e.OverviewEdit(0); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "kinderDetail")
	if err := e.CancelItem(); err != nil {
		t.Fatal(err)
	}
	if n := document.KinderLens.Len(e.Document()); n != 1 {
		t.Errorf("cancel of an existing item removed it, len = %d", n)
	}
}

func TestOverviewWeiterAdvancesTwoPastDetail(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("kinder")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	e.SubmitItem(item)
	mustScreen(t, e, "kinderOverview")

	if err := e.OverviewWeiter(); err != nil {
		t.Fatal(err)
	}
	// kinderDetail + 2 positions = the screen after the overview
	mustScreen(t, e, "uebersichtEinkommen")
	if !e.Document().Kinder.Done() {
		t.Error("OverviewWeiter did not set the finished flag")
	}
}

func TestUpdateItemHealsOutOfBoundsCursor(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("bankkonten")
	e.SubmitYesNo(true)
	mustScreen(t, e, "bankkontenDetail")

	e.SetCursor(5) // clamped to len
	if err := e.UpdateItem(document.Bankkonto{Bank: "UBS"}); err != nil {
		t.Fatal(err)
	}
	konten := document.BankkontenLens.Data(e.Document())
	if len(konten) != 2 || konten[1].Bank != "UBS" {
		t.Errorf("heal append failed: %+v", konten)
	}
	if e.CursorIndex() != 1 {
		t.Errorf("cursor = %d after heal append", e.CursorIndex())
	}
}

func TestOverviewRemove(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("spenden")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	s := item.(document.Spende)
	s.Organisation = "Rotes Kreuz"
	e.SubmitItem(s)
	e.OverviewAdd()
	item, _ = e.Item()
	s = item.(document.Spende)
	s.Organisation = "WWF"
	e.SubmitItem(s)

	mustScreen(t, e, "spendenOverview")
	if err := e.OverviewRemove(0); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "spendenOverview")
	rest := document.SpendenLens.Data(e.Document())
	if len(rest) != 1 || rest[0].Organisation != "WWF" {
		t.Errorf("remove dropped the wrong item: %+v", rest)
	}
}

func TestScanAppendsItemAndOpensReview(t *testing.T) {
	e := newEngine(t)
	e.SetScreen("jobs")
	e.SubmitYesNo(true)
	item, _ := e.Item()
	e.SubmitItem(item)

	if err := e.SetScreen("lohnausweisScan"); err != nil {
		t.Fatal(err)
	}
	err := e.SubmitScan(scan.Fields{
		"arbeitgeber": "Migros",
		"bruttolohn":  "92000",
		"nettolohn":   "81000",
	})
	if err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "jobsDetail")

	jobs := document.JobsLens.Data(e.Document())
	if len(jobs) != 2 {
		t.Fatalf("expected scanned job appended, len = %d", len(jobs))
	}
	j := jobs[1]
	if j.Arbeitgeber != "Migros" || j.Bruttolohn != 92000 || j.Nettolohn != 81000 {
		t.Errorf("scan mapping wrong: %+v", j)
	}
	if j.ID == "" {
		t.Error("scanned item has no ID")
	}
	if e.CursorIndex() != 1 {
		t.Errorf("cursor = %d, want scanned item", e.CursorIndex())
	}
}

func TestScanOnUnansweredGateActivatesTopic(t *testing.T) {
	e := newEngine(t)
	// Straight to the scan screen: the jobs gate was never answered, so the
	// detail and overview screens start out hidden.
	if err := e.SetScreen("lohnausweisScan"); err != nil {
		t.Fatal(err)
	}
	err := e.SubmitScan(scan.Fields{
		"arbeitgeber": "Coop",
		"bruttolohn":  "88000",
	})
	if err != nil {
		t.Fatal(err)
	}

	// The scanned item makes the topic live; the review jump must land on
	// the now-visible detail screen, not skip past it.
	mustScreen(t, e, "jobsDetail")
	start := document.JobsLens.Start(e.Document())
	if start == nil || !*start {
		t.Error("scan should set the topic's start flag")
	}
	if n := document.JobsLens.Len(e.Document()); n != 1 {
		t.Fatalf("expected one scanned job, len = %d", n)
	}
}

func TestObjectScanOnUnansweredGateActivatesTopic(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bescheinigung.pdf")
	sidecar := []byte(`{"einzahlung": "6500"}`)
	if err := os.WriteFile(file+".json", sidecar, 0644); err != nil {
		t.Fatal(err)
	}

	e := newEngine(t)
	if err := e.SetScreen("saeule3aScan"); err != nil {
		t.Fatal(err)
	}
	if err := e.ScanFile(context.Background(), scan.StubScanner{}, file); err != nil {
		t.Fatal(err)
	}

	start := document.Saeule3aLens.Start(e.Document())
	if start == nil || !*start {
		t.Error("scan should set the topic's start flag")
	}
	if got := document.Saeule3aLens.Data(e.Document()).Einzahlung; got != 6500 {
		t.Errorf("Einzahlung = %v, want 6500", got)
	}
}

func TestScanFileWithStubScanner(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bescheinigung.pdf")
	sidecar := []byte(`{"einzahlung": "7056", "stiftung": "VZ Freizügigkeit"}`)
	if err := os.WriteFile(file+".json", sidecar, 0644); err != nil {
		t.Fatal(err)
	}

	e := newEngine(t)
	e.SetScreen("saeule3a")
	e.SubmitYesNo(true)
	if err := e.SetScreen("saeule3aScan"); err != nil {
		t.Fatal(err)
	}
	if err := e.ScanFile(context.Background(), scan.StubScanner{}, file); err != nil {
		t.Fatal(err)
	}

	s3a := document.Saeule3aLens.Data(e.Document())
	if s3a.Einzahlung != 7056 || s3a.Stiftung != "VZ Freizügigkeit" {
		t.Errorf("scan mapping wrong: %+v", s3a)
	}
}

func TestSaveHookRunsOnEveryPatch(t *testing.T) {
	e := newEngine(t)
	var saves int
	e.OnSave(func(document.Document) error { saves++; return nil })

	e.SubmitForm(document.PersonData{Vorname: "Anna"})
	e.SetScreen("kinder")
	e.SubmitYesNo(true) // gate write + provisioning write
	if saves != 3 {
		t.Errorf("save hook ran %d times, want 3", saves)
	}
}

func TestOpenCategorySkipsAnsweredGates(t *testing.T) {
	e := newEngine(t)
	if err := e.OpenCategory(registry.CatEinkommen); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "jobs")

	e.SubmitYesNo(true)
	item, _ := e.Item()
	e.SubmitItem(item)
	e.SetScreen("personData")

	if err := e.OpenCategory(registry.CatEinkommen); err != nil {
		t.Fatal(err)
	}
	mustScreen(t, e, "jobsOverview")
}

func TestProgressCounts(t *testing.T) {
	e := newEngine(t)
	done, total := e.Progress()
	if total == 0 {
		t.Fatal("no countable screens")
	}
	before := done

	e.SubmitForm(document.PersonData{Vorname: "Anna", Nachname: "Muster", Geburtsdatum: "01.01.1990"})
	after, _ := e.Progress()
	if after != before+1 {
		t.Errorf("done went %d -> %d after completing a screen", before, after)
	}
}

func TestSegmentsGroupBySubcategory(t *testing.T) {
	e := newEngine(t)
	segs := e.Segments(registry.CatAbzuege)
	if len(segs) == 0 {
		t.Fatal("no segments for abzuege")
	}
	for _, seg := range segs {
		if seg.Title == "" || seg.Total == 0 {
			t.Errorf("malformed segment %+v", seg)
		}
		if seg.Done > seg.Total {
			t.Errorf("segment %q overcounts: %+v", seg.Title, seg)
		}
	}
}

func TestSubmitContractTypeChecks(t *testing.T) {
	e := newEngine(t)
	// personData is an ObjForm
	if err := e.SubmitYesNo(true); err == nil {
		t.Error("SubmitYesNo on an object form must fail")
	}
	if err := e.SubmitItem(document.Kind{}); err == nil {
		t.Error("SubmitItem on an object form must fail")
	}
	if err := e.OverviewWeiter(); err == nil {
		t.Error("OverviewWeiter on an object form must fail")
	}
}
