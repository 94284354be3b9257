package document

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSetDataLeavesSiblingsUntouched(t *testing.T) {
	doc := New()
	doc = PersonDataLens.SetData(doc, PersonData{Vorname: "Anna"})
	doc = BankkontenLens.Append(doc, Bankkonto{Bank: "ZKB"})

	patched := Saeule3aLens.SetData(doc, Saeule3a{Einzahlung: 7056})

	if patched.PersonData.Data.Vorname != "Anna" {
		t.Errorf("sibling personData changed: %+v", patched.PersonData.Data)
	}
	if len(patched.Bankkonten.Data) != 1 || patched.Bankkonten.Data[0].Bank != "ZKB" {
		t.Errorf("sibling bankkonten changed: %+v", patched.Bankkonten.Data)
	}
	if patched.Saeule3a.Data.Einzahlung != 7056 {
		t.Errorf("expected patched value, got %+v", patched.Saeule3a.Data)
	}

	// Original value is unchanged (value semantics)
	if doc.Saeule3a.Data.Einzahlung != 0 {
		t.Error("original document mutated by SetData")
	}
}

func TestSetDataIdempotent(t *testing.T) {
	doc := New()
	once := RentenLens.SetData(doc, Renten{AHVRente: 24000})
	twice := RentenLens.SetData(once, Renten{AHVRente: 24000})

	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same patch twice changed the document")
	}
}

func TestSetStartIsStable(t *testing.T) {
	doc := New()
	if doc.Kinder.Answered() {
		t.Fatal("gate should start unanswered")
	}

	doc = KinderLens.SetStart(doc, true)
	if !doc.Kinder.Started() {
		t.Error("expected gate answered with yes")
	}

	doc = KinderLens.SetStart(doc, false)
	if !doc.Kinder.Answered() || doc.Kinder.Started() {
		t.Error("expected gate answered with no")
	}
}

func TestArraySetAtCopiesSlice(t *testing.T) {
	doc := New()
	doc = JobsLens.Append(doc, Job{Arbeitgeber: "Migros"})
	doc = JobsLens.Append(doc, Job{Arbeitgeber: "Coop"})

	patched := JobsLens.SetAt(doc, 0, Job{Arbeitgeber: "Denner"})

	if doc.Jobs.Data[0].Arbeitgeber != "Migros" {
		t.Error("SetAt mutated the original slice")
	}
	if patched.Jobs.Data[0].Arbeitgeber != "Denner" {
		t.Errorf("expected replaced item, got %+v", patched.Jobs.Data[0])
	}
	if patched.Jobs.Data[1].Arbeitgeber != "Coop" {
		t.Error("SetAt touched a sibling item")
	}
}

func TestArrayRemove(t *testing.T) {
	doc := New()
	for _, bank := range []string{"ZKB", "UBS", "Raiffeisen"} {
		doc = BankkontenLens.Append(doc, Bankkonto{Bank: bank})
	}

	doc = BankkontenLens.Remove(doc, 1)

	if n := BankkontenLens.Len(doc); n != 2 {
		t.Fatalf("expected 2 items after remove, got %d", n)
	}
	if doc.Bankkonten.Data[0].Bank != "ZKB" || doc.Bankkonten.Data[1].Bank != "Raiffeisen" {
		t.Errorf("remove dropped the wrong item: %+v", doc.Bankkonten.Data)
	}

	// Out-of-bounds remove is a no-op
	same := BankkontenLens.Remove(doc, 5)
	if BankkontenLens.Len(same) != 2 {
		t.Error("out-of-bounds remove changed the array")
	}
}

func TestArrayAtOutOfBounds(t *testing.T) {
	doc := New()
	if _, ok := SpendenLens.At(doc, 0); ok {
		t.Error("At on empty array should report false")
	}
	doc = SpendenLens.Append(doc, Spende{Organisation: "Rotes Kreuz"})
	if _, ok := SpendenLens.At(doc, -1); ok {
		t.Error("At with negative index should report false")
	}
	if v, ok := SpendenLens.At(doc, 0); !ok || v.(Spende).Organisation != "Rotes Kreuz" {
		t.Errorf("At(0) = %v, %v", v, ok)
	}
}

func TestNewItemAssignsIDs(t *testing.T) {
	a := BankkontenLens.NewItem().(Bankkonto)
	b := BankkontenLens.NewItem().(Bankkonto)
	if a.ID == "" || b.ID == "" {
		t.Fatal("default items must carry an ID")
	}
	if a.ID == b.ID {
		t.Error("default items must get distinct IDs")
	}
}

func TestAllCoversEveryTopic(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(All) != len(raw) {
		t.Fatalf("All lists %d topics, document has %d", len(All), len(raw))
	}
	for _, acc := range All {
		if _, ok := raw[acc.Key()]; !ok {
			t.Errorf("lens key %q has no matching document field", acc.Key())
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := New()
	doc = VerheiratetLens.SetStart(doc, true)
	doc = PersonDataLens.SetData(doc, PersonData{Vorname: "Anna", Zivilstand: "verheiratet"})
	doc = JobsLens.Append(doc, Job{Arbeitgeber: "Migros", Nettolohn: 85000, Finished: true})

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(doc, back) {
		t.Error("document changed across JSON round trip")
	}
}
