package tax

import (
	"testing"

	"github.com/steuerpilot/steuerpilot/internal/document"
)

func TestCalculateEmptyDocument(t *testing.T) {
	r := NewFlat().Calculate(document.New())
	if r.GrossIncome != 0 || r.TaxableIncome != 0 || r.TotalTaxes != 0 {
		t.Errorf("empty document must estimate zero: %+v", r)
	}
}

func TestCalculateSumsTopics(t *testing.T) {
	doc := document.New()
	doc = document.JobsLens.Append(doc, document.Job{Nettolohn: 80000})
	doc = document.JobsLens.Append(doc, document.Job{Nettolohn: 20000})
	doc = document.BankkontenLens.Append(doc, document.Bankkonto{Saldo: 50000, Zinsertrag: 500})
	doc = document.SchuldenLens.Append(doc, document.Schuld{Betrag: 10000, Zinsen: 300})
	doc = document.Saeule3aLens.SetData(doc, document.Saeule3a{Einzahlung: 7000})
	doc = document.KinderLens.Append(doc, document.Kind{Vorname: "Mia"})

	c := NewFlat()
	r := c.Calculate(doc)

	if r.GrossIncome != 100500 {
		t.Errorf("GrossIncome = %v", r.GrossIncome)
	}
	wantDeduct := 7000.0 + 300 + c.ChildDeduction
	if r.DeductableAmount != wantDeduct {
		t.Errorf("DeductableAmount = %v, want %v", r.DeductableAmount, wantDeduct)
	}
	if r.TaxableIncome != r.GrossIncome-wantDeduct {
		t.Errorf("TaxableIncome = %v", r.TaxableIncome)
	}
	if r.NetWealth != 40000 {
		t.Errorf("NetWealth = %v", r.NetWealth)
	}
}

func TestSaeule3aCapped(t *testing.T) {
	doc := document.New()
	doc = document.Saeule3aLens.SetData(doc, document.Saeule3a{Einzahlung: 20000})

	c := NewFlat()
	r := c.Calculate(doc)
	if r.DeductableAmount != c.MaxSaeule3a {
		t.Errorf("3a deduction %v not capped at %v", r.DeductableAmount, c.MaxSaeule3a)
	}
}

func TestTaxableIncomeNeverNegative(t *testing.T) {
	doc := document.New()
	doc = document.KinderbetreuungLens.SetData(doc, document.Kinderbetreuung{Kosten: 25000})
	r := NewFlat().Calculate(doc)
	if r.TaxableIncome != 0 {
		t.Errorf("TaxableIncome = %v, want clamp to 0", r.TaxableIncome)
	}
}
