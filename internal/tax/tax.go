// Package tax computes a rough tax estimate from the return document. The
// numbers are indicative only; the real assessment is done by the canton.
package tax

import "github.com/steuerpilot/steuerpilot/internal/document"

// Result is the estimate shown on the closing screens.
type Result struct {
	GrossIncome      float64 `json:"grossIncome"`
	DeductableAmount float64 `json:"deductableAmount"`
	TaxableIncome    float64 `json:"taxableIncome"`
	NetWealth        float64 `json:"netWealth"`
	TotalTaxes       float64 `json:"totalTaxes"`
}

// Calculator turns a document into an estimate.
type Calculator interface {
	Calculate(doc document.Document) Result
}

// Flat is a flat-rate reference calculator. It sums the document honestly
// but applies a single marginal rate instead of the cantonal tariff tables.
type Flat struct {
	IncomeRate     float64 // applied to taxable income
	WealthRate     float64 // applied to net wealth
	ChildDeduction float64 // per child
	MaxSaeule3a    float64 // legal cap on pillar 3a deductions
}

// NewFlat returns a calculator with plausible 2025 defaults.
func NewFlat() Flat {
	return Flat{
		IncomeRate:     0.12,
		WealthRate:     0.001,
		ChildDeduction: 6600,
		MaxSaeule3a:    7258,
	}
}

// Calculate implements Calculator.
func (c Flat) Calculate(doc document.Document) Result {
	var r Result

	for _, j := range doc.Jobs.Data {
		r.GrossIncome += j.Nettolohn
	}
	r.GrossIncome += doc.Nebenerwerb.Data.Einkommen
	r.GrossIncome += doc.Arbeitslosengeld.Data.Taggelder
	r.GrossIncome += doc.Renten.Data.AHVRente + doc.Renten.Data.Pensionskasse + doc.Renten.Data.UebrigeRenten
	r.GrossIncome += doc.AlimenteErhalten.Data.Betrag
	for _, b := range doc.Bankkonten.Data {
		r.GrossIncome += b.Zinsertrag
	}
	for _, w := range doc.Wertschriften.Data {
		r.GrossIncome += w.Ertrag
	}
	for _, l := range doc.Liegenschaften.Data {
		r.GrossIncome += l.Eigenmietwert + l.Mietertrag
	}

	s3a := doc.Saeule3a.Data.Einzahlung
	if s3a > c.MaxSaeule3a {
		s3a = c.MaxSaeule3a
	}
	r.DeductableAmount += s3a
	b := doc.Berufsauslagen.Data
	r.DeductableAmount += b.Fahrkosten + b.Verpflegung + b.UebrigeAuslagen
	r.DeductableAmount += doc.Weiterbildung.Data.Kosten
	for _, s := range doc.Spenden.Data {
		r.DeductableAmount += s.Betrag
	}
	k := doc.Krankheitskosten.Data
	r.DeductableAmount += k.Selbstbehalt + k.Zahnarzt
	v := doc.Versicherungen.Data
	r.DeductableAmount += v.Krankenkasse + v.Lebensversicherung
	r.DeductableAmount += doc.AlimenteBezahlt.Data.Betrag
	r.DeductableAmount += doc.Kinderbetreuung.Data.Kosten
	for _, s := range doc.Schulden.Data {
		r.DeductableAmount += s.Zinsen
	}
	r.DeductableAmount += float64(len(doc.Kinder.Data)) * c.ChildDeduction

	r.TaxableIncome = r.GrossIncome - r.DeductableAmount
	if r.TaxableIncome < 0 {
		r.TaxableIncome = 0
	}

	for _, b := range doc.Bankkonten.Data {
		r.NetWealth += b.Saldo
	}
	for _, w := range doc.Wertschriften.Data {
		r.NetWealth += w.Steuerwert
	}
	for _, k := range doc.Krypto.Data {
		r.NetWealth += k.Steuerwert
	}
	for _, l := range doc.Liegenschaften.Data {
		r.NetWealth += l.Steuerwert
	}
	for _, m := range doc.Motorfahrzeuge.Data {
		r.NetWealth += m.Kaufpreis
	}
	for _, s := range doc.Schulden.Data {
		r.NetWealth -= s.Betrag
	}

	r.TotalTaxes = r.TaxableIncome*c.IncomeRate + r.NetWealth*c.WealthRate
	if r.TotalTaxes < 0 {
		r.TotalTaxes = 0
	}
	return r
}
