package registry

import (
	"fmt"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/scan"
)

// Category names. Screens carry these; the TUI sidebar and the status
// command iterate them in this order.
const (
	CatPersonalien = "personalien"
	CatEinkommen   = "einkommen"
	CatVermoegen   = "vermoegen"
	CatAbzuege     = "abzuege"
	CatAbschluss   = "abschluss"
)

// hiddenUnless hides a screen until the topic's gate was answered with yes.
func hiddenUnless(acc document.Access) func(document.Document) bool {
	return func(d document.Document) bool {
		s := acc.Start(d)
		return s == nil || !*s
	}
}

// anyHide combines hide predicates, skipping nils.
func anyHide(fns ...func(document.Document) bool) func(document.Document) bool {
	return func(d document.Document) bool {
		for _, fn := range fns {
			if fn != nil && fn(d) {
				return true
			}
		}
		return false
	}
}

// gateAnswered is the completion predicate for yes/no gates.
func gateAnswered(acc document.Access) func(document.Document) bool {
	return func(d document.Document) bool { return acc.Start(d) != nil }
}

// arrayTopic declares the standard gate/detail/overview triple for a
// repeatable topic. The gate's yes branch jumps straight into the first item
// form; detail and overview stay hidden until the gate was answered with yes.
type arrayTopic struct {
	name      string
	title     string
	gateTitle string
	category  string
	sub       string
	array     document.ArrayAccess
	itemDone  func(item any) bool
	label     func(item any) string
	fields    []Field
	help      string
	hide      func(document.Document) bool
}

func (t arrayTopic) screens() []*Screen {
	detailName := t.name + "Detail"
	overviewName := t.name + "Overview"
	hidden := anyHide(t.hide, hiddenUnless(t.array))

	gate := &Screen{
		Name:        t.name,
		Title:       t.gateTitle,
		Type:        YesNo,
		Topic:       t.array,
		Array:       t.array,
		YesScreen:   detailName,
		IsDone:      gateAnswered(t.array),
		Hide:        t.hide,
		Help:        t.help,
		Category:    t.category,
		Subcategory: t.sub,
	}
	detail := &Screen{
		Name:           detailName,
		Title:          t.title,
		Type:           ArrayForm,
		Topic:          t.array,
		Array:          t.array,
		OverviewScreen: overviewName,
		IsDone: func(d document.Document) bool {
			if hidden(d) {
				return true
			}
			n := t.array.Len(d)
			if n == 0 {
				return false
			}
			for i := 0; i < n; i++ {
				item, _ := t.array.At(d, i)
				if !t.itemDone(item) {
					return false
				}
			}
			return true
		},
		Hide:        hidden,
		Label:       t.label,
		Fields:      t.fields,
		Category:    t.category,
		Subcategory: t.sub,
	}
	overview := &Screen{
		Name:         overviewName,
		Title:        t.title,
		Type:         ArrayOverview,
		Topic:        t.array,
		Array:        t.array,
		DetailScreen: detailName,
		IsDone: func(d document.Document) bool {
			if hidden(d) {
				return true
			}
			f := t.array.Finished(d)
			return f != nil && *f
		},
		Hide:        hidden,
		Label:       t.label,
		Category:    t.category,
		Subcategory: t.sub,
	}
	return []*Screen{gate, detail, overview}
}

// gatedObjTopic declares a yes/no gate followed by a single object form.
type gatedObjTopic struct {
	name      string
	title     string
	gateTitle string
	category  string
	sub       string
	topic     document.Access
	dataDone  func(document.Document) bool
	fields    []Field
	help      string
	hide      func(document.Document) bool
}

func (t gatedObjTopic) screens() []*Screen {
	formName := t.name + "Form"
	hidden := anyHide(t.hide, hiddenUnless(t.topic))

	gate := &Screen{
		Name:        t.name,
		Title:       t.gateTitle,
		Type:        YesNo,
		Topic:       t.topic,
		YesScreen:   formName,
		IsDone:      gateAnswered(t.topic),
		Hide:        t.hide,
		Help:        t.help,
		Category:    t.category,
		Subcategory: t.sub,
	}
	form := &Screen{
		Name:  formName,
		Title: t.title,
		Type:  ObjForm,
		Topic: t.topic,
		IsDone: func(d document.Document) bool {
			if hidden(d) {
				return true
			}
			return t.dataDone(d)
		},
		Hide:        hidden,
		Fields:      t.fields,
		Category:    t.category,
		Subcategory: t.sub,
	}
	return []*Screen{gate, form}
}

// Default builds the production screen registry. The registry is static
// configuration; an invalid one is a programming error, hence the panic.
func Default() *Registry {
	r, err := New(defaultScreens(), defaultCategories())
	if err != nil {
		panic(err)
	}
	return r
}

func defaultCategories() []Category {
	return []Category{
		{
			Name:  CatPersonalien,
			Title: "Personalien",
			Entry: func(document.Document) string { return "personData" },
		},
		{
			Name:  CatEinkommen,
			Title: "Einkommen",
			// Jump straight to the overview when employment data already
			// exists, skipping the "do you have a job?" gate.
			Entry: func(d document.Document) string {
				if document.JobsLens.Len(d) > 0 {
					return "jobsOverview"
				}
				return "jobs"
			},
		},
		{
			Name:  CatVermoegen,
			Title: "Vermögen",
			Entry: func(d document.Document) string {
				if document.BankkontenLens.Len(d) > 0 {
					return "bankkontenOverview"
				}
				return "bankkonten"
			},
		},
		{
			Name:  CatAbzuege,
			Title: "Abzüge",
			Entry: func(document.Document) string { return "saeule3a" },
		},
		{
			Name:  CatAbschluss,
			Title: "Abschluss",
			Entry: func(document.Document) string { return "bemerkungen" },
		},
	}
}

func defaultScreens() []*Screen {
	var screens []*Screen
	add := func(s ...*Screen) { screens = append(screens, s...) }

	// --- Personalien ---

	add(&Screen{
		Name:  "personData",
		Title: "Personalien",
		Type:  ObjForm,
		Topic: document.PersonDataLens,
		IsDone: func(d document.Document) bool {
			p := document.PersonDataLens.Data(d)
			return p.Vorname != "" && p.Nachname != "" && p.Geburtsdatum != ""
		},
		Help:        "Ihre persönlichen Angaben, wie sie auf der **Steuererklärung** erscheinen.",
		Category:    CatPersonalien,
		Subcategory: "Person",
		Fields: []Field{
			textField("vorname", "Vorname", "", func(p document.PersonData) string { return p.Vorname },
				func(p document.PersonData, s string) document.PersonData { p.Vorname = s; return p }),
			textField("nachname", "Nachname", "", func(p document.PersonData) string { return p.Nachname },
				func(p document.PersonData, s string) document.PersonData { p.Nachname = s; return p }),
			textField("geburtsdatum", "Geburtsdatum", "TT.MM.JJJJ", func(p document.PersonData) string { return p.Geburtsdatum },
				func(p document.PersonData, s string) document.PersonData { p.Geburtsdatum = s; return p }),
			textField("strasse", "Strasse / Nr.", "", func(p document.PersonData) string { return p.Strasse },
				func(p document.PersonData, s string) document.PersonData { p.Strasse = s; return p }),
			textField("plz", "PLZ", "", func(p document.PersonData) string { return p.PLZ },
				func(p document.PersonData, s string) document.PersonData { p.PLZ = s; return p }),
			textField("ort", "Ort", "", func(p document.PersonData) string { return p.Ort },
				func(p document.PersonData, s string) document.PersonData { p.Ort = s; return p }),
			textField("ahv", "AHV-Nummer", "756.XXXX.XXXX.XX", func(p document.PersonData) string { return p.AHVNummer },
				func(p document.PersonData, s string) document.PersonData { p.AHVNummer = s; return p }),
		},
	})

	add(&Screen{
		Name:      "verheiratet",
		Title:     "Sind Sie verheiratet?",
		Type:      YesNo,
		Topic:     document.VerheiratetLens,
		YesScreen: "partner",
		IsDone:    gateAnswered(document.VerheiratetLens),
		// Declared cross-topic update: the marriage answer also sets the
		// civil status on the personData topic.
		Update: func(d document.Document) document.Document {
			p := document.PersonDataLens.Data(d)
			if d.Verheiratet.Started() {
				p.Zivilstand = "verheiratet"
			} else if p.Zivilstand == "verheiratet" {
				p.Zivilstand = "ledig"
			}
			return document.PersonDataLens.SetData(d, p)
		},
		Category:    CatPersonalien,
		Subcategory: "Person",
	})

	add(&Screen{
		Name:  "partner",
		Title: "Ehepartner/in",
		Type:  ObjForm,
		Topic: document.PartnerLens,
		IsDone: func(d document.Document) bool {
			if !d.Verheiratet.Started() {
				return true
			}
			p := document.PartnerLens.Data(d)
			return p.Vorname != "" && p.Nachname != ""
		},
		Hide:        func(d document.Document) bool { return !d.Verheiratet.Started() },
		Category:    CatPersonalien,
		Subcategory: "Person",
		Fields: []Field{
			textField("vorname", "Vorname", "", func(p document.Partner) string { return p.Vorname },
				func(p document.Partner, s string) document.Partner { p.Vorname = s; return p }),
			textField("nachname", "Nachname", "", func(p document.Partner) string { return p.Nachname },
				func(p document.Partner, s string) document.Partner { p.Nachname = s; return p }),
			textField("geburtsdatum", "Geburtsdatum", "TT.MM.JJJJ", func(p document.Partner) string { return p.Geburtsdatum },
				func(p document.Partner, s string) document.Partner { p.Geburtsdatum = s; return p }),
			textField("ahv", "AHV-Nummer", "756.XXXX.XXXX.XX", func(p document.Partner) string { return p.AHVNummer },
				func(p document.Partner, s string) document.Partner { p.AHVNummer = s; return p }),
		},
	})

	add(arrayTopic{
		name:      "kinder",
		title:     "Kinder",
		gateTitle: "Haben Sie Kinder?",
		category:  CatPersonalien,
		sub:       "Familie",
		array:     document.KinderLens,
		itemDone:  func(v any) bool { return v.(document.Kind).Finished },
		label: func(v any) string {
			k := v.(document.Kind)
			if k.Vorname == "" {
				return "Neues Kind"
			}
			return fmt.Sprintf("%s (%s)", k.Vorname, k.Geburtsdatum)
		},
		fields: []Field{
			textField("vorname", "Vorname", "", func(k document.Kind) string { return k.Vorname },
				func(k document.Kind, s string) document.Kind { k.Vorname = s; return k }),
			textField("geburtsdatum", "Geburtsdatum", "TT.MM.JJJJ", func(k document.Kind) string { return k.Geburtsdatum },
				func(k document.Kind, s string) document.Kind { k.Geburtsdatum = s; return k }),
			boolTextField("inAusbildung", "In Ausbildung", func(k document.Kind) bool { return k.InAusbildung },
				func(k document.Kind, b bool) document.Kind { k.InAusbildung = b; return k }),
		},
	}.screens()...)

	// --- Einkommen ---

	add(&Screen{
		Name:     "uebersichtEinkommen",
		Title:    "Einkommen",
		Type:     CategoryOverview,
		IsDone:   func(document.Document) bool { return true },
		Category: CatEinkommen,
	})

	add(arrayTopic{
		name:      "jobs",
		title:     "Anstellung",
		gateTitle: "Sind Sie angestellt?",
		category:  CatEinkommen,
		sub:       "Erwerbseinkommen",
		array:     document.JobsLens,
		itemDone:  func(v any) bool { return v.(document.Job).Finished },
		label: func(v any) string {
			j := v.(document.Job)
			if j.Arbeitgeber == "" {
				return "Neue Anstellung"
			}
			return fmt.Sprintf("%s · CHF %.0f netto", j.Arbeitgeber, j.Nettolohn)
		},
		help: "Erfassen Sie jede Anstellung gemäss **Lohnausweis**. Der Nettolohn steht in Ziffer 11.",
		fields: []Field{
			textField("arbeitgeber", "Arbeitgeber", "", func(j document.Job) string { return j.Arbeitgeber },
				func(j document.Job, s string) document.Job { j.Arbeitgeber = s; return j }),
			moneyField("bruttolohn", "Bruttolohn", func(j document.Job) float64 { return j.Bruttolohn },
				func(j document.Job, v float64) document.Job { j.Bruttolohn = v; return j }),
			moneyField("nettolohn", "Nettolohn", func(j document.Job) float64 { return j.Nettolohn },
				func(j document.Job, v float64) document.Job { j.Nettolohn = v; return j }),
			moneyField("pensum", "Pensum (%)", func(j document.Job) float64 { return j.Pensum },
				func(j document.Job, v float64) document.Job { j.Pensum = v; return j }),
		},
	}.screens()...)

	add(&Screen{
		Name:         "lohnausweisScan",
		Title:        "Lohnausweis scannen",
		Type:         ScanOrUpload,
		Topic:        document.JobsLens,
		Array:        document.JobsLens,
		DetailScreen: "jobsDetail",
		ScanKind:     scan.KindLohnausweis,
		ApplyScan: func(v any, f scan.Fields) any {
			j := v.(document.Job)
			j.Arbeitgeber = f.Get("arbeitgeber")
			j.Bruttolohn = f.Amount("bruttolohn")
			j.Nettolohn = f.Amount("nettolohn")
			return j
		},
		IsDone:      func(document.Document) bool { return true },
		Hide:        hiddenUnless(document.JobsLens),
		Category:    CatEinkommen,
		Subcategory: "Erwerbseinkommen",
	})

	add(gatedObjTopic{
		name:      "nebenerwerb",
		title:     "Nebenerwerb",
		gateTitle: "Haben Sie einen Nebenerwerb?",
		category:  CatEinkommen,
		sub:       "Erwerbseinkommen",
		topic:     document.NebenerwerbLens,
		dataDone: func(d document.Document) bool {
			return document.NebenerwerbLens.Data(d).Einkommen > 0
		},
		fields: []Field{
			textField("beschreibung", "Beschreibung", "", func(n document.Nebenerwerb) string { return n.Beschreibung },
				func(n document.Nebenerwerb, s string) document.Nebenerwerb { n.Beschreibung = s; return n }),
			moneyField("einkommen", "Einkommen", func(n document.Nebenerwerb) float64 { return n.Einkommen },
				func(n document.Nebenerwerb, v float64) document.Nebenerwerb { n.Einkommen = v; return n }),
		},
	}.screens()...)

	add(gatedObjTopic{
		name:      "arbeitslosengeld",
		title:     "Arbeitslosengeld",
		gateTitle: "Haben Sie Arbeitslosengeld bezogen?",
		category:  CatEinkommen,
		sub:       "Renten & Taggelder",
		topic:     document.ArbeitslosengeldLens,
		dataDone: func(d document.Document) bool {
			return document.ArbeitslosengeldLens.Data(d).Taggelder > 0
		},
		fields: []Field{
			moneyField("taggelder", "Taggelder", func(a document.Arbeitslosengeld) float64 { return a.Taggelder },
				func(a document.Arbeitslosengeld, v float64) document.Arbeitslosengeld { a.Taggelder = v; return a }),
		},
	}.screens()...)

	add(gatedObjTopic{
		name:      "renten",
		title:     "Renten",
		gateTitle: "Haben Sie Renten bezogen (AHV/IV, Pensionskasse)?",
		category:  CatEinkommen,
		sub:       "Renten & Taggelder",
		topic:     document.RentenLens,
		dataDone: func(d document.Document) bool {
			r := document.RentenLens.Data(d)
			return r.AHVRente > 0 || r.Pensionskasse > 0 || r.UebrigeRenten > 0
		},
		fields: []Field{
			moneyField("ahv", "AHV/IV-Rente", func(r document.Renten) float64 { return r.AHVRente },
				func(r document.Renten, v float64) document.Renten { r.AHVRente = v; return r }),
			moneyField("pk", "Pensionskasse", func(r document.Renten) float64 { return r.Pensionskasse },
				func(r document.Renten, v float64) document.Renten { r.Pensionskasse = v; return r }),
			moneyField("uebrige", "Übrige Renten", func(r document.Renten) float64 { return r.UebrigeRenten },
				func(r document.Renten, v float64) document.Renten { r.UebrigeRenten = v; return r }),
		},
	}.screens()...)

	add(gatedObjTopic{
		name:      "alimenteErhalten",
		title:     "Erhaltene Alimente",
		gateTitle: "Haben Sie Alimente erhalten?",
		category:  CatEinkommen,
		sub:       "Alimente",
		topic:     document.AlimenteErhaltenLens,
		dataDone: func(d document.Document) bool {
			return document.AlimenteErhaltenLens.Data(d).Betrag > 0
		},
		fields: []Field{
			moneyField("betrag", "Betrag pro Jahr", func(a document.AlimenteErhalten) float64 { return a.Betrag },
				func(a document.AlimenteErhalten, v float64) document.AlimenteErhalten { a.Betrag = v; return a }),
			textField("von", "Von", "", func(a document.AlimenteErhalten) string { return a.Von },
				func(a document.AlimenteErhalten, s string) document.AlimenteErhalten { a.Von = s; return a }),
		},
	}.screens()...)

	// --- Vermögen ---

	add(&Screen{
		Name:     "uebersichtVermoegen",
		Title:    "Vermögen",
		Type:     CategoryOverview,
		IsDone:   func(document.Document) bool { return true },
		Category: CatVermoegen,
	})

	add(arrayTopic{
		name:      "bankkonten",
		title:     "Bankkonten",
		gateTitle: "Haben Sie Bank- oder Postkonten?",
		category:  CatVermoegen,
		sub:       "Konten",
		array:     document.BankkontenLens,
		itemDone:  func(v any) bool { return v.(document.Bankkonto).Finished },
		label: func(v any) string {
			b := v.(document.Bankkonto)
			if b.Bank == "" {
				return "Neues Konto"
			}
			return fmt.Sprintf("%s · CHF %.2f", b.Bank, b.Saldo)
		},
		help: "Saldo und Zinsertrag per **31. Dezember** gemäss Zinsausweis der Bank.",
		fields: []Field{
			textField("bank", "Bank", "", func(b document.Bankkonto) string { return b.Bank },
				func(b document.Bankkonto, s string) document.Bankkonto { b.Bank = s; return b }),
			textField("iban", "IBAN", "CH...", func(b document.Bankkonto) string { return b.IBAN },
				func(b document.Bankkonto, s string) document.Bankkonto { b.IBAN = s; return b }),
			moneyField("saldo", "Saldo 31.12.", func(b document.Bankkonto) float64 { return b.Saldo },
				func(b document.Bankkonto, v float64) document.Bankkonto { b.Saldo = v; return b }),
			moneyField("zins", "Zinsertrag", func(b document.Bankkonto) float64 { return b.Zinsertrag },
				func(b document.Bankkonto, v float64) document.Bankkonto { b.Zinsertrag = v; return b }),
		},
	}.screens()...)

	add(&Screen{
		Name:         "bankauszugScan",
		Title:        "Zinsausweis scannen",
		Type:         ScanOrUpload,
		Topic:        document.BankkontenLens,
		Array:        document.BankkontenLens,
		DetailScreen: "bankkontenDetail",
		ScanKind:     scan.KindBankauszug,
		ApplyScan: func(v any, f scan.Fields) any {
			b := v.(document.Bankkonto)
			b.Bank = f.Get("bank")
			b.IBAN = f.Get("iban")
			b.Saldo = f.Amount("saldo")
			b.Zinsertrag = f.Amount("zinsertrag")
			return b
		},
		IsDone:      func(document.Document) bool { return true },
		Hide:        hiddenUnless(document.BankkontenLens),
		Category:    CatVermoegen,
		Subcategory: "Konten",
	})

	add(arrayTopic{
		name:      "wertschriften",
		title:     "Wertschriften",
		gateTitle: "Besitzen Sie Wertschriften (Aktien, Fonds, Obligationen)?",
		category:  CatVermoegen,
		sub:       "Wertschriften",
		array:     document.WertschriftenLens,
		itemDone:  func(v any) bool { return v.(document.Wertschrift).Finished },
		label: func(v any) string {
			w := v.(document.Wertschrift)
			if w.Bezeichnung == "" {
				return "Neue Position"
			}
			return fmt.Sprintf("%s · CHF %.2f", w.Bezeichnung, w.Steuerwert)
		},
		fields: []Field{
			textField("bezeichnung", "Bezeichnung", "", func(w document.Wertschrift) string { return w.Bezeichnung },
				func(w document.Wertschrift, s string) document.Wertschrift { w.Bezeichnung = s; return w }),
			textField("valor", "Valorennummer", "", func(w document.Wertschrift) string { return w.Valor },
				func(w document.Wertschrift, s string) document.Wertschrift { w.Valor = s; return w }),
			moneyField("steuerwert", "Steuerwert 31.12.", func(w document.Wertschrift) float64 { return w.Steuerwert },
				func(w document.Wertschrift, v float64) document.Wertschrift { w.Steuerwert = v; return w }),
			moneyField("ertrag", "Ertrag", func(w document.Wertschrift) float64 { return w.Ertrag },
				func(w document.Wertschrift, v float64) document.Wertschrift { w.Ertrag = v; return w }),
		},
	}.screens()...)

	add(&Screen{
		Name:         "wertschriftenScan",
		Title:        "Depotauszug scannen",
		Type:         ScanOrUpload,
		Topic:        document.WertschriftenLens,
		Array:        document.WertschriftenLens,
		DetailScreen: "wertschriftenDetail",
		ScanKind:     scan.KindWertschriften,
		ApplyScan: func(v any, f scan.Fields) any {
			w := v.(document.Wertschrift)
			w.Bezeichnung = f.Get("bezeichnung")
			w.Valor = f.Get("valor")
			w.Steuerwert = f.Amount("steuerwert")
			w.Ertrag = f.Amount("ertrag")
			return w
		},
		IsDone:      func(document.Document) bool { return true },
		Hide:        hiddenUnless(document.WertschriftenLens),
		Category:    CatVermoegen,
		Subcategory: "Wertschriften",
	})

	add(arrayTopic{
		name:      "krypto",
		title:     "Kryptowährungen",
		gateTitle: "Besitzen Sie Kryptowährungen?",
		category:  CatVermoegen,
		sub:       "Wertschriften",
		array:     document.KryptoLens,
		itemDone:  func(v any) bool { return v.(document.Krypto).Finished },
		label: func(v any) string {
			k := v.(document.Krypto)
			if k.Waehrung == "" {
				return "Neue Position"
			}
			return fmt.Sprintf("%s · %.4f", k.Waehrung, k.Bestand)
		},
		fields: []Field{
			textField("waehrung", "Währung", "BTC, ETH ...", func(k document.Krypto) string { return k.Waehrung },
				func(k document.Krypto, s string) document.Krypto { k.Waehrung = s; return k }),
			moneyField("bestand", "Bestand", func(k document.Krypto) float64 { return k.Bestand },
				func(k document.Krypto, v float64) document.Krypto { k.Bestand = v; return k }),
			moneyField("steuerwert", "Steuerwert 31.12.", func(k document.Krypto) float64 { return k.Steuerwert },
				func(k document.Krypto, v float64) document.Krypto { k.Steuerwert = v; return k }),
		},
	}.screens()...)

	add(arrayTopic{
		name:      "liegenschaften",
		title:     "Liegenschaften",
		gateTitle: "Besitzen Sie Liegenschaften?",
		category:  CatVermoegen,
		sub:       "Liegenschaften",
		array:     document.LiegenschaftenLens,
		itemDone:  func(v any) bool { return v.(document.Liegenschaft).Finished },
		label: func(v any) string {
			l := v.(document.Liegenschaft)
			if l.Adresse == "" {
				return "Neue Liegenschaft"
			}
			return l.Adresse
		},
		fields: []Field{
			textField("adresse", "Adresse", "", func(l document.Liegenschaft) string { return l.Adresse },
				func(l document.Liegenschaft, s string) document.Liegenschaft { l.Adresse = s; return l }),
			moneyField("steuerwert", "Steuerwert", func(l document.Liegenschaft) float64 { return l.Steuerwert },
				func(l document.Liegenschaft, v float64) document.Liegenschaft { l.Steuerwert = v; return l }),
			moneyField("eigenmietwert", "Eigenmietwert", func(l document.Liegenschaft) float64 { return l.Eigenmietwert },
				func(l document.Liegenschaft, v float64) document.Liegenschaft { l.Eigenmietwert = v; return l }),
			moneyField("mietertrag", "Mietertrag", func(l document.Liegenschaft) float64 { return l.Mietertrag },
				func(l document.Liegenschaft, v float64) document.Liegenschaft { l.Mietertrag = v; return l }),
		},
	}.screens()...)

	add(arrayTopic{
		name:      "motorfahrzeuge",
		title:     "Motorfahrzeuge",
		gateTitle: "Besitzen Sie Motorfahrzeuge?",
		category:  CatVermoegen,
		sub:       "Übriges Vermögen",
		array:     document.MotorfahrzeugeLens,
		itemDone:  func(v any) bool { return v.(document.Motorfahrzeug).Finished },
		label: func(v any) string {
			m := v.(document.Motorfahrzeug)
			if m.Marke == "" {
				return "Neues Fahrzeug"
			}
			return fmt.Sprintf("%s (%s)", m.Marke, m.Jahrgang)
		},
		fields: []Field{
			textField("marke", "Marke / Modell", "", func(m document.Motorfahrzeug) string { return m.Marke },
				func(m document.Motorfahrzeug, s string) document.Motorfahrzeug { m.Marke = s; return m }),
			textField("jahrgang", "Jahrgang", "", func(m document.Motorfahrzeug) string { return m.Jahrgang },
				func(m document.Motorfahrzeug, s string) document.Motorfahrzeug { m.Jahrgang = s; return m }),
			moneyField("kaufpreis", "Kaufpreis", func(m document.Motorfahrzeug) float64 { return m.Kaufpreis },
				func(m document.Motorfahrzeug, v float64) document.Motorfahrzeug { m.Kaufpreis = v; return m }),
		},
	}.screens()...)

	add(arrayTopic{
		name:      "schulden",
		title:     "Schulden",
		gateTitle: "Haben Sie Schulden (Hypotheken, Darlehen)?",
		category:  CatVermoegen,
		sub:       "Schulden",
		array:     document.SchuldenLens,
		itemDone:  func(v any) bool { return v.(document.Schuld).Finished },
		label: func(v any) string {
			s := v.(document.Schuld)
			if s.Glaeubiger == "" {
				return "Neue Schuld"
			}
			return fmt.Sprintf("%s · CHF %.2f", s.Glaeubiger, s.Betrag)
		},
		fields: []Field{
			textField("glaeubiger", "Gläubiger", "", func(s document.Schuld) string { return s.Glaeubiger },
				func(s document.Schuld, v string) document.Schuld { s.Glaeubiger = v; return s }),
			moneyField("betrag", "Schuldbetrag 31.12.", func(s document.Schuld) float64 { return s.Betrag },
				func(s document.Schuld, v float64) document.Schuld { s.Betrag = v; return s }),
			moneyField("zinsen", "Bezahlte Zinsen", func(s document.Schuld) float64 { return s.Zinsen },
				func(s document.Schuld, v float64) document.Schuld { s.Zinsen = v; return s }),
		},
	}.screens()...)

	add(arrayTopic{
		name:      "erbschaften",
		title:     "Erbschaften & Schenkungen",
		gateTitle: "Haben Sie Erbschaften oder Schenkungen erhalten?",
		category:  CatVermoegen,
		sub:       "Übriges Vermögen",
		array:     document.ErbschaftenLens,
		itemDone:  func(v any) bool { return v.(document.Erbschaft).Finished },
		label: func(v any) string {
			e := v.(document.Erbschaft)
			if e.Von == "" {
				return "Neuer Eintrag"
			}
			return fmt.Sprintf("%s · CHF %.2f", e.Von, e.Betrag)
		},
		fields: []Field{
			textField("von", "Von", "", func(e document.Erbschaft) string { return e.Von },
				func(e document.Erbschaft, s string) document.Erbschaft { e.Von = s; return e }),
			moneyField("betrag", "Betrag", func(e document.Erbschaft) float64 { return e.Betrag },
				func(e document.Erbschaft, v float64) document.Erbschaft { e.Betrag = v; return e }),
			textField("datum", "Datum", "TT.MM.JJJJ", func(e document.Erbschaft) string { return e.Datum },
				func(e document.Erbschaft, s string) document.Erbschaft { e.Datum = s; return e }),
		},
	}.screens()...)

	// --- Abzüge ---

	add(&Screen{
		Name:     "uebersichtAbzuege",
		Title:    "Abzüge",
		Type:     CategoryOverview,
		IsDone:   func(document.Document) bool { return true },
		Category: CatAbzuege,
	})

	add(gatedObjTopic{
		name:      "saeule3a",
		title:     "Säule 3a",
		gateTitle: "Haben Sie in die Säule 3a einbezahlt?",
		category:  CatAbzuege,
		sub:       "Vorsorge",
		topic:     document.Saeule3aLens,
		dataDone: func(d document.Document) bool {
			return document.Saeule3aLens.Data(d).Einzahlung > 0
		},
		help: "Einzahlungen in die gebundene Vorsorge sind bis zum **gesetzlichen Maximum** abziehbar.",
		fields: []Field{
			moneyField("einzahlung", "Einzahlung", func(s document.Saeule3a) float64 { return s.Einzahlung },
				func(s document.Saeule3a, v float64) document.Saeule3a { s.Einzahlung = v; return s }),
			textField("stiftung", "Vorsorgestiftung", "", func(s document.Saeule3a) string { return s.Stiftung },
				func(s document.Saeule3a, v string) document.Saeule3a { s.Stiftung = v; return s }),
		},
	}.screens()...)

	add(&Screen{
		Name:     "saeule3aScan",
		Title:    "3a-Bescheinigung scannen",
		Type:     ScanOrUpload,
		Topic:    document.Saeule3aLens,
		ScanKind: scan.KindSaeule3a,
		ApplyScan: func(v any, f scan.Fields) any {
			s := v.(document.Saeule3a)
			s.Einzahlung = f.Amount("einzahlung")
			s.Stiftung = f.Get("stiftung")
			return s
		},
		IsDone:      func(document.Document) bool { return true },
		Hide:        hiddenUnless(document.Saeule3aLens),
		Category:    CatAbzuege,
		Subcategory: "Vorsorge",
	})

	add(&Screen{
		Name:  "berufsauslagen",
		Title: "Berufsauslagen",
		Type:  ObjForm,
		Topic: document.BerufsauslagenLens,
		IsDone: func(d document.Document) bool {
			// Optional amounts; the screen counts as complete once visited
			// with any value, or when there is no employment at all.
			if !d.Jobs.Started() {
				return true
			}
			b := document.BerufsauslagenLens.Data(d)
			return b.Fahrkosten > 0 || b.Verpflegung > 0 || b.UebrigeAuslagen > 0
		},
		Hide:        func(d document.Document) bool { return !d.Jobs.Started() },
		Category:    CatAbzuege,
		Subcategory: "Berufsauslagen",
		Fields: []Field{
			moneyField("fahrkosten", "Fahrkosten", func(b document.Berufsauslagen) float64 { return b.Fahrkosten },
				func(b document.Berufsauslagen, v float64) document.Berufsauslagen { b.Fahrkosten = v; return b }),
			moneyField("verpflegung", "Mehrkosten Verpflegung", func(b document.Berufsauslagen) float64 { return b.Verpflegung },
				func(b document.Berufsauslagen, v float64) document.Berufsauslagen { b.Verpflegung = v; return b }),
			moneyField("uebrige", "Übrige Auslagen", func(b document.Berufsauslagen) float64 { return b.UebrigeAuslagen },
				func(b document.Berufsauslagen, v float64) document.Berufsauslagen { b.UebrigeAuslagen = v; return b }),
		},
	})

	add(gatedObjTopic{
		name:      "weiterbildung",
		title:     "Weiterbildung",
		gateTitle: "Hatten Sie Weiterbildungskosten?",
		category:  CatAbzuege,
		sub:       "Berufsauslagen",
		topic:     document.WeiterbildungLens,
		dataDone: func(d document.Document) bool {
			return document.WeiterbildungLens.Data(d).Kosten > 0
		},
		fields: []Field{
			textField("bezeichnung", "Bezeichnung", "", func(w document.Weiterbildung) string { return w.Bezeichnung },
				func(w document.Weiterbildung, s string) document.Weiterbildung { w.Bezeichnung = s; return w }),
			moneyField("kosten", "Kosten", func(w document.Weiterbildung) float64 { return w.Kosten },
				func(w document.Weiterbildung, v float64) document.Weiterbildung { w.Kosten = v; return w }),
		},
	}.screens()...)

	add(arrayTopic{
		name:      "spenden",
		title:     "Spenden",
		gateTitle: "Haben Sie gemeinnützige Spenden gemacht?",
		category:  CatAbzuege,
		sub:       "Spenden",
		array:     document.SpendenLens,
		itemDone:  func(v any) bool { return v.(document.Spende).Finished },
		label: func(v any) string {
			s := v.(document.Spende)
			if s.Organisation == "" {
				return "Neue Spende"
			}
			return fmt.Sprintf("%s · CHF %.2f", s.Organisation, s.Betrag)
		},
		fields: []Field{
			textField("organisation", "Organisation", "", func(s document.Spende) string { return s.Organisation },
				func(s document.Spende, v string) document.Spende { s.Organisation = v; return s }),
			moneyField("betrag", "Betrag", func(s document.Spende) float64 { return s.Betrag },
				func(s document.Spende, v float64) document.Spende { s.Betrag = v; return s }),
		},
	}.screens()...)

	add(gatedObjTopic{
		name:      "krankheitskosten",
		title:     "Krankheitskosten",
		gateTitle: "Hatten Sie selbst getragene Krankheitskosten?",
		category:  CatAbzuege,
		sub:       "Krankheit & Versicherung",
		topic:     document.KrankheitskostenLens,
		dataDone: func(d document.Document) bool {
			k := document.KrankheitskostenLens.Data(d)
			return k.Selbstbehalt > 0 || k.Zahnarzt > 0
		},
		fields: []Field{
			moneyField("selbstbehalt", "Franchise & Selbstbehalt", func(k document.Krankheitskosten) float64 { return k.Selbstbehalt },
				func(k document.Krankheitskosten, v float64) document.Krankheitskosten { k.Selbstbehalt = v; return k }),
			moneyField("zahnarzt", "Zahnarztkosten", func(k document.Krankheitskosten) float64 { return k.Zahnarzt },
				func(k document.Krankheitskosten, v float64) document.Krankheitskosten { k.Zahnarzt = v; return k }),
		},
	}.screens()...)

	add(&Screen{
		Name:  "versicherungspraemien",
		Title: "Versicherungsprämien",
		Type:  ObjForm,
		Topic: document.VersicherungenLens,
		IsDone: func(d document.Document) bool {
			return document.VersicherungenLens.Data(d).Krankenkasse > 0
		},
		Category:    CatAbzuege,
		Subcategory: "Krankheit & Versicherung",
		Fields: []Field{
			moneyField("krankenkasse", "Krankenkassenprämien", func(p document.Versicherungspraemien) float64 { return p.Krankenkasse },
				func(p document.Versicherungspraemien, v float64) document.Versicherungspraemien { p.Krankenkasse = v; return p }),
			moneyField("leben", "Lebensversicherung", func(p document.Versicherungspraemien) float64 { return p.Lebensversicherung },
				func(p document.Versicherungspraemien, v float64) document.Versicherungspraemien { p.Lebensversicherung = v; return p }),
		},
	})

	add(gatedObjTopic{
		name:      "alimenteBezahlt",
		title:     "Bezahlte Alimente",
		gateTitle: "Haben Sie Alimente bezahlt?",
		category:  CatAbzuege,
		sub:       "Alimente",
		topic:     document.AlimenteBezahltLens,
		dataDone: func(d document.Document) bool {
			return document.AlimenteBezahltLens.Data(d).Betrag > 0
		},
		fields: []Field{
			moneyField("betrag", "Betrag pro Jahr", func(a document.AlimenteBezahlt) float64 { return a.Betrag },
				func(a document.AlimenteBezahlt, v float64) document.AlimenteBezahlt { a.Betrag = v; return a }),
			textField("an", "An", "", func(a document.AlimenteBezahlt) string { return a.An },
				func(a document.AlimenteBezahlt, s string) document.AlimenteBezahlt { a.An = s; return a }),
		},
	}.screens()...)

	add(gatedObjTopic{
		name:      "kinderbetreuung",
		title:     "Kinderbetreuung",
		gateTitle: "Hatten Sie Kosten für Drittbetreuung der Kinder?",
		category:  CatAbzuege,
		sub:       "Familie",
		topic:     document.KinderbetreuungLens,
		// Only offered when the children gate was answered with yes.
		hide: func(d document.Document) bool { return !d.Kinder.Started() },
		dataDone: func(d document.Document) bool {
			return document.KinderbetreuungLens.Data(d).Kosten > 0
		},
		fields: []Field{
			moneyField("kosten", "Betreuungskosten", func(k document.Kinderbetreuung) float64 { return k.Kosten },
				func(k document.Kinderbetreuung, v float64) document.Kinderbetreuung { k.Kosten = v; return k }),
		},
	}.screens()...)

	// --- Abschluss ---

	add(&Screen{
		Name:     "uebersichtAbschluss",
		Title:    "Abschluss",
		Type:     CategoryOverview,
		IsDone:   func(document.Document) bool { return true },
		Category: CatAbschluss,
	})

	add(&Screen{
		Name:        "bemerkungen",
		Title:       "Bemerkungen",
		Type:        ObjForm,
		Topic:       document.BemerkungenLens,
		IsDone:      func(document.Document) bool { return true },
		Help:        "Optionale Bemerkungen zuhanden der Steuerbehörde.",
		Category:    CatAbschluss,
		Subcategory: "Abschluss",
		Fields: []Field{
			textField("text", "Bemerkungen", "", func(b document.Bemerkungen) string { return b.Text },
				func(b document.Bemerkungen, s string) document.Bemerkungen { b.Text = s; return b }),
		},
	})

	add(&Screen{
		Name:        "generatePdf",
		Title:       "Steuererklärung erstellen",
		Type:        GeneratePdf,
		IsDone:      func(document.Document) bool { return true },
		Category:    CatAbschluss,
		Subcategory: "Abschluss",
	})

	return screens
}
