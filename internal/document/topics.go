package document

// Topic payload types for the tax return. Every field is optional: the wizard
// may be abandoned and resumed at any point, so zero values mean "not yet
// entered". Array items carry an ID (assigned on creation) and a Finished
// flag marking the item as fully filled in.

// PersonData holds the taxpayer's personal details.
type PersonData struct {
	Vorname      string `json:"vorname,omitempty"`
	Nachname     string `json:"nachname,omitempty"`
	Strasse      string `json:"strasse,omitempty"`
	PLZ          string `json:"plz,omitempty"`
	Ort          string `json:"ort,omitempty"`
	Geburtsdatum string `json:"geburtsdatum,omitempty"`
	Zivilstand   string `json:"zivilstand,omitempty"` // ledig, verheiratet, geschieden, verwitwet
	Konfession   string `json:"konfession,omitempty"`
	AHVNummer    string `json:"ahvNummer,omitempty"`
}

// Partner holds the spouse's details. Only shown when the marriage gate was
// answered with yes.
type Partner struct {
	Vorname      string `json:"vorname,omitempty"`
	Nachname     string `json:"nachname,omitempty"`
	Geburtsdatum string `json:"geburtsdatum,omitempty"`
	AHVNummer    string `json:"ahvNummer,omitempty"`
}

// Kind is one child entry.
type Kind struct {
	ID           string `json:"id,omitempty"`
	Vorname      string `json:"vorname,omitempty"`
	Geburtsdatum string `json:"geburtsdatum,omitempty"`
	InAusbildung bool   `json:"inAusbildung,omitempty"`
	Finished     bool   `json:"finished,omitempty"`
}

// Job is one employment entry, typically filled from a Lohnausweis.
type Job struct {
	ID          string  `json:"id,omitempty"`
	Arbeitgeber string  `json:"arbeitgeber,omitempty"`
	Pensum      float64 `json:"pensum,omitempty"` // percent
	Nettolohn   float64 `json:"nettolohn,omitempty"`
	Bruttolohn  float64 `json:"bruttolohn,omitempty"`
	Finished    bool    `json:"finished,omitempty"`
}

// Nebenerwerb is secondary self-employment income.
type Nebenerwerb struct {
	Beschreibung string  `json:"beschreibung,omitempty"`
	Einkommen    float64 `json:"einkommen,omitempty"`
}

// Arbeitslosengeld is unemployment benefit income.
type Arbeitslosengeld struct {
	Taggelder float64 `json:"taggelder,omitempty"`
}

// Renten covers AHV/IV and pension fund income.
type Renten struct {
	AHVRente      float64 `json:"ahvRente,omitempty"`
	Pensionskasse float64 `json:"pensionskasse,omitempty"`
	UebrigeRenten float64 `json:"uebrigeRenten,omitempty"`
}

// AlimenteErhalten is alimony received.
type AlimenteErhalten struct {
	Betrag float64 `json:"betrag,omitempty"`
	Von    string  `json:"von,omitempty"`
}

// Bankkonto is one bank account entry.
type Bankkonto struct {
	ID         string  `json:"id,omitempty"`
	Bank       string  `json:"bank,omitempty"`
	IBAN       string  `json:"iban,omitempty"`
	Saldo      float64 `json:"saldo,omitempty"`
	Zinsertrag float64 `json:"zinsertrag,omitempty"`
	Finished   bool    `json:"finished,omitempty"`
}

// Wertschrift is one securities position.
type Wertschrift struct {
	ID          string  `json:"id,omitempty"`
	Bezeichnung string  `json:"bezeichnung,omitempty"`
	Valor       string  `json:"valor,omitempty"`
	Steuerwert  float64 `json:"steuerwert,omitempty"`
	Ertrag      float64 `json:"ertrag,omitempty"`
	Finished    bool    `json:"finished,omitempty"`
}

// Krypto is one crypto holding.
type Krypto struct {
	ID         string  `json:"id,omitempty"`
	Waehrung   string  `json:"waehrung,omitempty"`
	Bestand    float64 `json:"bestand,omitempty"`
	Steuerwert float64 `json:"steuerwert,omitempty"`
	Finished   bool    `json:"finished,omitempty"`
}

// Liegenschaft is one property entry.
type Liegenschaft struct {
	ID            string  `json:"id,omitempty"`
	Adresse       string  `json:"adresse,omitempty"`
	Steuerwert    float64 `json:"steuerwert,omitempty"`
	Eigenmietwert float64 `json:"eigenmietwert,omitempty"`
	Mietertrag    float64 `json:"mietertrag,omitempty"`
	Finished      bool    `json:"finished,omitempty"`
}

// Motorfahrzeug is one vehicle entry.
type Motorfahrzeug struct {
	ID        string  `json:"id,omitempty"`
	Marke     string  `json:"marke,omitempty"`
	Jahrgang  string  `json:"jahrgang,omitempty"`
	Kaufpreis float64 `json:"kaufpreis,omitempty"`
	Finished  bool    `json:"finished,omitempty"`
}

// Schuld is one debt entry (mortgages, loans).
type Schuld struct {
	ID         string  `json:"id,omitempty"`
	Glaeubiger string  `json:"glaeubiger,omitempty"`
	Betrag     float64 `json:"betrag,omitempty"`
	Zinsen     float64 `json:"zinsen,omitempty"`
	Finished   bool    `json:"finished,omitempty"`
}

// Erbschaft is one inheritance or gift received during the tax year.
type Erbschaft struct {
	ID       string  `json:"id,omitempty"`
	Von      string  `json:"von,omitempty"`
	Betrag   float64 `json:"betrag,omitempty"`
	Datum    string  `json:"datum,omitempty"`
	Finished bool    `json:"finished,omitempty"`
}

// Saeule3a is pillar 3a contributions.
type Saeule3a struct {
	Einzahlung float64 `json:"einzahlung,omitempty"`
	Stiftung   string  `json:"stiftung,omitempty"`
}

// Berufsauslagen is work-related expenses.
type Berufsauslagen struct {
	Fahrkosten      float64 `json:"fahrkosten,omitempty"`
	Verpflegung     float64 `json:"verpflegung,omitempty"`
	UebrigeAuslagen float64 `json:"uebrigeAuslagen,omitempty"`
}

// Weiterbildung is further education expenses.
type Weiterbildung struct {
	Bezeichnung string  `json:"bezeichnung,omitempty"`
	Kosten      float64 `json:"kosten,omitempty"`
}

// Spende is one charitable donation entry.
type Spende struct {
	ID           string  `json:"id,omitempty"`
	Organisation string  `json:"organisation,omitempty"`
	Betrag       float64 `json:"betrag,omitempty"`
	Finished     bool    `json:"finished,omitempty"`
}

// Krankheitskosten is out-of-pocket medical expenses.
type Krankheitskosten struct {
	Selbstbehalt float64 `json:"selbstbehalt,omitempty"`
	Zahnarzt     float64 `json:"zahnarzt,omitempty"`
}

// Versicherungspraemien is insurance premium deductions.
type Versicherungspraemien struct {
	Krankenkasse       float64 `json:"krankenkasse,omitempty"`
	Lebensversicherung float64 `json:"lebensversicherung,omitempty"`
}

// AlimenteBezahlt is alimony paid.
type AlimenteBezahlt struct {
	Betrag float64 `json:"betrag,omitempty"`
	An     string  `json:"an,omitempty"`
}

// Kinderbetreuung is third-party childcare costs.
type Kinderbetreuung struct {
	Kosten float64 `json:"kosten,omitempty"`
}

// Bemerkungen is the free-text remarks topic.
type Bemerkungen struct {
	Text string `json:"text,omitempty"`
}

// Item is implemented by all array topic items. The wizard engine marks items
// finished through this interface when an item form is saved.
type Item interface {
	ItemID() string
	WithFinished(v bool) any
}

func (k Kind) ItemID() string                   { return k.ID }
func (k Kind) WithFinished(v bool) any          { k.Finished = v; return k }
func (j Job) ItemID() string                    { return j.ID }
func (j Job) WithFinished(v bool) any           { j.Finished = v; return j }
func (b Bankkonto) ItemID() string              { return b.ID }
func (b Bankkonto) WithFinished(v bool) any     { b.Finished = v; return b }
func (w Wertschrift) ItemID() string            { return w.ID }
func (w Wertschrift) WithFinished(v bool) any   { w.Finished = v; return w }
func (k Krypto) ItemID() string                 { return k.ID }
func (k Krypto) WithFinished(v bool) any        { k.Finished = v; return k }
func (l Liegenschaft) ItemID() string           { return l.ID }
func (l Liegenschaft) WithFinished(v bool) any  { l.Finished = v; return l }
func (m Motorfahrzeug) ItemID() string          { return m.ID }
func (m Motorfahrzeug) WithFinished(v bool) any { m.Finished = v; return m }
func (s Schuld) ItemID() string                 { return s.ID }
func (s Schuld) WithFinished(v bool) any        { s.Finished = v; return s }
func (e Erbschaft) ItemID() string              { return e.ID }
func (e Erbschaft) WithFinished(v bool) any     { e.Finished = v; return e }
func (s Spende) ItemID() string                 { return s.ID }
func (s Spende) WithFinished(v bool) any        { s.Finished = v; return s }
