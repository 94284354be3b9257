// Package document defines the tax-return document: a closed set of topics,
// each holding optional data, plus typed lens accessors used by the wizard
// engine to patch single topics without touching their siblings.
//
// The Document is treated as an immutable value. Every write goes through a
// lens which copies the top-level struct and replaces exactly one topic;
// unchanged topics keep their backing storage, so cheap equality checks
// upstream remain valid.
package document

// Topic wraps one addressable subsection of the return.
//
// Start is nil until the user has answered the topic's yes/no gate; once set
// it is a stable boolean. Changing the answer later only affects screen
// visibility going forward, it never clears previously entered data.
// Finished marks single-object topics as confirmed complete; for array topics
// the per-item Finished flag is used instead and the topic-level flag is set
// by the overview's "Weiter".
type Topic[T any] struct {
	Data     T     `json:"data"`
	Start    *bool `json:"start,omitempty"`
	Finished *bool `json:"finished,omitempty"`
}

// Started reports whether the gate was answered with yes.
func (t Topic[T]) Started() bool {
	return t.Start != nil && *t.Start
}

// Answered reports whether the gate was answered at all.
func (t Topic[T]) Answered() bool {
	return t.Start != nil
}

// Done reports whether the topic-level finished flag is set.
func (t Topic[T]) Done() bool {
	return t.Finished != nil && *t.Finished
}

// Document is the full tax return. The set of topics is fixed at build time;
// only topic contents change at runtime.
type Document struct {
	PersonData       Topic[PersonData]            `json:"personData"`
	Verheiratet      Topic[struct{}]              `json:"verheiratet"`
	Partner          Topic[Partner]               `json:"partner"`
	Kinder           Topic[[]Kind]                `json:"kinder"`
	Jobs             Topic[[]Job]                 `json:"jobs"`
	Nebenerwerb      Topic[Nebenerwerb]           `json:"nebenerwerb"`
	Arbeitslosengeld Topic[Arbeitslosengeld]      `json:"arbeitslosengeld"`
	Renten           Topic[Renten]                `json:"renten"`
	AlimenteErhalten Topic[AlimenteErhalten]      `json:"alimenteErhalten"`
	Bankkonten       Topic[[]Bankkonto]           `json:"bankkonten"`
	Wertschriften    Topic[[]Wertschrift]         `json:"wertschriften"`
	Krypto           Topic[[]Krypto]              `json:"krypto"`
	Liegenschaften   Topic[[]Liegenschaft]        `json:"liegenschaften"`
	Motorfahrzeuge   Topic[[]Motorfahrzeug]       `json:"motorfahrzeuge"`
	Schulden         Topic[[]Schuld]              `json:"schulden"`
	Erbschaften      Topic[[]Erbschaft]           `json:"erbschaften"`
	Saeule3a         Topic[Saeule3a]              `json:"saeule3a"`
	Berufsauslagen   Topic[Berufsauslagen]        `json:"berufsauslagen"`
	Weiterbildung    Topic[Weiterbildung]         `json:"weiterbildung"`
	Spenden          Topic[[]Spende]              `json:"spenden"`
	Krankheitskosten Topic[Krankheitskosten]      `json:"krankheitskosten"`
	Versicherungen   Topic[Versicherungspraemien] `json:"versicherungspraemien"`
	AlimenteBezahlt  Topic[AlimenteBezahlt]       `json:"alimenteBezahlt"`
	Kinderbetreuung  Topic[Kinderbetreuung]       `json:"kinderbetreuung"`
	Bemerkungen      Topic[Bemerkungen]           `json:"bemerkungen"`
}

// New returns an empty document with type-correct default data for every
// topic. Array topics start with nil slices; gates start unanswered.
func New() Document {
	return Document{}
}

// boolPtr is the canonical way to set Start/Finished flags.
func boolPtr(v bool) *bool {
	return &v
}
