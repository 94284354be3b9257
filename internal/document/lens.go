package document

import "github.com/rs/xid"

// Access is the untyped view of a topic lens used by the wizard engine and
// the screen registry. The closed set of implementations lives in this file;
// paths are fixed at build time, so setters cannot fail.
type Access interface {
	Key() string
	DataAny(Document) any
	SetDataAny(Document, any) Document
	Start(Document) *bool
	SetStart(Document, bool) Document
	Finished(Document) *bool
	SetFinished(Document, bool) Document
}

// ArrayAccess extends Access with index-based item operations for
// array-backed topics. All mutating operations copy the slice, never mutate
// it in place.
type ArrayAccess interface {
	Access
	Len(Document) int
	At(Document, int) (any, bool)
	SetAt(Document, int, any) Document
	Append(Document, any) Document
	Remove(Document, int) Document
	NewItem() any
}

// Lens is a typed get/set pair over one topic of the Document. Set replaces
// the topic on a copy of the Document; sibling topics are untouched.
type Lens[T any] struct {
	key string
	get func(Document) Topic[T]
	set func(Document, Topic[T]) Document
}

// Key returns the topic key.
func (l Lens[T]) Key() string { return l.key }

// Get returns the topic.
func (l Lens[T]) Get(d Document) Topic[T] { return l.get(d) }

// Data returns the topic's data.
func (l Lens[T]) Data(d Document) T { return l.get(d).Data }

// SetData returns a new Document with the topic's data replaced.
func (l Lens[T]) SetData(d Document, v T) Document {
	t := l.get(d)
	t.Data = v
	return l.set(d, t)
}

// Start returns the gate answer, nil if unanswered.
func (l Lens[T]) Start(d Document) *bool { return l.get(d).Start }

// SetStart returns a new Document with the gate answer set.
func (l Lens[T]) SetStart(d Document, v bool) Document {
	t := l.get(d)
	t.Start = boolPtr(v)
	return l.set(d, t)
}

// Finished returns the topic-level finished flag, nil if never set.
func (l Lens[T]) Finished(d Document) *bool { return l.get(d).Finished }

// SetFinished returns a new Document with the topic-level finished flag set.
func (l Lens[T]) SetFinished(d Document, v bool) Document {
	t := l.get(d)
	t.Finished = boolPtr(v)
	return l.set(d, t)
}

// DataAny implements Access.
func (l Lens[T]) DataAny(d Document) any { return l.get(d).Data }

// SetDataAny implements Access. The value must be of the lens's data type;
// anything else is a programming error in the registry.
func (l Lens[T]) SetDataAny(d Document, v any) Document {
	return l.SetData(d, v.(T))
}

// ArrayLens wraps a slice-typed lens with item-level operations and a
// default-item factory.
type ArrayLens[T any] struct {
	Lens[[]T]
	newItem func() T
}

// NewArrayLens builds an ArrayLens from a slice lens and an item factory.
func NewArrayLens[T any](l Lens[[]T], newItem func() T) ArrayLens[T] {
	return ArrayLens[T]{Lens: l, newItem: newItem}
}

// Len returns the number of items.
func (l ArrayLens[T]) Len(d Document) int { return len(l.Data(d)) }

// At returns the item at index, or false when out of bounds.
func (l ArrayLens[T]) At(d Document, i int) (any, bool) {
	items := l.Data(d)
	if i < 0 || i >= len(items) {
		return nil, false
	}
	return items[i], true
}

// SetAt returns a new Document with the item at index replaced. The slice is
// copied so earlier Document values stay unchanged.
func (l ArrayLens[T]) SetAt(d Document, i int, v any) Document {
	items := l.Data(d)
	next := make([]T, len(items))
	copy(next, items)
	next[i] = v.(T)
	return l.SetData(d, next)
}

// Append returns a new Document with the item appended.
func (l ArrayLens[T]) Append(d Document, v any) Document {
	items := l.Data(d)
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	next = append(next, v.(T))
	return l.SetData(d, next)
}

// Remove returns a new Document with the item at index dropped. Out-of-bounds
// indices are a no-op.
func (l ArrayLens[T]) Remove(d Document, i int) Document {
	items := l.Data(d)
	if i < 0 || i >= len(items) {
		return d
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	return l.SetData(d, next)
}

// NewItem returns a fresh default item with a new ID.
func (l ArrayLens[T]) NewItem() any { return l.newItem() }

// Typed lenses for every topic. These are the only paths into the Document;
// the registry and engine never reach into topic fields directly.
var (
	PersonDataLens = Lens[PersonData]{
		key: "personData",
		get: func(d Document) Topic[PersonData] { return d.PersonData },
		set: func(d Document, t Topic[PersonData]) Document { d.PersonData = t; return d },
	}
	VerheiratetLens = Lens[struct{}]{
		key: "verheiratet",
		get: func(d Document) Topic[struct{}] { return d.Verheiratet },
		set: func(d Document, t Topic[struct{}]) Document { d.Verheiratet = t; return d },
	}
	PartnerLens = Lens[Partner]{
		key: "partner",
		get: func(d Document) Topic[Partner] { return d.Partner },
		set: func(d Document, t Topic[Partner]) Document { d.Partner = t; return d },
	}
	KinderLens = NewArrayLens(Lens[[]Kind]{
		key: "kinder",
		get: func(d Document) Topic[[]Kind] { return d.Kinder },
		set: func(d Document, t Topic[[]Kind]) Document { d.Kinder = t; return d },
	}, func() Kind { return Kind{ID: xid.New().String()} })
	JobsLens = NewArrayLens(Lens[[]Job]{
		key: "jobs",
		get: func(d Document) Topic[[]Job] { return d.Jobs },
		set: func(d Document, t Topic[[]Job]) Document { d.Jobs = t; return d },
	}, func() Job { return Job{ID: xid.New().String()} })
	NebenerwerbLens = Lens[Nebenerwerb]{
		key: "nebenerwerb",
		get: func(d Document) Topic[Nebenerwerb] { return d.Nebenerwerb },
		set: func(d Document, t Topic[Nebenerwerb]) Document { d.Nebenerwerb = t; return d },
	}
	ArbeitslosengeldLens = Lens[Arbeitslosengeld]{
		key: "arbeitslosengeld",
		get: func(d Document) Topic[Arbeitslosengeld] { return d.Arbeitslosengeld },
		set: func(d Document, t Topic[Arbeitslosengeld]) Document { d.Arbeitslosengeld = t; return d },
	}
	RentenLens = Lens[Renten]{
		key: "renten",
		get: func(d Document) Topic[Renten] { return d.Renten },
		set: func(d Document, t Topic[Renten]) Document { d.Renten = t; return d },
	}
	AlimenteErhaltenLens = Lens[AlimenteErhalten]{
		key: "alimenteErhalten",
		get: func(d Document) Topic[AlimenteErhalten] { return d.AlimenteErhalten },
		set: func(d Document, t Topic[AlimenteErhalten]) Document { d.AlimenteErhalten = t; return d },
	}
	BankkontenLens = NewArrayLens(Lens[[]Bankkonto]{
		key: "bankkonten",
		get: func(d Document) Topic[[]Bankkonto] { return d.Bankkonten },
		set: func(d Document, t Topic[[]Bankkonto]) Document { d.Bankkonten = t; return d },
	}, func() Bankkonto { return Bankkonto{ID: xid.New().String()} })
	WertschriftenLens = NewArrayLens(Lens[[]Wertschrift]{
		key: "wertschriften",
		get: func(d Document) Topic[[]Wertschrift] { return d.Wertschriften },
		set: func(d Document, t Topic[[]Wertschrift]) Document { d.Wertschriften = t; return d },
	}, func() Wertschrift { return Wertschrift{ID: xid.New().String()} })
	KryptoLens = NewArrayLens(Lens[[]Krypto]{
		key: "krypto",
		get: func(d Document) Topic[[]Krypto] { return d.Krypto },
		set: func(d Document, t Topic[[]Krypto]) Document { d.Krypto = t; return d },
	}, func() Krypto { return Krypto{ID: xid.New().String()} })
	LiegenschaftenLens = NewArrayLens(Lens[[]Liegenschaft]{
		key: "liegenschaften",
		get: func(d Document) Topic[[]Liegenschaft] { return d.Liegenschaften },
		set: func(d Document, t Topic[[]Liegenschaft]) Document { d.Liegenschaften = t; return d },
	}, func() Liegenschaft { return Liegenschaft{ID: xid.New().String()} })
	MotorfahrzeugeLens = NewArrayLens(Lens[[]Motorfahrzeug]{
		key: "motorfahrzeuge",
		get: func(d Document) Topic[[]Motorfahrzeug] { return d.Motorfahrzeuge },
		set: func(d Document, t Topic[[]Motorfahrzeug]) Document { d.Motorfahrzeuge = t; return d },
	}, func() Motorfahrzeug { return Motorfahrzeug{ID: xid.New().String()} })
	SchuldenLens = NewArrayLens(Lens[[]Schuld]{
		key: "schulden",
		get: func(d Document) Topic[[]Schuld] { return d.Schulden },
		set: func(d Document, t Topic[[]Schuld]) Document { d.Schulden = t; return d },
	}, func() Schuld { return Schuld{ID: xid.New().String()} })
	ErbschaftenLens = NewArrayLens(Lens[[]Erbschaft]{
		key: "erbschaften",
		get: func(d Document) Topic[[]Erbschaft] { return d.Erbschaften },
		set: func(d Document, t Topic[[]Erbschaft]) Document { d.Erbschaften = t; return d },
	}, func() Erbschaft { return Erbschaft{ID: xid.New().String()} })
	Saeule3aLens = Lens[Saeule3a]{
		key: "saeule3a",
		get: func(d Document) Topic[Saeule3a] { return d.Saeule3a },
		set: func(d Document, t Topic[Saeule3a]) Document { d.Saeule3a = t; return d },
	}
	BerufsauslagenLens = Lens[Berufsauslagen]{
		key: "berufsauslagen",
		get: func(d Document) Topic[Berufsauslagen] { return d.Berufsauslagen },
		set: func(d Document, t Topic[Berufsauslagen]) Document { d.Berufsauslagen = t; return d },
	}
	WeiterbildungLens = Lens[Weiterbildung]{
		key: "weiterbildung",
		get: func(d Document) Topic[Weiterbildung] { return d.Weiterbildung },
		set: func(d Document, t Topic[Weiterbildung]) Document { d.Weiterbildung = t; return d },
	}
	SpendenLens = NewArrayLens(Lens[[]Spende]{
		key: "spenden",
		get: func(d Document) Topic[[]Spende] { return d.Spenden },
		set: func(d Document, t Topic[[]Spende]) Document { d.Spenden = t; return d },
	}, func() Spende { return Spende{ID: xid.New().String()} })
	KrankheitskostenLens = Lens[Krankheitskosten]{
		key: "krankheitskosten",
		get: func(d Document) Topic[Krankheitskosten] { return d.Krankheitskosten },
		set: func(d Document, t Topic[Krankheitskosten]) Document { d.Krankheitskosten = t; return d },
	}
	VersicherungenLens = Lens[Versicherungspraemien]{
		key: "versicherungspraemien",
		get: func(d Document) Topic[Versicherungspraemien] { return d.Versicherungen },
		set: func(d Document, t Topic[Versicherungspraemien]) Document { d.Versicherungen = t; return d },
	}
	AlimenteBezahltLens = Lens[AlimenteBezahlt]{
		key: "alimenteBezahlt",
		get: func(d Document) Topic[AlimenteBezahlt] { return d.AlimenteBezahlt },
		set: func(d Document, t Topic[AlimenteBezahlt]) Document { d.AlimenteBezahlt = t; return d },
	}
	KinderbetreuungLens = Lens[Kinderbetreuung]{
		key: "kinderbetreuung",
		get: func(d Document) Topic[Kinderbetreuung] { return d.Kinderbetreuung },
		set: func(d Document, t Topic[Kinderbetreuung]) Document { d.Kinderbetreuung = t; return d },
	}
	BemerkungenLens = Lens[Bemerkungen]{
		key: "bemerkungen",
		get: func(d Document) Topic[Bemerkungen] { return d.Bemerkungen },
		set: func(d Document, t Topic[Bemerkungen]) Document { d.Bemerkungen = t; return d },
	}
)

// All lists every topic accessor, in document order. Used by the tool surface
// to report per-topic status.
var All = []Access{
	PersonDataLens,
	VerheiratetLens,
	PartnerLens,
	KinderLens,
	JobsLens,
	NebenerwerbLens,
	ArbeitslosengeldLens,
	RentenLens,
	AlimenteErhaltenLens,
	BankkontenLens,
	WertschriftenLens,
	KryptoLens,
	LiegenschaftenLens,
	MotorfahrzeugeLens,
	SchuldenLens,
	ErbschaftenLens,
	Saeule3aLens,
	BerufsauslagenLens,
	WeiterbildungLens,
	SpendenLens,
	KrankheitskostenLens,
	VersicherungenLens,
	AlimenteBezahltLens,
	KinderbetreuungLens,
	BemerkungenLens,
}
