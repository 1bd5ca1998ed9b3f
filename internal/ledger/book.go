package ledger

import (
	"github.com/rs/zerolog"

	"github.com/theirongolddev/pfin/internal/store"
)

// Book owns the ledger for one session. Every mutation is persisted before it
// returns and is visible to the next read. A Book is not safe for concurrent use.
type Book struct {
	kv      store.KV
	catalog []string
	log     zerolog.Logger

	entries Ledger
	nextSub int
	subs    map[int]func(Ledger)
}

// Open loads the persisted ledger and reconciles it with catalog.
func Open(kv store.KV, catalog []string, logger zerolog.Logger) *Book {
	b := &Book{
		kv:      kv,
		catalog: append([]string(nil), catalog...),
		log:     logger,
		subs:    make(map[int]func(Ledger)),
	}

	loaded, err := Load(kv)
	if err != nil {
		b.log.Debug().Err(err).Msg("no usable saved fixed costs, starting empty")
	}
	b.entries = ReconcileSeed(loaded, b.catalog)
	return b
}

// Snapshot returns a copy of the current ledger.
func (b *Book) Snapshot() Ledger {
	return b.entries.Clone()
}

// Entry returns the entry stored under name.
func (b *Book) Entry(name string) (Entry, bool) {
	e, ok := b.entries[name]
	return e, ok
}

// Names returns all entry names, sorted.
func (b *Book) Names() []string {
	return b.entries.Names()
}

// Len returns the number of entries.
func (b *Book) Len() int {
	return len(b.entries)
}

// Totals computes the aggregates for the current ledger.
func (b *Book) Totals() Totals {
	return ComputeTotals(b.entries)
}

// Catalog returns the seed catalog this book reconciles against.
func (b *Book) Catalog() []string {
	return append([]string(nil), b.catalog...)
}

// SetField updates one field of name.
func (b *Book) SetField(name string, field Field, value string) error {
	next, err := SetField(b.entries, name, field, value)
	if err != nil {
		return err
	}
	b.commit(next)
	return nil
}

// ClearEntry resets name to the empty placeholder.
func (b *Book) ClearEntry(name string) {
	b.commit(ClearEntry(b.entries, name))
}

// AddCustom adds an empty entry under name. ErrEmptyName and ErrDuplicateName
// leave the book unchanged.
func (b *Book) AddCustom(name string) error {
	next, err := AddCustom(b.entries, name)
	if err != nil {
		return err
	}
	b.commit(next)
	return nil
}

// ResetAll discards every entry and re-seeds the catalog.
func (b *Book) ResetAll() {
	fresh, err := ResetAll(b.kv, b.catalog)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to save fixed costs")
	}
	b.entries = fresh
	b.notify()
}

// Subscribe registers fn to receive a copy of the ledger after every
// mutation. The returned func removes the subscription.
func (b *Book) Subscribe(fn func(Ledger)) (unsubscribe func()) {
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

func (b *Book) commit(next Ledger) {
	b.entries = next
	if err := Save(b.kv, next); err != nil {
		b.log.Warn().Err(err).Msg("failed to save fixed costs")
	}
	b.notify()
}

func (b *Book) notify() {
	for _, fn := range b.subs {
		fn(b.entries.Clone())
	}
}
