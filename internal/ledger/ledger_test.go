package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"120", "120", true},
		{"  42.5", "42.5", true},
		{"12abc", "12", true},
		{"-7", "-7", true},
		{"+3", "3", true},
		{".5", "0.5", true},
		{"5.", "5", true},
		{"1e3", "1000", true},
		{"", "0", false},
		{"abc", "0", false},
		{"Infinity", "0", false},
		{"1e400", "0", false},
		{"1e308", "1e308", true},
		{"2e308", "0", false},
		{"1e900000000", "0", false},
		{"-1e900000000", "0", false},
		{"1e-900000000", "0", true},
		{"0e900000000", "0", true},
		{"9223372036854775808", "9223372036854775808", true},
		{"-", "0", false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && !got.Equal(dec(t, tt.want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIsActive(t *testing.T) {
	assert.False(t, Entry{Amount: ""}.IsActive())
	assert.False(t, Entry{Amount: "0"}.IsActive())
	assert.False(t, Entry{Amount: "0.0000001"}.IsActive())
	assert.False(t, Entry{Amount: "n/a"}.IsActive())
	assert.True(t, Entry{Amount: "0.01"}.IsActive())
	assert.True(t, Entry{Amount: "-25"}.IsActive(), "refunds count as active")
}

func TestMonthlyAmount(t *testing.T) {
	assert.True(t, Entry{Amount: "120", Frequency: Quarterly}.MonthlyAmount().Equal(decimal.NewFromInt(40)))
	assert.True(t, Entry{Amount: "1200", Frequency: Yearly}.MonthlyAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, Entry{Amount: "50", Frequency: Monthly}.MonthlyAmount().Equal(decimal.NewFromInt(50)))
	assert.True(t, Entry{Amount: "50", Frequency: "weekly"}.MonthlyAmount().Equal(decimal.NewFromInt(50)),
		"unknown frequencies are treated as monthly")
	assert.True(t, Entry{Amount: "50"}.MonthlyAmount().Equal(decimal.NewFromInt(50)))
	assert.True(t, Entry{Amount: "x", Frequency: Yearly}.MonthlyAmount().IsZero())
}

func TestFrequencyNext(t *testing.T) {
	assert.Equal(t, Quarterly, Monthly.Next())
	assert.Equal(t, Yearly, Quarterly.Next())
	assert.Equal(t, Monthly, Yearly.Next())
	assert.Equal(t, Monthly, Frequency("biweekly").Next())
	assert.Equal(t, "monthly", Frequency("").Label())
}

func TestReconcileSeedPreservesAndFills(t *testing.T) {
	l := Ledger{
		"Rent":   {Amount: "900", Frequency: Monthly, Notes: "flat"},
		"Custom": {Amount: "3", Frequency: Yearly},
	}
	catalog := []string{"Rent", "Water", "Netflix"}

	got := ReconcileSeed(l, catalog)

	for name, e := range l {
		assert.Equal(t, e, got[name], "existing entry %q changed", name)
	}
	assert.Equal(t, Placeholder(), got["Water"])
	assert.Equal(t, Placeholder(), got["Netflix"])
	assert.Len(t, got, 4)
	assert.Len(t, l, 2, "input ledger must not be modified")
}

func TestReconcileSeedIdempotent(t *testing.T) {
	l := Ledger{"Rent": {Amount: "900", Frequency: Monthly}}
	once := ReconcileSeed(l, SeedCatalog())
	twice := ReconcileSeed(once, SeedCatalog())
	assert.Equal(t, once, twice)
}

func TestReconcileSeedNil(t *testing.T) {
	got := ReconcileSeed(nil, []string{"Rent"})
	assert.Equal(t, Ledger{"Rent": Placeholder()}, got)
}

func TestSetField(t *testing.T) {
	l := Ledger{"Rent": Placeholder()}

	next, err := SetField(l, "Rent", FieldAmount, "900")
	require.NoError(t, err)
	assert.Equal(t, "900", next["Rent"].Amount)
	assert.Equal(t, "", l["Rent"].Amount, "SetField must not mutate its input")

	next, err = SetField(next, "Rent", FieldFrequency, "yearly")
	require.NoError(t, err)
	assert.Equal(t, Yearly, next["Rent"].Frequency)

	next, err = SetField(next, "Rent", FieldNotes, "due on 1st")
	require.NoError(t, err)
	assert.Equal(t, Entry{Amount: "900", Frequency: Yearly, Notes: "due on 1st"}, next["Rent"])

	// No validation at write time.
	next, err = SetField(next, "Rent", FieldAmount, "not a number")
	require.NoError(t, err)
	assert.Equal(t, "not a number", next["Rent"].Amount)
	assert.False(t, next["Rent"].IsActive())

	// Unknown names start from the placeholder.
	next, err = SetField(next, "Boat", FieldNotes, "marina")
	require.NoError(t, err)
	assert.Equal(t, Entry{Frequency: Monthly, Notes: "marina"}, next["Boat"])
}

func TestSetFieldUnknownField(t *testing.T) {
	l := Ledger{"Rent": Placeholder()}
	got, err := SetField(l, "Rent", Field("colour"), "red")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, l, got)
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Amount ")
	require.NoError(t, err)
	assert.Equal(t, FieldAmount, f)

	_, err = ParseField("price")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestClearEntry(t *testing.T) {
	l := Ledger{"Rent": {Amount: "900", Frequency: Yearly, Notes: "x"}}
	got := ClearEntry(l, "Rent")
	assert.Equal(t, Placeholder(), got["Rent"])
	assert.Equal(t, "900", l["Rent"].Amount)
}

func TestAddCustom(t *testing.T) {
	l := Ledger{"Rent": {Amount: "900"}}

	got, err := AddCustom(l, "Phone Insurance")
	require.NoError(t, err)
	assert.Equal(t, Placeholder(), got["Phone Insurance"])
	assert.Len(t, got, 2)

	dup, err := AddCustom(got, "Rent")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, got, dup)
	assert.Equal(t, "900", dup["Rent"].Amount)

	empty, err := AddCustom(got, "")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, got, empty)
}

func TestComputeTotals(t *testing.T) {
	l := Ledger{
		"Rent":    {Amount: "100", Frequency: Monthly},
		"Water":   {Amount: "300", Frequency: Quarterly},
		"Unset":   Placeholder(),
		"Garbage": {Amount: "abc", Frequency: Monthly},
	}

	got := ComputeTotals(l)
	assert.True(t, got.TotalMonthly.Equal(decimal.NewFromInt(200)), "TotalMonthly = %s, want 200", got.TotalMonthly)
	assert.InDelta(t, 6.67, got.DailyAverage.InexactFloat64(), 0.005)
	assert.Equal(t, 2, got.ActiveCount)
}

func TestComputeTotalsNormalization(t *testing.T) {
	l := Ledger{
		"A": {Amount: "120", Frequency: Quarterly},
		"B": {Amount: "1200", Frequency: Yearly},
		"C": {Amount: "50", Frequency: Monthly},
	}
	got := ComputeTotals(l)
	assert.True(t, got.TotalMonthly.Equal(decimal.NewFromInt(190)), "TotalMonthly = %s, want 190", got.TotalMonthly)
	assert.Equal(t, 3, got.ActiveCount)
}

func TestComputeTotalsExtremeAmounts(t *testing.T) {
	l := Ledger{
		"Rent":  {Amount: "900", Frequency: Monthly},
		"Huge":  {Amount: "1e900000000", Frequency: Monthly},
		"Over":  {Amount: "1e400", Frequency: Yearly},
		"Tiny":  {Amount: "1e-900000000", Frequency: Quarterly},
		"Wide":  {Amount: "-1e900000000abc", Frequency: Monthly},
		"Large": {Amount: "9223372036854775808", Frequency: Monthly},
	}

	totals := ComputeTotals(l)
	assert.Equal(t, 2, totals.ActiveCount)
	assert.True(t, totals.TotalMonthly.Equal(dec(t, "9223372036854776708")), "total = %s", totals.TotalMonthly)
	assert.False(t, l["Huge"].IsActive())
	assert.True(t, l["Huge"].MonthlyAmount().IsZero())
	assert.False(t, l["Tiny"].IsActive())
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(Fresh(SeedCatalog()))
	assert.True(t, got.TotalMonthly.IsZero())
	assert.True(t, got.DailyAverage.IsZero())
	assert.Equal(t, 0, got.ActiveCount)

	got = ComputeTotals(nil)
	assert.Equal(t, 0, got.ActiveCount)
}

func TestNamesSorted(t *testing.T) {
	l := Ledger{"water": {}, "Rent": {}, "apple Music": {}}
	assert.Equal(t, []string{"apple Music", "Rent", "water"}, l.Names())
}

func TestSeedCatalog(t *testing.T) {
	c := SeedCatalog()
	assert.Len(t, c, 62)

	seen := make(map[string]bool, len(c))
	for _, name := range c {
		assert.False(t, seen[name], "duplicate catalog name %q", name)
		seen[name] = true
	}

	c[0] = "mutated"
	assert.Equal(t, "Rent", SeedCatalog()[0], "SeedCatalog must return a copy")
}
