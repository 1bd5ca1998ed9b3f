package upload

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Amount is a transaction amount exactly as the backend sent it. The backend
// may send a JSON number, a string such as "1,234.00", or nothing.
type Amount struct {
	Raw   string
	Valid bool
}

// NewAmount returns a present amount holding raw.
func NewAmount(raw string) Amount {
	return Amount{Raw: raw, Valid: true}
}

// UnmarshalJSON keeps strings unquoted and any other token verbatim.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = NewAmount(s)
		return nil
	}
	*a = NewAmount(string(data))
	return nil
}

// MarshalJSON writes numeric amounts as JSON numbers and anything else as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(a.Raw, 64); err == nil && json.Valid([]byte(a.Raw)) {
		return []byte(a.Raw), nil
	}
	return json.Marshal(a.Raw)
}

// Transaction is one parsed statement line. Every field is optional.
type Transaction struct {
	TxnDate     *string `json:"txn_date,omitempty"`
	Description *string `json:"description,omitempty"`
	Raw         *string `json:"raw,omitempty"`
	Amount      Amount  `json:"amount"`
	MatchType   *string `json:"match_type,omitempty"`
}

// Result is the backend response for one uploaded statement.
type Result struct {
	ParsedTransactions []Transaction            `json:"parsedTransactions"`
	GroupedByMerchant  map[string][]Transaction `json:"groupedByMerchant,omitempty"`
}

// Empty reports whether r carries no transactions at all.
func (r *Result) Empty() bool {
	return r == nil || (len(r.ParsedTransactions) == 0 && len(r.GroupedByMerchant) == 0)
}

// Merchants returns the merchant names of GroupedByMerchant, sorted.
func (r *Result) Merchants() []string {
	names := make([]string, 0, len(r.GroupedByMerchant))
	for name := range r.GroupedByMerchant {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Date returns the transaction date or "-".
func (t Transaction) Date() string {
	return orDash(t.TxnDate)
}

// Text returns the description, falling back to the raw statement line.
func (t Transaction) Text() string {
	if t.Description != nil {
		return *t.Description
	}
	if t.Raw != nil {
		return *t.Raw
	}
	return ""
}

// AmountText returns the amount as printed by the backend, or "-".
func (t Transaction) AmountText() string {
	if !t.Amount.Valid {
		return "-"
	}
	return t.Amount.Raw
}

// Match returns the match type or "-".
func (t Transaction) Match() string {
	return orDash(t.MatchType)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
