package upload

func str(s string) *string { return &s }

func txn(date, desc, amount, match string) Transaction {
	return Transaction{
		TxnDate:     str(date),
		Description: str(desc),
		Amount:      NewAmount(amount),
		MatchType:   str(match),
	}
}

// MockResult returns the canned response used when no backend is configured
// or the backend cannot be reached.
func MockResult() *Result {
	primeSub := txn("2025-11-01", "Amazon Prime Subscription", "-14.99", "subscription")
	netflix := txn("2025-11-02", "Netflix Monthly", "-15.49", "subscription")
	office := txn("2025-11-03", "Amazon.com - Office Supplies", "-45.32", "shopping")
	grocery := txn("2025-11-04", "Trader Joe's Grocery", "-89.74", "groceries")
	tj := txn("2025-11-07", "Trader Joe's", "-32.15", "groceries")

	return &Result{
		GroupedByMerchant: map[string][]Transaction{
			"Amazon":       {primeSub, office},
			"Netflix":      {netflix},
			"Trader Joe's": {grocery, tj},
		},
		ParsedTransactions: []Transaction{primeSub, netflix, office, grocery, tj},
	}
}
