package domain

type AdjustmentKind int

const (
	// AdjustSet replaces the stock level outright (admin stock editor).
	AdjustSet AdjustmentKind = iota
	// AdjustDelta applies a signed change (checkout decrements, admin +/-).
	AdjustDelta
)

type StockAdjustment struct {
	Kind   AdjustmentKind
	Amount int
}

func StockSet(n int) StockAdjustment {
	return StockAdjustment{Kind: AdjustSet, Amount: n}
}

func StockDelta(n int) StockAdjustment {
	return StockAdjustment{Kind: AdjustDelta, Amount: n}
}
