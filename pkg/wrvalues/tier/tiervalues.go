package tiervalues

// Tier letters, best to worst.
const (
	SPlus = "S+"
	S     = "S"
	A     = "A"
	B     = "B"
	C     = "C"
	D     = "D"
)

// Default tier for rows without a usable strength level.
const DefaultTier = C

// Order is the fixed display order of the tiers.
var Order = []string{SPlus, S, A, B, C, D}

// Lower strength level is a stronger champion.
var strengthTiers = map[int]string{
	0: SPlus,
	1: S,
	2: A,
	3: B,
	4: C,
	5: D,
}

// FromStrength maps a strength level to its tier letter.
// Missing or out of range levels land on the default tier.
func FromStrength(level *int) string {
	if level == nil {
		return DefaultTier
	}

	if tier, ok := strengthTiers[*level]; ok {
		return tier
	}

	return DefaultTier
}

// ValidStrength reports whether the level is inside the known scale.
func ValidStrength(level int) bool {
	_, ok := strengthTiers[level]
	return ok
}

// OrderCopy returns a copy of the order, safe to hand out in responses.
func OrderCopy() []string {
	order := make([]string, len(Order))
	copy(order, Order)
	return order
}
