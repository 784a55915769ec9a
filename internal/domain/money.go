package domain

// Money is a monetary amount in minor currency units.
type Money = int64
