package models

// RideKind selects the fare variant of a ride. The zero value is the base kind.
type RideKind string

const (
	RideKindBase     RideKind = ""
	RideKindStandard RideKind = "standard"
	RideKindPremium  RideKind = "premium"
)

func (k RideKind) String() string {
	if k == RideKindBase {
		return "base"
	}
	return string(k)
}

// Tariff is a flat base fee plus a per-mile rate.
type Tariff struct {
	Kind    RideKind `json:"kind"`
	BaseFee float64  `json:"base_fee"`
	PerMile float64  `json:"per_mile"`
}

var tariffs = map[RideKind]Tariff{
	RideKindBase:     {Kind: RideKindBase, BaseFee: 2.0, PerMile: 1.5},
	RideKindStandard: {Kind: RideKindStandard, BaseFee: 2.0, PerMile: 1.5},
	RideKindPremium:  {Kind: RideKindPremium, BaseFee: 5.0, PerMile: 3.0},
}

// TariffFor returns the tariff of kind, or the base tariff for unknown kinds.
func TariffFor(kind RideKind) Tariff {
	if t, ok := tariffs[kind]; ok {
		return t
	}
	return tariffs[RideKindBase]
}

func (t Tariff) Fare(distance float64) float64 {
	return t.BaseFee + t.PerMile*distance
}

// ParseRideKind maps a stored kind name back to a RideKind.
func ParseRideKind(s string) RideKind {
	switch s {
	case string(RideKindStandard):
		return RideKindStandard
	case string(RideKindPremium):
		return RideKindPremium
	default:
		return RideKindBase
	}
}
