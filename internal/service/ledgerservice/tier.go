package ledgerservice

// Tier bands a user's cumulative saved amount. Derived, never persisted.
type Tier int

const (
	TierBeginner Tier = iota + 1
	TierSaver
	TierMaster
	TierZenMaster
)

// Lower bounds, inclusive, in currency units.
const (
	saverFloor     = 50000
	masterFloor    = 150000
	zenMasterFloor = 500000
)

func (t Tier) String() string {
	switch t {
	case TierSaver:
		return "saver"
	case TierMaster:
		return "master"
	case TierZenMaster:
		return "zen-master"
	default:
		return "beginner"
	}
}

func ClassifyTier(totalSaved int) Tier {
	switch {
	case totalSaved >= zenMasterFloor:
		return TierZenMaster
	case totalSaved >= masterFloor:
		return TierMaster
	case totalSaved >= saverFloor:
		return TierSaver
	default:
		return TierBeginner
	}
}
