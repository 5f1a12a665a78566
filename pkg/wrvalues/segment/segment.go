package segment

import "slices"

// Rank buckets of the statistics.
const (
	RankOverall     = "overall"
	RankDiamondPlus = "diamondPlus"
	RankMasterPlus  = "masterPlus"
	RankKing        = "king"
	RankPeak        = "peak"
)

// Lanes of the statistics.
const (
	LaneMid     = "mid"
	LaneTop     = "top"
	LaneAdc     = "adc"
	LaneSupport = "support"
	LaneJungle  = "jungle"
)

// Defaults of the scoped tierlist.
const (
	DefaultRank = RankDiamondPlus
	DefaultLane = LaneTop
)

var Ranks = []string{RankOverall, RankDiamondPlus, RankMasterPlus, RankKing, RankPeak}
var Lanes = []string{LaneMid, LaneTop, LaneAdc, LaneSupport, LaneJungle}

// Numeric codes used by the CN statistics source.
var rankCodes = map[int]string{
	0: RankOverall,
	1: RankDiamondPlus,
	2: RankMasterPlus,
	3: RankKing,
	4: RankPeak,
}

var laneCodes = map[int]string{
	1: LaneMid,
	2: LaneTop,
	3: LaneAdc,
	4: LaneSupport,
	5: LaneJungle,
}

func ValidRank(rank string) bool {
	return slices.Contains(Ranks, rank)
}

func ValidLane(lane string) bool {
	return slices.Contains(Lanes, lane)
}

// RankFromCode converts a CN rank code.
func RankFromCode(code int) (string, bool) {
	rank, ok := rankCodes[code]
	return rank, ok
}

// LaneFromCode converts a CN lane code.
func LaneFromCode(code int) (string, bool) {
	lane, ok := laneCodes[code]
	return lane, ok
}

// Key used to group the bulk tierlist.
func Key(rank, lane string) string {
	return rank + "|" + lane
}
