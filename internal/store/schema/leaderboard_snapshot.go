package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CreatorStanding is one ranked creator entry inside a snapshot.
// Amounts are decimal strings; the combined sort key (sponsored + boost)
// is recomputed from them and never stored.
type CreatorStanding struct {
	CreatorID    string `json:"creator_id"`
	SponsoredWei string `json:"sponsored_wei"`
	BoostWei     string `json:"boost_wei"`
}

// BoosterStanding is one ranked booster entry inside a snapshot
type BoosterStanding struct {
	Wallet   string `json:"wallet"`
	BoostWei string `json:"boost_wei"`
}

// LeaderboardSnapshot represents the leaderboard_snapshots table - an
// immutable aggregate produced by one aggregation cycle. Snapshots are only
// ever inserted; consumers read the most recent row.
type LeaderboardSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Creators is the ranked top-N creator list as a JSON array of CreatorStanding
	Creators datatypes.JSON `gorm:"column:creators;not null;type:jsonb"`
	// Boosters is the ranked top-N booster list as a JSON array of BoosterStanding
	Boosters datatypes.JSON `gorm:"column:boosters;not null;type:jsonb"`
	// CreatedAt orders snapshots; the latest one is the visible leaderboard
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index:idx_leaderboard_snapshots_created"`
}

// TableName specifies the table name for the LeaderboardSnapshot model
func (LeaderboardSnapshot) TableName() string {
	return "leaderboard_snapshots"
}
