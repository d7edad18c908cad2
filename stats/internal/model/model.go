package model

import "time"

// ItemStats aggregates booking events of one item.
type ItemStats struct {
	ItemID      int64     `json:"itemId" db:"item_id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Created     int       `json:"created" db:"created"`
	Approved    int       `json:"approved" db:"approved"`
	Rejected    int       `json:"rejected" db:"rejected"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
}

type StatsInfo struct {
	Data []ItemStats `json:"data"`
}

type StatsFilter struct {
	OwnerID *int64
}
