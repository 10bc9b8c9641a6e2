package domain

// UserStats are the persisted economy counters of the collector.
type UserStats struct {
	PacksOpened int `json:"packs_opened" msgpack:"packs_opened"`
	ItemsCaught int `json:"items_caught" msgpack:"items_caught"`
	RareCount   int `json:"rare_count" msgpack:"rare_count"`
	Coins       int `json:"coins" msgpack:"coins"`
}

// Achievement is a derived milestone shown on the profile.
type Achievement struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"` // percent, capped at 100
}

// Profile is the read model served by the profile view.
type Profile struct {
	Stats        UserStats     `json:"stats"`
	Level        int           `json:"level"`
	Progress     int           `json:"progress"`
	Achievements []Achievement `json:"achievements"`
	History      []Item        `json:"history"`
}
