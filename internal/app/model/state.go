package model

import (
	"time"

	"gorm.io/datatypes"
)

// Keys of the independently persisted admin blobs.
const (
	StateKeyComponents      = "adminComponents"
	StateKeyAdditionalItems = "adminAdditionalItems"
	StateKeyBundles         = "adminArizenBuilds"
	StateKeyCommissionRates = "adminCommissionRates"
	StateKeyPassphrase      = "adminPassword"
)

// StateBlob is one key-value row of persisted admin state.
type StateBlob struct {
	Key       string         `gorm:"column:state_key;primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (StateBlob) TableName() string {
	return "state_blobs"
}
