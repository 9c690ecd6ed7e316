package model

import (
	"fmt"

	"github.com/google/uuid"
)

// AdditionalItem is an accessory or service sold next to a build.
// A nil UpgradePrice means the item is not offered as an upgrade and serializes as null.
type AdditionalItem struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	ProductName     string `json:"productName"`
	Name            string `json:"name"`
	Cost            int64  `json:"cost"`
	AdditionalPrice int64  `json:"additionalPrice"`
	UpgradePrice    *int64 `json:"upgradePrice"`
}

// Bundle is a curated pre-built: one component reference per category.
type Bundle struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	CPUID              string `json:"cpuId"`
	MotherboardID      string `json:"motherboardId"`
	MemoryID           string `json:"memoryId"`
	GraphicsCardID     string `json:"graphicsCardId"`
	SSDID              string `json:"ssdId"`
	PCCaseID           string `json:"pcCaseId"`
	PowerSupplyID      string `json:"powerSupplyId"`
	CPUCoolerID        string `json:"cpuCoolerId"`
	OSID               string `json:"osId"`
	CustomSellingPrice *int64 `json:"customSellingPrice,omitempty"`
}

// ComponentID returns the id referenced in the slot for cat.
func (b Bundle) ComponentID(cat Category) string {
	switch cat {
	case CategoryCPU:
		return b.CPUID
	case CategoryMotherboard:
		return b.MotherboardID
	case CategoryMemory:
		return b.MemoryID
	case CategoryGraphicsCard:
		return b.GraphicsCardID
	case CategorySSD:
		return b.SSDID
	case CategoryPCCase:
		return b.PCCaseID
	case CategoryPowerSupply:
		return b.PowerSupplyID
	case CategoryCPUCooler:
		return b.CPUCoolerID
	case CategoryOS:
		return b.OSID
	}
	return ""
}

func (b *Bundle) SetComponentID(cat Category, id string) {
	switch cat {
	case CategoryCPU:
		b.CPUID = id
	case CategoryMotherboard:
		b.MotherboardID = id
	case CategoryMemory:
		b.MemoryID = id
	case CategoryGraphicsCard:
		b.GraphicsCardID = id
	case CategorySSD:
		b.SSDID = id
	case CategoryPCCase:
		b.PCCaseID = id
	case CategoryPowerSupply:
		b.PowerSupplyID = id
	case CategoryCPUCooler:
		b.CPUCoolerID = id
	case CategoryOS:
		b.OSID = id
	}
}

func NewAdditionalItemID() string {
	return fmt.Sprintf("add-%s", uuid.NewString())
}

func NewBundleID() string {
	return fmt.Sprintf("arizen-%s", uuid.NewString())
}

// Int64Ptr is a helper for optional price fields.
func Int64Ptr(v int64) *int64 {
	return &v
}
