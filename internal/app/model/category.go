package model

import (
	"errors"
	"strings"
)

// Category identifies one of the nine component kinds of a build.
type Category string

const (
	CategoryCPU          Category = "CPU"
	CategoryMotherboard  Category = "Motherboard"
	CategoryMemory       Category = "Memory"
	CategoryGraphicsCard Category = "GraphicsCard"
	CategorySSD          Category = "SSD"
	CategoryPCCase       Category = "PCCase"
	CategoryPowerSupply  Category = "PowerSupply"
	CategoryCPUCooler    Category = "CPUCooler"
	CategoryOS           Category = "OS"
)

var ErrUnknownCategory = errors.New("unknown component category")

// Categories is the canonical order used for catalog storage and the model contract.
var Categories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryMemory,
	CategoryGraphicsCard,
	CategorySSD,
	CategoryPCCase,
	CategoryPowerSupply,
	CategoryCPUCooler,
	CategoryOS,
}

// DisplayOrder is the order rows appear in on quote and invoice documents.
var DisplayOrder = []Category{
	CategoryCPU,
	CategoryCPUCooler,
	CategoryMemory,
	CategoryMotherboard,
	CategoryGraphicsCard,
	CategorySSD,
	CategoryPCCase,
	CategoryPowerSupply,
	CategoryOS,
}

type categoryMeta struct {
	displayName   string
	collectionKey string
	slotKey       string
	buildKey      string
}

var categoryMetas = map[Category]categoryMeta{
	CategoryCPU:          {"CPU", "CPUS", "cpuId", "cpu"},
	CategoryMotherboard:  {"메인보드", "MOTHERBOARDS", "motherboardId", "motherboard"},
	CategoryMemory:       {"메모리", "MEMORIES", "memoryId", "memory"},
	CategoryGraphicsCard: {"그래픽카드", "GRAPHICS_CARDS", "graphicsCardId", "graphicsCard"},
	CategorySSD:          {"SSD", "SSDS", "ssdId", "ssd"},
	CategoryPCCase:       {"케이스", "CASES", "pcCaseId", "pcCase"},
	CategoryPowerSupply:  {"파워서플라이", "POWER_SUPPLIES", "powerSupplyId", "powerSupply"},
	CategoryCPUCooler:    {"CPU 쿨러", "CPU_COOLERS", "cpuCoolerId", "cpuCooler"},
	CategoryOS:           {"운영체제 (OS)", "OS", "osId", "os"},
}

func (c Category) Valid() bool {
	_, ok := categoryMetas[c]
	return ok
}

// DisplayName returns the Korean label shown to operators.
func (c Category) DisplayName() string {
	return categoryMetas[c].displayName
}

// CollectionKey is the key of this category's array in the persisted catalog.
func (c Category) CollectionKey() string {
	return categoryMetas[c].collectionKey
}

// BundleSlotKey is the JSON field a bundle uses to reference this category.
func (c Category) BundleSlotKey() string {
	return categoryMetas[c].slotKey
}

// BuildKey is the JSON field of this category in a generated build.
func (c Category) BuildKey() string {
	return categoryMetas[c].buildKey
}

// IDPrefix is prepended to generated component ids.
func (c Category) IDPrefix() string {
	return strings.ToLower(string(c))
}

// ParseCategory accepts the category label, its build key or its collection key, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		meta := categoryMetas[c]
		if strings.EqualFold(s, string(c)) ||
			strings.EqualFold(s, meta.buildKey) ||
			strings.EqualFold(s, meta.collectionKey) {
			return c, nil
		}
	}
	switch strings.ToLower(s) {
	case "case", "pc-case", "pc_case":
		return CategoryPCCase, nil
	case "gpu", "graphics-card", "graphics_card":
		return CategoryGraphicsCard, nil
	case "psu", "power-supply", "power_supply":
		return CategoryPowerSupply, nil
	case "cooler", "cpu-cooler", "cpu_cooler":
		return CategoryCPUCooler, nil
	}
	return "", ErrUnknownCategory
}
