package model

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// ComponentBase carries the fields every catalog item has.
type ComponentBase struct {
	ID           string `json:"id"`
	ProductName  string `json:"productName"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price" binding:"gte=0"` // smallest currency unit
}

// Component is implemented by the nine category types only.
type Component interface {
	Category() Category
	Base() ComponentBase
	isComponent()
}

type CPU struct {
	ComponentBase
	Score  int64  `json:"score"`
	Socket string `json:"socket"`
	TDP    int64  `json:"tdp"`
}

type Motherboard struct {
	ComponentBase
	Socket     string `json:"socket"`
	MemoryType string `json:"memoryType"`
	FormFactor string `json:"formFactor"`
}

type Memory struct {
	ComponentBase
	Type     string `json:"type"`
	Capacity int64  `json:"capacity"` // GB
}

type GraphicsCard struct {
	ComponentBase
	Score  int64 `json:"score"`
	Length int64 `json:"length"` // mm
	TDP    int64 `json:"tdp"`
}

type SSD struct {
	ComponentBase
	Capacity int64 `json:"capacity"` // GB
}

type PCCase struct {
	ComponentBase
	FormFactor   []string `json:"formFactor"`
	MaxGPULength int64    `json:"maxGpuLength"` // mm
}

type PowerSupply struct {
	ComponentBase
	Wattage int64 `json:"wattage"`
}

type CPUCooler struct {
	ComponentBase
	SupportedSockets []string `json:"supportedSockets"`
}

// OS has no manufacturer; ComponentBase omits it when empty.
type OS struct {
	ComponentBase
}

func (CPU) Category() Category          { return CategoryCPU }
func (Motherboard) Category() Category  { return CategoryMotherboard }
func (Memory) Category() Category       { return CategoryMemory }
func (GraphicsCard) Category() Category { return CategoryGraphicsCard }
func (SSD) Category() Category          { return CategorySSD }
func (PCCase) Category() Category       { return CategoryPCCase }
func (PowerSupply) Category() Category  { return CategoryPowerSupply }
func (CPUCooler) Category() Category    { return CategoryCPUCooler }
func (OS) Category() Category           { return CategoryOS }

func (b ComponentBase) Base() ComponentBase { return b }
func (ComponentBase) isComponent()          {}

// NewComponentID returns a fresh id of the form <prefix>-<uuid>.
func NewComponentID(cat Category) string {
	return fmt.Sprintf("%s-%s", cat.IDPrefix(), uuid.NewString())
}

// WithID returns a copy of c carrying the given id.
func WithID(c Component, id string) Component {
	switch v := c.(type) {
	case CPU:
		v.ID = id
		return v
	case Motherboard:
		v.ID = id
		return v
	case Memory:
		v.ID = id
		return v
	case GraphicsCard:
		v.ID = id
		return v
	case SSD:
		v.ID = id
		return v
	case PCCase:
		v.ID = id
		return v
	case PowerSupply:
		v.ID = id
		return v
	case CPUCooler:
		v.ID = id
		return v
	case OS:
		v.ID = id
		return v
	}
	return c
}

// NewComponent returns the zero value of the type that belongs to cat.
func NewComponent(cat Category) (Component, error) {
	switch cat {
	case CategoryCPU:
		return CPU{}, nil
	case CategoryMotherboard:
		return Motherboard{}, nil
	case CategoryMemory:
		return Memory{}, nil
	case CategoryGraphicsCard:
		return GraphicsCard{}, nil
	case CategorySSD:
		return SSD{}, nil
	case CategoryPCCase:
		return PCCase{}, nil
	case CategoryPowerSupply:
		return PowerSupply{}, nil
	case CategoryCPUCooler:
		return CPUCooler{}, nil
	case CategoryOS:
		return OS{}, nil
	}
	return nil, ErrUnknownCategory
}

// DecodeComponent unmarshals data into the type that belongs to cat.
func DecodeComponent(cat Category, data []byte) (Component, error) {
	switch cat {
	case CategoryCPU:
		return decodeAs[CPU](data)
	case CategoryMotherboard:
		return decodeAs[Motherboard](data)
	case CategoryMemory:
		return decodeAs[Memory](data)
	case CategoryGraphicsCard:
		return decodeAs[GraphicsCard](data)
	case CategorySSD:
		return decodeAs[SSD](data)
	case CategoryPCCase:
		return decodeAs[PCCase](data)
	case CategoryPowerSupply:
		return decodeAs[PowerSupply](data)
	case CategoryCPUCooler:
		return decodeAs[CPUCooler](data)
	case CategoryOS:
		return decodeAs[OS](data)
	}
	return nil, ErrUnknownCategory
}

func decodeAs[T Component](data []byte) (Component, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// cloneComponent copies the set-valued fields so the result shares no memory with c.
func cloneComponent[T Component](c T) T {
	switch v := any(c).(type) {
	case PCCase:
		v.FormFactor = slices.Clone(v.FormFactor)
		return any(v).(T)
	case CPUCooler:
		v.SupportedSockets = slices.Clone(v.SupportedSockets)
		return any(v).(T)
	}
	return c
}
