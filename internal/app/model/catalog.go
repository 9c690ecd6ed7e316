package model

import (
	"errors"
	"fmt"
	"slices"
)

var ErrCategoryMismatch = errors.New("component does not belong to category")

// Catalog holds one typed collection per category. JSON keys match the persisted blob.
type Catalog struct {
	CPUs          []CPU          `json:"CPUS"`
	Motherboards  []Motherboard  `json:"MOTHERBOARDS"`
	Memories      []Memory       `json:"MEMORIES"`
	GraphicsCards []GraphicsCard `json:"GRAPHICS_CARDS"`
	SSDs          []SSD          `json:"SSDS"`
	Cases         []PCCase       `json:"CASES"`
	PowerSupplies []PowerSupply  `json:"POWER_SUPPLIES"`
	CPUCoolers    []CPUCooler    `json:"CPU_COOLERS"`
	OS            []OS           `json:"OS"`
}

// Components lists the collection of cat as the Component interface.
func (c *Catalog) Components(cat Category) []Component {
	switch cat {
	case CategoryCPU:
		return toComponents(c.CPUs)
	case CategoryMotherboard:
		return toComponents(c.Motherboards)
	case CategoryMemory:
		return toComponents(c.Memories)
	case CategoryGraphicsCard:
		return toComponents(c.GraphicsCards)
	case CategorySSD:
		return toComponents(c.SSDs)
	case CategoryPCCase:
		return toComponents(c.Cases)
	case CategoryPowerSupply:
		return toComponents(c.PowerSupplies)
	case CategoryCPUCooler:
		return toComponents(c.CPUCoolers)
	case CategoryOS:
		return toComponents(c.OS)
	}
	return nil
}

// Find looks up a component by category and id.
func (c *Catalog) Find(cat Category, id string) (Component, bool) {
	if id == "" {
		return nil, false
	}
	for _, comp := range c.Components(cat) {
		if comp.Base().ID == id {
			return comp, true
		}
	}
	return nil, false
}

// Update replaces the entry with the same id in the component's own category.
// It reports false and changes nothing when no such entry exists.
func (c *Catalog) Update(comp Component) bool {
	switch v := comp.(type) {
	case CPU:
		return replaceByID(c.CPUs, v)
	case Motherboard:
		return replaceByID(c.Motherboards, v)
	case Memory:
		return replaceByID(c.Memories, v)
	case GraphicsCard:
		return replaceByID(c.GraphicsCards, v)
	case SSD:
		return replaceByID(c.SSDs, v)
	case PCCase:
		return replaceByID(c.Cases, v)
	case PowerSupply:
		return replaceByID(c.PowerSupplies, v)
	case CPUCooler:
		return replaceByID(c.CPUCoolers, v)
	case OS:
		return replaceByID(c.OS, v)
	}
	return false
}

// Add appends comp under a freshly generated id and returns the stored value.
func (c *Catalog) Add(comp Component) (Component, error) {
	if comp == nil {
		return nil, ErrUnknownCategory
	}
	comp = WithID(comp, NewComponentID(comp.Category()))
	switch v := comp.(type) {
	case CPU:
		c.CPUs = append(c.CPUs, v)
	case Motherboard:
		c.Motherboards = append(c.Motherboards, v)
	case Memory:
		c.Memories = append(c.Memories, v)
	case GraphicsCard:
		c.GraphicsCards = append(c.GraphicsCards, v)
	case SSD:
		c.SSDs = append(c.SSDs, v)
	case PCCase:
		c.Cases = append(c.Cases, v)
	case PowerSupply:
		c.PowerSupplies = append(c.PowerSupplies, v)
	case CPUCooler:
		c.CPUCoolers = append(c.CPUCoolers, v)
	case OS:
		c.OS = append(c.OS, v)
	default:
		return nil, ErrUnknownCategory
	}
	return comp, nil
}

// Delete removes the entry with id from cat. Missing ids are a no-op.
func (c *Catalog) Delete(cat Category, id string) bool {
	var ok bool
	switch cat {
	case CategoryCPU:
		c.CPUs, ok = deleteByID(c.CPUs, id)
	case CategoryMotherboard:
		c.Motherboards, ok = deleteByID(c.Motherboards, id)
	case CategoryMemory:
		c.Memories, ok = deleteByID(c.Memories, id)
	case CategoryGraphicsCard:
		c.GraphicsCards, ok = deleteByID(c.GraphicsCards, id)
	case CategorySSD:
		c.SSDs, ok = deleteByID(c.SSDs, id)
	case CategoryPCCase:
		c.Cases, ok = deleteByID(c.Cases, id)
	case CategoryPowerSupply:
		c.PowerSupplies, ok = deleteByID(c.PowerSupplies, id)
	case CategoryCPUCooler:
		c.CPUCoolers, ok = deleteByID(c.CPUCoolers, id)
	case CategoryOS:
		c.OS, ok = deleteByID(c.OS, id)
	}
	return ok
}

// ReplaceCategory swaps the whole collection of cat. Every item must be of cat's type;
// on error the catalog is left untouched. Duplicate ids are accepted as given.
func (c *Catalog) ReplaceCategory(cat Category, items []Component) error {
	var err error
	switch cat {
	case CategoryCPU:
		err = replaceAll(&c.CPUs, cat, items)
	case CategoryMotherboard:
		err = replaceAll(&c.Motherboards, cat, items)
	case CategoryMemory:
		err = replaceAll(&c.Memories, cat, items)
	case CategoryGraphicsCard:
		err = replaceAll(&c.GraphicsCards, cat, items)
	case CategorySSD:
		err = replaceAll(&c.SSDs, cat, items)
	case CategoryPCCase:
		err = replaceAll(&c.Cases, cat, items)
	case CategoryPowerSupply:
		err = replaceAll(&c.PowerSupplies, cat, items)
	case CategoryCPUCooler:
		err = replaceAll(&c.CPUCoolers, cat, items)
	case CategoryOS:
		err = replaceAll(&c.OS, cat, items)
	default:
		err = ErrUnknownCategory
	}
	return err
}

// Count returns the number of components in cat.
func (c *Catalog) Count(cat Category) int {
	return len(c.Components(cat))
}

// Clone returns a deep copy that shares no slices with c.
func (c *Catalog) Clone() Catalog {
	return Catalog{
		CPUs:          cloneAll(c.CPUs),
		Motherboards:  cloneAll(c.Motherboards),
		Memories:      cloneAll(c.Memories),
		GraphicsCards: cloneAll(c.GraphicsCards),
		SSDs:          cloneAll(c.SSDs),
		Cases:         cloneAll(c.Cases),
		PowerSupplies: cloneAll(c.PowerSupplies),
		CPUCoolers:    cloneAll(c.CPUCoolers),
		OS:            cloneAll(c.OS),
	}
}

// Normalize turns nil collections into empty ones so they serialize as [].
func (c *Catalog) Normalize() {
	normalize(&c.CPUs)
	normalize(&c.Motherboards)
	normalize(&c.Memories)
	normalize(&c.GraphicsCards)
	normalize(&c.SSDs)
	normalize(&c.Cases)
	normalize(&c.PowerSupplies)
	normalize(&c.CPUCoolers)
	normalize(&c.OS)
}

func toComponents[T Component](items []T) []Component {
	out := make([]Component, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func replaceByID[T Component](items []T, item T) bool {
	id := item.Base().ID
	for i := range items {
		if items[i].Base().ID == id {
			items[i] = item
			return true
		}
	}
	return false
}

func deleteByID[T Component](items []T, id string) ([]T, bool) {
	idx := slices.IndexFunc(items, func(it T) bool { return it.Base().ID == id })
	if idx < 0 {
		return items, false
	}
	return slices.Delete(items, idx, idx+1), true
}

func replaceAll[T Component](dst *[]T, cat Category, items []Component) error {
	out := make([]T, 0, len(items))
	for i, it := range items {
		v, ok := it.(T)
		if !ok {
			return fmt.Errorf("%w: item %d is not a %s", ErrCategoryMismatch, i, cat)
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}

func cloneAll[T Component](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = cloneComponent(it)
	}
	return out
}

func normalize[T any](items *[]T) {
	if *items == nil {
		*items = []T{}
	}
}
