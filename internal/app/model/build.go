package model

// Selected* wrap a catalog item with the model's justification for picking it.

type SelectedCPU struct {
	CPU
	Advantage string `json:"advantage"`
}

type SelectedMotherboard struct {
	Motherboard
	Advantage string `json:"advantage"`
}

type SelectedMemory struct {
	Memory
	Advantage string `json:"advantage"`
}

type SelectedGraphicsCard struct {
	GraphicsCard
	Advantage string `json:"advantage"`
}

type SelectedSSD struct {
	SSD
	Advantage string `json:"advantage"`
}

type SelectedPCCase struct {
	PCCase
	Advantage string `json:"advantage"`
}

type SelectedPowerSupply struct {
	PowerSupply
	Advantage string `json:"advantage"`
}

type SelectedCPUCooler struct {
	CPUCooler
	Advantage string `json:"advantage"`
}

type SelectedOS struct {
	OS
	Advantage string `json:"advantage"`
}

// Build is a generated recommendation. It is returned to the caller and never stored.
type Build struct {
	CPU          SelectedCPU          `json:"cpu"`
	Motherboard  SelectedMotherboard  `json:"motherboard"`
	Memory       SelectedMemory       `json:"memory"`
	GraphicsCard SelectedGraphicsCard `json:"graphicsCard"`
	SSD          SelectedSSD          `json:"ssd"`
	PCCase       SelectedPCCase       `json:"pcCase"`
	PowerSupply  SelectedPowerSupply  `json:"powerSupply"`
	CPUCooler    SelectedCPUCooler    `json:"cpuCooler"`
	OS           SelectedOS           `json:"os"`
	TotalPrice   int64                `json:"totalPrice"`
	TotalScore   int64                `json:"totalScore"`
	Reasoning    string               `json:"reasoning"`
}

// Selection returns the chosen component of cat and its advantage text.
func (b *Build) Selection(cat Category) (Component, string) {
	switch cat {
	case CategoryCPU:
		return b.CPU.CPU, b.CPU.Advantage
	case CategoryMotherboard:
		return b.Motherboard.Motherboard, b.Motherboard.Advantage
	case CategoryMemory:
		return b.Memory.Memory, b.Memory.Advantage
	case CategoryGraphicsCard:
		return b.GraphicsCard.GraphicsCard, b.GraphicsCard.Advantage
	case CategorySSD:
		return b.SSD.SSD, b.SSD.Advantage
	case CategoryPCCase:
		return b.PCCase.PCCase, b.PCCase.Advantage
	case CategoryPowerSupply:
		return b.PowerSupply.PowerSupply, b.PowerSupply.Advantage
	case CategoryCPUCooler:
		return b.CPUCooler.CPUCooler, b.CPUCooler.Advantage
	case CategoryOS:
		return b.OS.OS, b.OS.Advantage
	}
	return nil, ""
}

// SumPrices adds up the prices of the nine selections.
func (b *Build) SumPrices() int64 {
	var total int64
	for _, cat := range Categories {
		comp, _ := b.Selection(cat)
		total += comp.Base().Price
	}
	return total
}

// SumScores is CPU score plus graphics card score.
func (b *Build) SumScores() int64 {
	return b.CPU.Score + b.GraphicsCard.Score
}
