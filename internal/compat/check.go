package compat

import (
	"fmt"
	"slices"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
)

// Rule names a compatibility constraint.
type Rule string

const (
	RuleCatalogMembership Rule = "catalog_membership"
	RuleSocketMatch       Rule = "cpu_motherboard_socket"
	RuleMemoryType        Rule = "memory_type"
	RuleFormFactor        Rule = "case_form_factor"
	RuleGPULength         Rule = "gpu_length"
	RuleCoolerSocket      Rule = "cooler_socket"
	RulePowerHeadroom     Rule = "power_headroom"
	RuleBudget            Rule = "budget"
	RuleTotalPrice        Rule = "total_price"
	RuleTotalScore        Rule = "total_score"
)

type Violation struct {
	Rule     Rule           `json:"rule"`
	Category model.Category `json:"category,omitempty"`
	Message  string         `json:"message"`
}

// Report is the result of re-checking a build. It never blocks delivery of the build.
type Report struct {
	SchemaVersion string      `json:"schemaVersion"`
	OK            bool        `json:"ok"`
	Violations    []Violation `json:"violations"`
	CatalogPrice  int64       `json:"catalogPrice"`
	CatalogScore  int64       `json:"catalogScore"`
}

// resolved holds the catalog's own record of each selection, falling back to what the model echoed.
type resolved struct {
	cpu         model.CPU
	motherboard model.Motherboard
	memory      model.Memory
	gpu         model.GraphicsCard
	pcCase      model.PCCase
	psu         model.PowerSupply
	cooler      model.CPUCooler
	price       int64
}

// Check verifies a build against the catalog snapshot and budget.
func Check(build *model.Build, catalog *model.Catalog, budget int64) Report {
	report := Report{SchemaVersion: SchemaVersion, Violations: []Violation{}}
	add := func(rule Rule, cat model.Category, format string, args ...any) {
		report.Violations = append(report.Violations, Violation{Rule: rule, Category: cat, Message: fmt.Sprintf(format, args...)})
	}

	r := resolved{
		cpu:         build.CPU.CPU,
		motherboard: build.Motherboard.Motherboard,
		memory:      build.Memory.Memory,
		gpu:         build.GraphicsCard.GraphicsCard,
		pcCase:      build.PCCase.PCCase,
		psu:         build.PowerSupply.PowerSupply,
		cooler:      build.CPUCooler.CPUCooler,
	}

	// 1. one item per category, taken from the snapshot
	for _, cat := range model.Categories {
		selected, _ := build.Selection(cat)
		id := selected.Base().ID
		comp, ok := catalog.Find(cat, id)
		if !ok {
			add(RuleCatalogMembership, cat, "%s: 부품 목록에 없는 id %q", cat.DisplayName(), id)
			r.price += selected.Base().Price
			continue
		}
		r.price += comp.Base().Price
		switch v := comp.(type) {
		case model.CPU:
			r.cpu = v
		case model.Motherboard:
			r.motherboard = v
		case model.Memory:
			r.memory = v
		case model.GraphicsCard:
			r.gpu = v
		case model.PCCase:
			r.pcCase = v
		case model.PowerSupply:
			r.psu = v
		case model.CPUCooler:
			r.cooler = v
		}
	}

	// 2. CPU socket matches motherboard socket
	if r.cpu.Socket != r.motherboard.Socket {
		add(RuleSocketMatch, model.CategoryMotherboard, "CPU 소켓 %s와 메인보드 소켓 %s가 일치하지 않습니다", r.cpu.Socket, r.motherboard.Socket)
	}
	// 3. memory type matches motherboard memory type
	if r.memory.Type != r.motherboard.MemoryType {
		add(RuleMemoryType, model.CategoryMemory, "메모리 규격 %s와 메인보드 지원 규격 %s가 일치하지 않습니다", r.memory.Type, r.motherboard.MemoryType)
	}
	// 4. motherboard form factor is accepted by the case
	if !slices.Contains(r.pcCase.FormFactor, r.motherboard.FormFactor) {
		add(RuleFormFactor, model.CategoryPCCase, "케이스가 메인보드 폼팩터 %s를 지원하지 않습니다", r.motherboard.FormFactor)
	}
	// 5. graphics card fits the case
	if r.gpu.Length > r.pcCase.MaxGPULength {
		add(RuleGPULength, model.CategoryGraphicsCard, "그래픽카드 길이 %dmm가 케이스 허용 길이 %dmm를 초과합니다", r.gpu.Length, r.pcCase.MaxGPULength)
	}
	// 6. cooler supports the CPU socket
	if !slices.Contains(r.cooler.SupportedSockets, r.cpu.Socket) {
		add(RuleCoolerSocket, model.CategoryCPUCooler, "CPU 쿨러가 소켓 %s를 지원하지 않습니다", r.cpu.Socket)
	}
	// 7. wattage >= (cpu.tdp + gpu.tdp + 100) * 1.5, kept in integers
	if required := (r.cpu.TDP + r.gpu.TDP + 100) * 3; r.psu.Wattage*2 < required {
		add(RulePowerHeadroom, model.CategoryPowerSupply, "파워 용량 %dW가 권장 용량 %sW보다 부족합니다", r.psu.Wattage, halves(required))
	}
	// 8. total within budget
	if r.price > budget {
		add(RuleBudget, "", "총 가격 %s원이 예산 %s원을 초과합니다", FormatWon(r.price), FormatWon(budget))
	}

	report.CatalogPrice = r.price
	report.CatalogScore = r.cpu.Score + r.gpu.Score
	if build.TotalPrice != report.CatalogPrice {
		add(RuleTotalPrice, "", "보고된 총 가격 %s원과 부품 가격 합계 %s원이 다릅니다", FormatWon(build.TotalPrice), FormatWon(report.CatalogPrice))
	}
	if build.TotalScore != report.CatalogScore {
		add(RuleTotalScore, "", "보고된 총 점수 %d와 CPU·그래픽카드 점수 합계 %d가 다릅니다", build.TotalScore, report.CatalogScore)
	}

	report.OK = len(report.Violations) == 0
	return report
}

// halves renders n/2 with at most one decimal place.
func halves(n int64) string {
	if n%2 == 0 {
		return fmt.Sprintf("%d", n/2)
	}
	return fmt.Sprintf("%d.5", n/2)
}
