package compat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var won = message.NewPrinter(language.Korean)

// FormatWon renders an amount with thousands separators, e.g. 1,150,000.
func FormatWon(amount int64) string {
	return won.Sprintf("%d", amount)
}

// catalogSections lists the prompt heading of each category in canonical order.
var catalogSections = []struct {
	cat     model.Category
	heading string
}{
	{model.CategoryCPU, "CPUs"},
	{model.CategoryMotherboard, "Motherboards"},
	{model.CategoryMemory, "Memory"},
	{model.CategoryGraphicsCard, "Graphics Cards"},
	{model.CategorySSD, "SSDs"},
	{model.CategoryPCCase, "Cases"},
	{model.CategoryPowerSupply, "Power Supplies"},
	{model.CategoryCPUCooler, "CPU Coolers"},
	{model.CategoryOS, "OS"},
}

// SystemPrompt fixes the model's role and output discipline.
const SystemPrompt = "당신은 세계 최고의 PC 조립 전문가입니다. 반드시 주어진 부품 목록과 호환성 규칙만을 근거로 판단하고, 지정된 JSON 형식으로만 응답합니다."

// BuildPrompt renders the user message: requirements, budget, rules and the full catalog snapshot.
func BuildPrompt(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var prompt strings.Builder

	prompt.WriteString("사용자의 요구사항과 예산에 맞춰, 주어진 부품 목록 내에서 최적의 PC 견적을 생성해야 합니다.\n\n")
	fmt.Fprintf(&prompt, "**사용자 요구사항:** %q\n", strings.TrimSpace(req.Prompt))
	fmt.Fprintf(&prompt, "**최대 예산:** %s원\n\n", FormatWon(req.Budget))

	prompt.WriteString("**규칙:**\n")
	prompt.WriteString("1. 반드시 아래 제공된 부품 목록에서만 각 카테고리별로 **하나씩** 부품을 선택해야 합니다. 선택한 부품의 id와 속성은 목록의 값을 그대로 사용합니다.\n")
	prompt.WriteString("2. 모든 부품은 서로 호환되어야 합니다. 아래 호환성 규칙을 반드시 준수하세요.\n")
	prompt.WriteString("3. 총 가격은 사용자의 최대 예산을 초과해서는 안 됩니다. 예산 내에서 최고의 성능을 내는 조합을 찾아야 합니다.\n")
	prompt.WriteString("4. 각 부품을 선택한 이유를 'advantage' 필드에 50자 내외의 한글로 요약하여 포함해야 합니다.\n")
	prompt.WriteString("5. 'totalPrice'는 모든 부품 가격의 합계, 'totalScore'는 CPU 점수와 그래픽카드 점수의 합계입니다.\n")
	prompt.WriteString("6. 최종 결과는 반드시 지정된 JSON 형식으로만 응답해야 합니다. 다른 설명은 추가하지 마세요.\n\n")

	prompt.WriteString("**호환성 규칙:**\n")
	prompt.WriteString("* CPU의 'socket'은 메인보드의 'socket'과 정확히 일치해야 합니다. (예: 'LGA1700' CPU는 'LGA1700' 메인보드에만 장착 가능)\n")
	prompt.WriteString("* 메모리의 'type'은 메인보드의 'memoryType'과 정확히 일치해야 합니다. (예: 'DDR5' 메인보드에는 'DDR5' 메모리만 사용 가능)\n")
	prompt.WriteString("* 메인보드의 'formFactor'는 케이스의 'formFactor' 목록에 포함되어야 합니다.\n")
	prompt.WriteString("* 그래픽카드의 'length'는 케이스의 'maxGpuLength'보다 작거나 같아야 합니다.\n")
	prompt.WriteString("* CPU 쿨러의 'supportedSockets' 목록에는 선택된 CPU의 'socket'이 포함되어야 합니다.\n")
	prompt.WriteString("* 파워서플라이의 'wattage'는 (CPU TDP + 그래픽카드 TDP + 100W)의 1.5배 이상이어야 합니다. (계산식: wattage >= (CPU.tdp + GPU.tdp + 100) * 1.5)\n\n")

	prompt.WriteString("**사용 가능한 부품 목록:**\n")
	for _, section := range catalogSections {
		items := req.Catalog.Components(section.cat)
		if items == nil {
			items = []model.Component{}
		}
		raw, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode %s catalog: %w", section.cat, err)
		}
		fmt.Fprintf(&prompt, "%s: %s\n", section.heading, raw)
	}

	prompt.WriteString("\n이제 위의 규칙과 부품 목록을 바탕으로 사용자 요구사항에 맞는 최적의 PC 견적을 JSON 형식으로 생성해주세요.")

	return prompt.String(), nil
}
