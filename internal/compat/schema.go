// Package compat defines what is sent to the recommendation model and what it must send back,
// and re-checks a returned build against the hardware compatibility rules.
package compat

import (
	"errors"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
)

// SchemaVersion tags the response contract so a change in shape is visible in logs and payloads.
const SchemaVersion = "pc-build.v1"

// SchemaName is the name passed alongside the JSON schema to the model.
const SchemaName = "pc_build_v1"

const advantageDescription = "이 부품을 선택한 이유와 장점을 50자 내외의 한글로 요약 설명합니다."

var ErrInvalidBudget = errors.New("budget must be positive")

// Request is everything the model sees for one recommendation.
type Request struct {
	Prompt  string
	Budget  int64
	Catalog model.Catalog
}

func (r Request) Validate() error {
	if r.Budget <= 0 {
		return ErrInvalidBudget
	}
	return nil
}

type field struct {
	name   string
	schema map[string]any
}

func str() map[string]any     { return map[string]any{"type": "string"} }
func integer() map[string]any { return map[string]any{"type": "integer"} }
func strArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func baseFields(withManufacturer bool) []field {
	fields := []field{
		{"id", str()},
		{"productName", str()},
		{"name", str()},
		{"price", integer()},
	}
	if withManufacturer {
		fields = append(fields, field{"manufacturer", str()})
	}
	return fields
}

func categoryFields(cat model.Category) []field {
	switch cat {
	case model.CategoryCPU:
		return append(baseFields(true), field{"score", integer()}, field{"socket", str()}, field{"tdp", integer()})
	case model.CategoryMotherboard:
		return append(baseFields(true), field{"socket", str()}, field{"memoryType", str()}, field{"formFactor", str()})
	case model.CategoryMemory:
		return append(baseFields(true), field{"type", str()}, field{"capacity", integer()})
	case model.CategoryGraphicsCard:
		return append(baseFields(true), field{"score", integer()}, field{"length", integer()}, field{"tdp", integer()})
	case model.CategorySSD:
		return append(baseFields(true), field{"capacity", integer()})
	case model.CategoryPCCase:
		return append(baseFields(true), field{"formFactor", strArray()}, field{"maxGpuLength", integer()})
	case model.CategoryPowerSupply:
		return append(baseFields(true), field{"wattage", integer()})
	case model.CategoryCPUCooler:
		return append(baseFields(true), field{"supportedSockets", strArray()})
	case model.CategoryOS:
		return baseFields(false)
	}
	return nil
}

func object(fields []field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props[f.name] = f.schema
		required = append(required, f.name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// ResponseSchema is the strict JSON schema the model output must satisfy.
// Every property is required and no others are allowed.
func ResponseSchema() map[string]any {
	fields := make([]field, 0, len(model.Categories)+3)
	for _, cat := range model.Categories {
		f := append(categoryFields(cat), field{"advantage", map[string]any{
			"type":        "string",
			"description": advantageDescription,
		}})
		fields = append(fields, field{cat.BuildKey(), object(f)})
	}
	fields = append(fields,
		field{"totalPrice", map[string]any{"type": "integer", "description": "모든 부품 가격의 합계"}},
		field{"totalScore", map[string]any{"type": "integer", "description": "CPU 점수와 그래픽카드 점수의 합계"}},
		field{"reasoning", map[string]any{"type": "string", "description": "이 견적을 추천하는 이유에 대한 한글 설명"}},
	)
	return object(fields)
}
