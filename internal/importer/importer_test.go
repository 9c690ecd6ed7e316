package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mustCSV(t *testing.T, text string) *Table {
	t.Helper()
	table, err := ReadCSV(strings.NewReader(text))
	require.NoError(t, err)
	return table
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{"cpus.csv", FormatCSV, false},
		{"CPUS.CSV", FormatCSV, false},
		{"catalog.xlsx", FormatXLSX, false},
		{"catalog.xls", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := DetectFormat(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"489000", 489000},
		{" 120 ", 120},
		{"1,234,000", 1234000},
		{"99.5", 100},
		{"-0.5", -1},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e20", 0},
		{"-1e20", 0},
		{"9223372036854775807", 0},
		{"-500", -500},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseSet(t *testing.T) {
	assert.Equal(t, []string{"ATX", "M-ATX", "M-ITX"}, ParseSet("ATX; M-ATX ;M-ITX"))
	assert.Equal(t, []string{"AM5"}, ParseSet("AM5;;"))
	assert.Equal(t, []string{}, ParseSet(""))
}

func TestReadCSV_HeaderAnyOrderAndBlankLines(t *testing.T) {
	table := mustCSV(t, "\ufeffprice,name,id\n\n1000,A,x-1\n  \n2000,B\n")

	assert.Equal(t, []string{"price", "name", "id"}, table.Headers)
	require.Len(t, table.Rows, 2)

	rec := table.Record(1)
	assert.Equal(t, "2000", rec["price"])
	assert.Equal(t, "B", rec["name"])
	assert.Equal(t, "", rec["id"])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestComponents_CPU(t *testing.T) {
	table := mustCSV(t, "id,productName,manufacturer,name,price,score,socket,tdp\n"+
		"cpu-10,AMD 라이젠9 7950X3D,AMD,Ryzen 9 7950X3D,829000,97,AM5,120\n"+
		",인텔 i3-14100F,Intel,Core i3-14100F,abc,40,LGA1700,\n")

	comps, err := Components(model.CategoryCPU, table)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	first := comps[0].(model.CPU)
	assert.Equal(t, "cpu-10", first.ID)
	assert.Equal(t, int64(829000), first.Price)
	assert.Equal(t, int64(97), first.Score)
	assert.Equal(t, "AM5", first.Socket)
	assert.Equal(t, int64(120), first.TDP)

	second := comps[1].(model.CPU)
	assert.Equal(t, "cpu-import-2", second.ID)
	assert.Zero(t, second.Price)
	assert.Zero(t, second.TDP)
	assert.Equal(t, "Intel", second.Manufacturer)
}

func TestComponents_SetFieldsByCategory(t *testing.T) {
	cases := mustCSV(t, "id,productName,name,price,formFactor,maxGpuLength\n"+
		"pccase-9,케이스,Case,59000,ATX;M-ATX,380\n")
	comps, err := Components(model.CategoryPCCase, cases)
	require.NoError(t, err)
	pc := comps[0].(model.PCCase)
	assert.Equal(t, []string{"ATX", "M-ATX"}, pc.FormFactor)
	assert.Equal(t, int64(380), pc.MaxGPULength)

	boards := mustCSV(t, "id,name,price,socket,memoryType,formFactor\n"+
		"motherboard-9,B650 보드,150000,AM5,DDR5,M-ATX\n")
	comps, err = Components(model.CategoryMotherboard, boards)
	require.NoError(t, err)
	mb := comps[0].(model.Motherboard)
	assert.Equal(t, "M-ATX", mb.FormFactor)
	assert.Equal(t, "DDR5", mb.MemoryType)

	coolers := mustCSV(t, "name,price,supportedSockets\nAK620,69000,AM5; LGA1700\n")
	comps, err = Components(model.CategoryCPUCooler, coolers)
	require.NoError(t, err)
	cooler := comps[0].(model.CPUCooler)
	assert.Equal(t, []string{"AM5", "LGA1700"}, cooler.SupportedSockets)
	assert.Equal(t, "cpucooler-import-1", cooler.ID)
}

func TestComponents_OutOfRangePriceBecomesZero(t *testing.T) {
	comps, err := Components(model.CategoryCPU, mustCSV(t, "id,name,price\ncpu-x,X,1e20\n"))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Zero(t, comps[0].Base().Price)
}

func TestComponents_RejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"negative price", "id,name,price\ncpu-x,X,489000\ncpu-y,Y,-500\n"},
		{"blank name", "id,name,price\ncpu-x,,489000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps, err := Components(model.CategoryCPU, mustCSV(t, tt.text))
			assert.Error(t, err)
			assert.Nil(t, comps)
		})
	}
}

func TestComponents_ReimportIsIdempotent(t *testing.T) {
	text := "productName,name,price\n윈도우 11 홈,Win11 Home,189000\nFreeDOS,FreeDOS,0\n"

	first, err := Components(model.CategoryOS, mustCSV(t, text))
	require.NoError(t, err)
	second, err := Components(model.CategoryOS, mustCSV(t, text))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "os-import-1", first[0].Base().ID)
}

func TestComponents_HeaderOnlyYieldsEmptyCollection(t *testing.T) {
	comps, err := Components(model.CategorySSD, mustCSV(t, "id,name,price,capacity\n"))
	require.NoError(t, err)
	assert.Empty(t, comps)
	assert.NotNil(t, comps)
}

func TestComponents_UnknownCategory(t *testing.T) {
	_, err := Components(model.Category("Monitor"), mustCSV(t, "id\n1\n"))
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestAdditionalItems(t *testing.T) {
	table := mustCSV(t, "id,category,productName,name,cost,additionalPrice,upgradePrice\n"+
		"add-9,모니터,LG 27GR75Q,27GR75Q,289000,339000,319000\n"+
		",키보드,로지텍 G413,G413,52000,69000,\n"+
		",마우스,G304,G304,30000,39000,문의\n")

	items := AdditionalItems(table)
	require.Len(t, items, 3)

	assert.Equal(t, "add-9", items[0].ID)
	require.NotNil(t, items[0].UpgradePrice)
	assert.Equal(t, int64(319000), *items[0].UpgradePrice)

	assert.Equal(t, "add-import-2", items[1].ID)
	assert.Nil(t, items[1].UpgradePrice)
	assert.Equal(t, int64(69000), items[1].AdditionalPrice)

	assert.Nil(t, items[2].UpgradePrice)
}

func TestAdditionalItems_OutOfRangeAmounts(t *testing.T) {
	table := mustCSV(t, "name,cost,additionalPrice,upgradePrice\n"+
		"모니터,1e20,-1e20,1e20\n"+
		"키보드,-500,69000,-1\n")

	items := AdditionalItems(table)
	require.Len(t, items, 2)

	assert.Zero(t, items[0].Cost)
	assert.Zero(t, items[0].AdditionalPrice)
	assert.Nil(t, items[0].UpgradePrice)

	// negative amounts are kept so the import is rejected as a whole
	assert.Equal(t, int64(-500), items[1].Cost)
	require.NotNil(t, items[1].UpgradePrice)
	assert.Equal(t, int64(-1), *items[1].UpgradePrice)
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"id", "productName", "name", "price", "wattage"},
		{"powersupply-9", "시소닉 750W", "FOCUS 750", 129000, 750},
		{"", "마이크로닉스 500W", "Classic 500", "59000", "500"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := Read("psu.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	comps, err := Components(model.CategoryPowerSupply, table)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	psu := comps[0].(model.PowerSupply)
	assert.Equal(t, "powersupply-9", psu.ID)
	assert.Equal(t, int64(750), psu.Wattage)
	assert.Equal(t, int64(129000), psu.Price)

	assert.Equal(t, "powersupply-import-2", comps[1].Base().ID)
	assert.Equal(t, int64(500), comps[1].(model.PowerSupply).Wattage)
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := Read("catalog.json", strings.NewReader("{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
