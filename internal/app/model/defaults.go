package model

// Built-in data used when no persisted state exists or it cannot be decoded.

const DefaultPassphrase = "admin"

func DefaultCatalog() Catalog {
	return Catalog{
		CPUs: []CPU{
			{ComponentBase: ComponentBase{ID: "cpu-1", ProductName: "AMD 라이젠7-5세대 7800X3D (라파엘)", Manufacturer: "AMD", Name: "Ryzen 7 7800X3D", Price: 489000}, Score: 92, Socket: "AM5", TDP: 120},
			{ComponentBase: ComponentBase{ID: "cpu-2", ProductName: "AMD 라이젠5-5세대 7500F (라파엘)", Manufacturer: "AMD", Name: "Ryzen 5 7500F", Price: 189000}, Score: 68, Socket: "AM5", TDP: 65},
			{ComponentBase: ComponentBase{ID: "cpu-3", ProductName: "인텔 코어i5-14세대 14400F (랩터레이크 리프레시)", Manufacturer: "Intel", Name: "Core i5-14400F", Price: 215000}, Score: 70, Socket: "LGA1700", TDP: 65},
			{ComponentBase: ComponentBase{ID: "cpu-4", ProductName: "인텔 코어i7-14세대 14700K (랩터레이크 리프레시)", Manufacturer: "Intel", Name: "Core i7-14700K", Price: 529000}, Score: 90, Socket: "LGA1700", TDP: 125},
		},
		Motherboards: []Motherboard{
			{ComponentBase: ComponentBase{ID: "motherboard-1", ProductName: "ASRock B650M PRO RS 대원씨티에스", Manufacturer: "ASRock", Name: "B650M PRO RS", Price: 179000}, Socket: "AM5", MemoryType: "DDR5", FormFactor: "M-ATX"},
			{ComponentBase: ComponentBase{ID: "motherboard-2", ProductName: "MSI MAG X670E TOMAHAWK WIFI", Manufacturer: "MSI", Name: "X670E TOMAHAWK", Price: 399000}, Socket: "AM5", MemoryType: "DDR5", FormFactor: "ATX"},
			{ComponentBase: ComponentBase{ID: "motherboard-3", ProductName: "GIGABYTE B760M DS3H D4 제이씨현", Manufacturer: "GIGABYTE", Name: "B760M DS3H D4", Price: 129000}, Socket: "LGA1700", MemoryType: "DDR4", FormFactor: "M-ATX"},
			{ComponentBase: ComponentBase{ID: "motherboard-4", ProductName: "ASUS PRIME Z790-P 인텍앤컴퍼니", Manufacturer: "ASUS", Name: "PRIME Z790-P", Price: 289000}, Socket: "LGA1700", MemoryType: "DDR5", FormFactor: "ATX"},
		},
		Memories: []Memory{
			{ComponentBase: ComponentBase{ID: "memory-1", ProductName: "삼성전자 DDR5-5600 (16GB)", Manufacturer: "Samsung", Name: "DDR5-5600 16GB", Price: 59000}, Type: "DDR5", Capacity: 16},
			{ComponentBase: ComponentBase{ID: "memory-2", ProductName: "SK하이닉스 DDR5-5600 (32GB)", Manufacturer: "SK hynix", Name: "DDR5-5600 32GB", Price: 115000}, Type: "DDR5", Capacity: 32},
			{ComponentBase: ComponentBase{ID: "memory-3", ProductName: "삼성전자 DDR4-3200 (16GB)", Manufacturer: "Samsung", Name: "DDR4-3200 16GB", Price: 42000}, Type: "DDR4", Capacity: 16},
		},
		GraphicsCards: []GraphicsCard{
			{ComponentBase: ComponentBase{ID: "graphicscard-1", ProductName: "MSI 지포스 RTX 4060 벤투스 2X 블랙 OC D6 8GB", Manufacturer: "MSI", Name: "RTX 4060 VENTUS 2X", Price: 419000}, Score: 60, Length: 199, TDP: 115},
			{ComponentBase: ComponentBase{ID: "graphicscard-2", ProductName: "GIGABYTE 지포스 RTX 4070 SUPER WINDFORCE OC D6X 12GB", Manufacturer: "GIGABYTE", Name: "RTX 4070 SUPER WINDFORCE", Price: 899000}, Score: 82, Length: 261, TDP: 220},
			{ComponentBase: ComponentBase{ID: "graphicscard-3", ProductName: "ASUS TUF Gaming 지포스 RTX 4080 SUPER OC D6X 16GB", Manufacturer: "ASUS", Name: "TUF RTX 4080 SUPER", Price: 1649000}, Score: 95, Length: 348, TDP: 320},
		},
		SSDs: []SSD{
			{ComponentBase: ComponentBase{ID: "ssd-1", ProductName: "삼성전자 990 EVO M.2 NVMe (1TB)", Manufacturer: "Samsung", Name: "990 EVO 1TB", Price: 119000}, Capacity: 1000},
			{ComponentBase: ComponentBase{ID: "ssd-2", ProductName: "SK하이닉스 Platinum P41 M.2 NVMe (2TB)", Manufacturer: "SK hynix", Name: "Platinum P41 2TB", Price: 239000}, Capacity: 2000},
		},
		Cases: []PCCase{
			{ComponentBase: ComponentBase{ID: "pccase-1", ProductName: "darkFlash DS900 ARGB 강화유리 (블랙)", Manufacturer: "darkFlash", Name: "DS900", Price: 89000}, FormFactor: []string{"ATX", "M-ATX", "M-ITX"}, MaxGPULength: 400},
			{ComponentBase: ComponentBase{ID: "pccase-2", ProductName: "앱코 SUITMASTER 321B 미니 (블랙)", Manufacturer: "ABKO", Name: "SUITMASTER 321B", Price: 39000}, FormFactor: []string{"M-ATX", "M-ITX"}, MaxGPULength: 300},
		},
		PowerSupplies: []PowerSupply{
			{ComponentBase: ComponentBase{ID: "powersupply-1", ProductName: "마이크로닉스 Classic II 650W 80PLUS브론즈", Manufacturer: "Micronics", Name: "Classic II 650W", Price: 69000}, Wattage: 650},
			{ComponentBase: ComponentBase{ID: "powersupply-2", ProductName: "시소닉 FOCUS GX-850 GOLD 풀모듈러", Manufacturer: "Seasonic", Name: "FOCUS GX-850", Price: 169000}, Wattage: 850},
			{ComponentBase: ComponentBase{ID: "powersupply-3", ProductName: "시소닉 VERTEX GX-1000 GOLD 풀모듈러", Manufacturer: "Seasonic", Name: "VERTEX GX-1000", Price: 239000}, Wattage: 1000},
		},
		CPUCoolers: []CPUCooler{
			{ComponentBase: ComponentBase{ID: "cpucooler-1", ProductName: "DEEPCOOL AK400 (블랙)", Manufacturer: "DEEPCOOL", Name: "AK400", Price: 35000}, SupportedSockets: []string{"AM5", "AM4", "LGA1700"}},
			{ComponentBase: ComponentBase{ID: "cpucooler-2", ProductName: "NZXT KRAKEN 360 (블랙)", Manufacturer: "NZXT", Name: "KRAKEN 360", Price: 229000}, SupportedSockets: []string{"AM5", "LGA1700"}},
		},
		OS: []OS{
			{ComponentBase: ComponentBase{ID: "os-1", ProductName: "Microsoft Windows 11 Home (FPP USB)", Name: "Windows 11 Home", Price: 189000}},
			{ComponentBase: ComponentBase{ID: "os-2", ProductName: "Microsoft Windows 11 Pro (FPP USB)", Name: "Windows 11 Pro", Price: 269000}},
			{ComponentBase: ComponentBase{ID: "os-3", ProductName: "운영체제 미포함 (FreeDOS)", Name: "FreeDOS", Price: 0}},
		},
	}
}

func DefaultAdditionalItems() []AdditionalItem {
	return []AdditionalItem{
		{ID: "add-1", Category: "모니터", ProductName: "LG 울트라기어 27GR75Q 27인치 QHD 165Hz", Name: "27GR75Q", Cost: 289000, AdditionalPrice: 339000, UpgradePrice: Int64Ptr(319000)},
		{ID: "add-2", Category: "키보드", ProductName: "로지텍 G413 SE 기계식 키보드", Name: "G413 SE", Cost: 52000, AdditionalPrice: 69000, UpgradePrice: nil},
		{ID: "add-3", Category: "서비스", ProductName: "윈도우 설치 및 드라이버 세팅", Name: "OS 설치", Cost: 0, AdditionalPrice: 20000, UpgradePrice: nil},
	}
}

func DefaultBundles() []Bundle {
	return []Bundle{
		{
			ID: "arizen-1", Name: "ARIZEN PRIME 게이밍 7800X3D",
			CPUID: "cpu-1", MotherboardID: "motherboard-1", MemoryID: "memory-2", GraphicsCardID: "graphicscard-2",
			SSDID: "ssd-1", PCCaseID: "pccase-1", PowerSupplyID: "powersupply-2", CPUCoolerID: "cpucooler-1", OSID: "os-1",
		},
		{
			ID: "arizen-2", Name: "ARIZEN PRIME 사무용 14400F",
			CPUID: "cpu-3", MotherboardID: "motherboard-3", MemoryID: "memory-3", GraphicsCardID: "graphicscard-1",
			SSDID: "ssd-1", PCCaseID: "pccase-2", PowerSupplyID: "powersupply-1", CPUCoolerID: "cpucooler-1", OSID: "os-3",
		},
	}
}

func DefaultCommissionRates() CommissionRates {
	return CommissionRates{Naver: 6, Coupang: 11, Market: 8}
}
