package model

// Производные записи. Все числа уже округлены/дефолтнуты — потребитель
// (таблица, CSV) печатает их как есть. ID — естественный ключ записи,
// по нему презентационный слой ведёт отметки "исправлено".

// PartMatch — кандидат-дубль в каталоге. Пара неупорядоченная, Similarity в процентах.
type PartMatch struct {
	ID         string  `json:"id"`
	PN1        string  `json:"pn1"`
	Desc1      string  `json:"desc1"`
	Stock1     float64 `json:"stock1"`
	PN2        string  `json:"pn2"`
	Desc2      string  `json:"desc2"`
	Stock2     float64 `json:"stock2"`
	Similarity int     `json:"similarity"`
	InBom      bool    `json:"inBom"`
	Action     string  `json:"action"`
}

// TranslitPair — кириллический и латинский варианты одного поставщика.
type TranslitPair struct {
	ID          string `json:"id"`
	CyrNum      string `json:"cyrNum"`
	CyrName     string `json:"cyrName"`
	CyrCurrency string `json:"cyrCurrency"`
	LatNum      string `json:"latNum"`
	LatName     string `json:"latName"`
	LatCurrency string `json:"latCurrency"`
	CyrNorm     string `json:"cyrNorm"`
	LatNorm     string `json:"latNorm"`
	Similarity  int    `json:"similarity"`
	MatchType   string `json:"matchType"`
	Action      string `json:"action"`
}

// RootPair — поставщики с общим значимым корнем; score у этого прохода нет.
type RootPair struct {
	ID          string `json:"id"`
	Num1        string `json:"num1"`
	Name1       string `json:"name1"`
	Currency1   string `json:"currency1"`
	Num2        string `json:"num2"`
	Name2       string `json:"name2"`
	Currency2   string `json:"currency2"`
	SharedRoots string `json:"sharedRoots"`
	MatchType   string `json:"matchType"`
	Action      string `json:"action"`
}

// SimilarPair — обычное нечёткое совпадение имён поставщиков.
type SimilarPair struct {
	ID         string `json:"id"`
	Num1       string `json:"num1"`
	Name1      string `json:"name1"`
	Currency1  string `json:"currency1"`
	Num2       string `json:"num2"`
	Name2      string `json:"name2"`
	Currency2  string `json:"currency2"`
	Similarity int    `json:"similarity"`
	MatchType  string `json:"matchType"`
	Action     string `json:"action"`
}

// VendorMatches — результат трёх проходов; списки не сливаются и не пересортируются.
type VendorMatches struct {
	Translit []TranslitPair `json:"transliterationPairs"`
	Root     []RootPair     `json:"rootBasedPairs"`
	Similar  []SimilarPair  `json:"similarVendors"`
}

func (m VendorMatches) Total() int {
	return len(m.Translit) + len(m.Root) + len(m.Similar)
}

// CurrencyIssue — партия с UAH-ценой, похожей на незаконвертированную.
type CurrencyIssue struct {
	ID            string  `json:"id"`
	Lot           string  `json:"lot"`
	PartNo        string  `json:"partNo"`
	Desc          string  `json:"desc"`
	VendorNo      string  `json:"vendorNo"`
	VendorName    string  `json:"vendorName"`
	Currency      string  `json:"currency"`
	CurrentCost   float64 `json:"currentCost"`
	LikelyCost    float64 `json:"likelyCost"`
	Overstatement float64 `json:"overstatement"`
	Qty           float64 `json:"qty"`
}

// TestDataItem — тестовая/демонстрационная запись каталога.
type TestDataItem struct {
	ID     string  `json:"id"`
	PartNo string  `json:"pn"`
	Desc   string  `json:"desc"`
	Stock  float64 `json:"stock"`
	Cost   float64 `json:"cost"`
	InBom  string  `json:"inBom"`
	Reason string  `json:"reason"`
	Action string  `json:"action"`
}

// ZeroStockItem — компонент спецификации с нулевым остатком.
type ZeroStockItem struct {
	ID       string  `json:"id"`
	PartNo   string  `json:"pn"`
	Desc     string  `json:"desc"`
	Stock    float64 `json:"stock"`
	Cost     float64 `json:"cost"`
	Procured string  `json:"procured"`
	Vendor   string  `json:"vendor"`
	UsedIn   string  `json:"usedIn"`
	IsTemp   bool    `json:"isTemp"`
	Action   string  `json:"action"`
}

// OrphanItem — запас, который не потребляет ни одна спецификация.
type OrphanItem struct {
	ID       string  `json:"id"`
	PartNo   string  `json:"pn"`
	Desc     string  `json:"desc"`
	Stock    float64 `json:"stock"`
	UnitCost float64 `json:"unitCost"`
	Value    float64 `json:"value"`
	Group    string  `json:"group"`
	Procured string  `json:"procured"`
}

// MatrixRow — строка сводной матрицы: деталь × использование по изделиям.
type MatrixRow struct {
	PartNo string             `json:"pn"`
	Desc   string             `json:"desc"`
	Usage  map[string]float64 `json:"usage"`
	InBom  bool               `json:"inBom"`
}

// Matrix — сводная таблица деталь × изделие.
type Matrix struct {
	Parts    []MatrixRow `json:"parts"`
	Products []string    `json:"products"`
}
