package risk

// BreakdownWire itemizes score contributions on the wire.
type BreakdownWire struct {
	Temperatura int `json:"temperatura"`
	Umidade     int `json:"umidade"`
	Variacao    int `json:"variacao_casos"`
	Incidencia  int `json:"incidencia"`
}

// AssessmentWire is one scored municipality as the upstream returns it.
type AssessmentWire struct {
	CodigoIBGE  string        `json:"codigo_ibge"`
	Municipio   string        `json:"municipio"`
	Score       int           `json:"score"`
	Nivel       string        `json:"nivel"`
	Componentes BreakdownWire `json:"componentes"`
	AvaliadoEm  string        `json:"avaliado_em"`
}

// DashboardWire is the /api/v1/risk/dashboard envelope.
type DashboardWire struct {
	GeradoEm   string           `json:"gerado_em"`
	Municipios []AssessmentWire `json:"municipios"`
}

// AnalyzeInput is the POST body for /api/v1/risk/analyze.
type AnalyzeInput struct {
	CodigoIBGE       string  `json:"codigo_ibge"`
	Municipio        string  `json:"municipio"`
	TemperaturaC     float64 `json:"temperatura_c"`
	UmidadePct       float64 `json:"umidade_pct"`
	CasosRecentes    int     `json:"casos_recentes"`
	CasosAnoAnterior int     `json:"casos_ano_anterior"`
	Populacao        int     `json:"populacao"`
}
