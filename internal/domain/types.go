package domain

import "time"

// View models: the normalized shapes the dashboard reads. Wire shapes
// stay private to each façade package; every field here is populated on
// both the live and the mock path.

// Municipio is a normalized municipality record. The canonical fields
// carry IBGE naming; the legacy aliases keep the old dashboard field
// names alive for consumers that still read them.
type Municipio struct {
	CodigoIBGE string  `json:"codigo_ibge"`
	Nome       string  `json:"nome_municipio"`
	UF         string  `json:"sigla_uf"`
	Populacao  int     `json:"populacao"`
	AreaHa     float64 `json:"area_ha"`

	// Legacy aliases, same values as the canonical fields above.
	LegacyID   string `json:"id"`
	LegacyNome string `json:"nome"`
	LegacyUF   string `json:"uf"`
}

// POIStatus is the treatment status of a mapped point of interest.
type POIStatus string

const (
	POIStatusTratado  POIStatus = "tratado"
	POIStatusPendente POIStatus = "pendente"
)

// PointOfInterest is a field-activity fact projected onto the map.
type PointOfInterest struct {
	ID         string    `json:"id"`
	CodigoIBGE string    `json:"codigo_ibge"`
	Municipio  string    `json:"municipio"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Tipo       string    `json:"tipo"`
	Status     POIStatus `json:"status"`
	// StatusBruto keeps the upstream free-text status for audit views.
	StatusBruto  string    `json:"status_bruto"`
	RegistradoEm time.Time `json:"registrado_em"`
}

// WeatherSample is a normalized weather observation for one city.
type WeatherSample struct {
	Cidade       string    `json:"cidade"`
	TemperaturaC float64   `json:"temperatura_c"`
	UmidadePct   float64   `json:"umidade_pct"`
	ChuvaMM      float64   `json:"chuva_mm"`
	VentoKPH     float64   `json:"vento_kph"`
	Condicao     string    `json:"condicao"`
	ColetadoEm   time.Time `json:"coletado_em"`
}

// RiskLevel is the qualitative band of a risk score.
type RiskLevel string

const (
	RiskLevelCritico  RiskLevel = "critico"
	RiskLevelAlto     RiskLevel = "alto"
	RiskLevelModerado RiskLevel = "moderado"
	RiskLevelBaixo    RiskLevel = "baixo"
)

// RiskBreakdown itemizes the score contributions.
type RiskBreakdown struct {
	Temperatura int `json:"temperatura"`
	Umidade     int `json:"umidade"`
	Variacao    int `json:"variacao_casos"`
	Incidencia  int `json:"incidencia"`
}

// RiskAssessment is a scored municipality.
type RiskAssessment struct {
	CodigoIBGE string        `json:"codigo_ibge"`
	Municipio  string        `json:"municipio"`
	Score      int           `json:"score"`
	Level      RiskLevel     `json:"nivel"`
	Breakdown  RiskBreakdown `json:"componentes"`
	AvaliadoEm time.Time     `json:"avaliado_em"`
}

// RiskDashboard is the aggregate view for the risk page.
type RiskDashboard struct {
	GeradoEm   time.Time        `json:"gerado_em"`
	Municipios []RiskAssessment `json:"municipios"`
	Criticos   int              `json:"criticos"`
	Altos      int              `json:"altos"`
}

// UserProfile is the authenticated user as shown in the header.
type UserProfile struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

// GoldSummary is the curated aggregate served by /gold.
type GoldSummary struct {
	Municipios   int       `json:"municipios"`
	Fatos        int       `json:"fatos"`
	Tratados     int       `json:"tratados"`
	Pendentes    int       `json:"pendentes"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}
