// Package mockdata centralizes the deterministic substitute-data
// machinery shared by the per-domain mock generators. Every generator
// draws from a PRNG seeded with a fixed constant, so mock payloads are
// identical across runs and snapshot tests stay stable.
package mockdata

import (
	"hash/fnv"
	"math/rand"
)

// Seed is the fixed base seed for all mock generation.
const Seed int64 = 20240517

// Mock credentials accepted by the auth fallback.
const (
	MockEmail    = "agente@mapadengue.gov.br"
	MockPassword = "campo123"
)

// RNG returns a PRNG for one domain, seeded by the base seed combined
// with the domain key so domains do not share a stream.
func RNG(domainKey string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(domainKey))
	return rand.New(rand.NewSource(Seed ^ int64(h.Sum64())))
}

// BaseMunicipio is a reference municipality used to anchor every
// domain's mock dataset to the same geography.
type BaseMunicipio struct {
	CodigoIBGE string
	Nome       string // upstream casing: all caps
	UF         string
	Populacao  string // upstream encoding: locale thousand separators
	AreaKM2    float64
	Lat        float64
	Lng        float64
}

// CaseStats is a deterministic dengue case count pair for one
// municipality.
type CaseStats struct {
	Recentes    int
	AnoAnterior int
}

// Cases returns the substitute case counts keyed by IBGE code. The
// same stream feeds the weather and risk generators so their datasets
// never disagree.
func Cases() map[string]CaseStats {
	rng := RNG("cases")
	out := make(map[string]CaseStats, len(Municipios))
	for _, m := range Municipios {
		prior := 20 + rng.Intn(400)
		// Recent counts swing from well below to well above last year.
		recent := int(float64(prior) * (0.4 + rng.Float64()*2.2))
		out[m.CodigoIBGE] = CaseStats{Recentes: recent, AnoAnterior: prior}
	}
	return out
}

// Climate is a deterministic weather snapshot for one municipality.
type Climate struct {
	TemperaturaC float64
	UmidadePct   float64
	ChuvaMM      float64
	VentoKPH     float64
	Condicao     string // upstream casing: all caps
}

var condicoes = []string{
	"ENSOLARADO",
	"PARCIALMENTE NUBLADO",
	"NUBLADO",
	"CHUVAS ESPARSAS",
	"TEMPESTADE",
}

// Climates returns the substitute weather snapshots keyed by IBGE
// code. Weather and risk generators share this single stream.
func Climates() map[string]Climate {
	rng := RNG("weather")
	out := make(map[string]Climate, len(Municipios))
	for _, m := range Municipios {
		out[m.CodigoIBGE] = Climate{
			TemperaturaC: 22 + rng.Float64()*12,
			UmidadePct:   55 + rng.Float64()*35,
			ChuvaMM:      rng.Float64() * 40,
			VentoKPH:     5 + rng.Float64()*20,
			Condicao:     condicoes[rng.Intn(len(condicoes))],
		}
	}
	return out
}

// Municipios is the fixed reference geography. Order matters: the
// per-domain generators index into it, so reordering would change
// every derived dataset.
var Municipios = []BaseMunicipio{
	{"3550308", "SÃO PAULO", "SP", "11.451.999", 1521.11, -23.5505, -46.6333},
	{"3304557", "RIO DE JANEIRO", "RJ", "6.211.223", 1200.33, -22.9068, -43.1729},
	{"2927408", "SALVADOR", "BA", "2.417.678", 693.45, -12.9777, -38.5016},
	{"2304400", "FORTALEZA", "CE", "2.428.708", 312.35, -3.7319, -38.5267},
	{"3106200", "BELO HORIZONTE", "MG", "2.315.560", 331.40, -19.9167, -43.9345},
	{"1302603", "MANAUS", "AM", "2.063.689", 11401.09, -3.1190, -60.0217},
	{"4106902", "CURITIBA", "PR", "1.773.718", 434.89, -25.4284, -49.2733},
	{"2611606", "RECIFE", "PE", "1.488.920", 218.84, -8.0476, -34.8770},
	{"5208707", "GOIÂNIA", "GO", "1.437.366", 728.84, -16.6869, -49.2648},
	{"1501402", "BELÉM", "PA", "1.303.403", 1059.46, -1.4558, -48.4902},
	{"4314902", "PORTO ALEGRE", "RS", "1.332.845", 495.39, -30.0346, -51.2177},
	{"5002704", "CAMPO GRANDE", "MS", "898.100", 8092.95, -20.4697, -54.6201},
}
