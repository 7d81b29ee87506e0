package weather

import (
	"strings"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
)

// mockCollectedAt is the fixed observation timestamp of the substitute
// dataset.
var mockCollectedAt = time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC)

// MockList returns the substitute observations for the reference
// geography.
func MockList() ListResponse {
	climates := mockdata.Climates()
	var out ListResponse
	for _, m := range mockdata.Municipios {
		out.Data = append(out.Data, wireFor(m, climates[m.CodigoIBGE]))
	}
	return out
}

// MockCity returns the substitute observation for one city. Cities
// outside the reference geography get a deterministic sample derived
// from the city name, so repeated calls always agree.
func MockCity(city string) Wire {
	lower := strings.ToLower(strings.TrimSpace(city))
	climates := mockdata.Climates()
	for _, m := range mockdata.Municipios {
		if strings.ToLower(m.Nome) == lower {
			return wireFor(m, climates[m.CodigoIBGE])
		}
	}

	rng := mockdata.RNG("weather/" + lower)
	return Wire{
		Cidade:       strings.ToUpper(city),
		Temperatura:  22 + rng.Float64()*12,
		Umidade:      55 + rng.Float64()*35,
		Precipitacao: rng.Float64() * 40,
		Vento:        5 + rng.Float64()*20,
		Condicao:     "PARCIALMENTE NUBLADO",
		Timestamp:    mockCollectedAt.Format(time.RFC3339),
	}
}

// MockCityRisk scores the substitute observation for one city with the
// same rule set the risk endpoints use. Case counts come from the
// shared substitute stream when the city is part of the reference
// geography, and read as zero otherwise.
func MockCityRisk(city string) risk.AssessmentWire {
	lower := strings.ToLower(strings.TrimSpace(city))
	for _, m := range mockdata.Municipios {
		if strings.ToLower(m.Nome) == lower {
			return risk.MockByMunicipio(m.CodigoIBGE)
		}
	}

	w := MockCity(city)
	return risk.MockAnalyze(risk.AnalyzeInput{
		Municipio:    w.Cidade,
		TemperaturaC: w.Temperatura,
		UmidadePct:   w.Umidade,
	})
}

func wireFor(m mockdata.BaseMunicipio, c mockdata.Climate) Wire {
	return Wire{
		Cidade:       m.Nome,
		Temperatura:  c.TemperaturaC,
		Umidade:      c.UmidadePct,
		Precipitacao: c.ChuvaMM,
		Vento:        c.VentoKPH,
		Condicao:     c.Condicao,
		Timestamp:    mockCollectedAt.Format(time.RFC3339),
	}
}
