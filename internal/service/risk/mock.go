package risk

import (
	"time"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
)

// mockAvaliadoEm is the fixed assessment timestamp of the substitute
// dataset.
var mockAvaliadoEm = time.Date(2024, time.May, 31, 12, 0, 0, 0, time.UTC)

// MockDashboard scores the reference geography locally with the same
// rule set the upstream applies, so the substitute dashboard is both
// deterministic and internally consistent.
func MockDashboard() DashboardWire {
	climates := mockdata.Climates()
	cases := mockdata.Cases()

	out := DashboardWire{GeradoEm: mockAvaliadoEm.Format(time.RFC3339)}
	for _, m := range mockdata.Municipios {
		clim := climates[m.CodigoIBGE]
		cs := cases[m.CodigoIBGE]
		score, level, b := Score(clim.TemperaturaC, clim.UmidadePct,
			cs.Recentes, cs.AnoAnterior, municipios.ParsePopulation(m.Populacao))
		out.Municipios = append(out.Municipios, AssessmentWire{
			CodigoIBGE: m.CodigoIBGE,
			Municipio:  m.Nome,
			Score:      score,
			Nivel:      string(level),
			Componentes: BreakdownWire{
				Temperatura: b.Temperatura,
				Umidade:     b.Umidade,
				Variacao:    b.Variacao,
				Incidencia:  b.Incidencia,
			},
			AvaliadoEm: mockAvaliadoEm.Format(time.RFC3339),
		})
	}
	return out
}

// MockByMunicipio returns the substitute assessment for one IBGE code.
// Unknown codes score as an empty municipality rather than failing,
// keeping the view model fully populated.
func MockByMunicipio(codigoIBGE string) AssessmentWire {
	for _, w := range MockDashboard().Municipios {
		if w.CodigoIBGE == codigoIBGE {
			return w
		}
	}
	score, level, b := Score(0, 0, 0, 0, 0)
	return AssessmentWire{
		CodigoIBGE: codigoIBGE,
		Municipio:  "DESCONHECIDO",
		Score:      score,
		Nivel:      string(level),
		Componentes: BreakdownWire{
			Temperatura: b.Temperatura,
			Umidade:     b.Umidade,
			Variacao:    b.Variacao,
			Incidencia:  b.Incidencia,
		},
		AvaliadoEm: mockAvaliadoEm.Format(time.RFC3339),
	}
}

// MockAnalyze scores caller-supplied inputs locally.
func MockAnalyze(in AnalyzeInput) AssessmentWire {
	score, level, b := Score(in.TemperaturaC, in.UmidadePct,
		in.CasosRecentes, in.CasosAnoAnterior, in.Populacao)
	return AssessmentWire{
		CodigoIBGE: in.CodigoIBGE,
		Municipio:  in.Municipio,
		Score:      score,
		Nivel:      string(level),
		Componentes: BreakdownWire{
			Temperatura: b.Temperatura,
			Umidade:     b.Umidade,
			Variacao:    b.Variacao,
			Incidencia:  b.Incidencia,
		},
		AvaliadoEm: mockAvaliadoEm.Format(time.RFC3339),
	}
}
