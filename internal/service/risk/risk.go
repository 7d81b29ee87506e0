// Package risk exposes the epidemiological risk endpoints and the pure
// scoring rule set backing their fallback path.
package risk

import (
	"context"
	"net/url"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
)

// Service is the risk façade.
type Service struct {
	deps service.Deps
}

// New creates the façade.
func New(deps service.Deps) *Service {
	return &Service{deps: deps}
}

// Dashboard fetches the scored overview of every municipality.
func (s *Service) Dashboard(ctx context.Context) domain.Result[domain.RiskDashboard] {
	return service.Run(ctx, s.deps, service.Operation[DashboardWire, domain.RiskDashboard]{
		Name: "risk.dashboard",
		Live: func(ctx context.Context) (DashboardWire, *domain.APIError) {
			var resp DashboardWire
			if apiErr := s.deps.Transport.GetJSON(ctx, "/api/v1/risk/dashboard", nil, &resp); apiErr != nil {
				return DashboardWire{}, apiErr
			}
			return resp, nil
		},
		Mock: MockDashboard,
		Map:  mapDashboard,
	})
}

// ByMunicipio fetches the assessment for one IBGE code.
func (s *Service) ByMunicipio(ctx context.Context, codigoIBGE string) domain.Result[domain.RiskAssessment] {
	return service.Run(ctx, s.deps, service.Operation[AssessmentWire, domain.RiskAssessment]{
		Name: "risk.municipio",
		Live: func(ctx context.Context) (AssessmentWire, *domain.APIError) {
			var resp AssessmentWire
			path := "/api/v1/risk/municipio/" + url.PathEscape(codigoIBGE)
			if apiErr := s.deps.Transport.GetJSON(ctx, path, nil, &resp); apiErr != nil {
				return AssessmentWire{}, apiErr
			}
			return resp, nil
		},
		Mock: func() AssessmentWire { return MockByMunicipio(codigoIBGE) },
		Map:  MapAssessment,
	})
}

// Analyze submits metrics for scoring. When the endpoint is not
// deployed upstream the exact same rule set runs locally, so callers
// get identical numbers either way.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) domain.Result[domain.RiskAssessment] {
	return service.Run(ctx, s.deps, service.Operation[AssessmentWire, domain.RiskAssessment]{
		Name: "risk.analyze",
		Live: func(ctx context.Context) (AssessmentWire, *domain.APIError) {
			var resp AssessmentWire
			if apiErr := s.deps.Transport.PostJSON(ctx, "/api/v1/risk/analyze", in, &resp); apiErr != nil {
				return AssessmentWire{}, apiErr
			}
			return resp, nil
		},
		Mock: func() AssessmentWire { return MockAnalyze(in) },
		Map:  MapAssessment,
	})
}

// MapAssessment converts one wire assessment to its view model.
func MapAssessment(w AssessmentWire) domain.RiskAssessment {
	assessedAt, _ := time.Parse(time.RFC3339, w.AvaliadoEm)
	level := domain.RiskLevel(w.Nivel)
	switch level {
	case domain.RiskLevelCritico, domain.RiskLevelAlto, domain.RiskLevelModerado, domain.RiskLevelBaixo:
	default:
		// Unknown upstream labels are re-derived from the score.
		level = Level(w.Score)
	}
	return domain.RiskAssessment{
		CodigoIBGE: w.CodigoIBGE,
		Municipio:  municipios.TitleCase(w.Municipio),
		Score:      w.Score,
		Level:      level,
		Breakdown: domain.RiskBreakdown{
			Temperatura: w.Componentes.Temperatura,
			Umidade:     w.Componentes.Umidade,
			Variacao:    w.Componentes.Variacao,
			Incidencia:  w.Componentes.Incidencia,
		},
		AvaliadoEm: assessedAt,
	}
}

func mapDashboard(w DashboardWire) domain.RiskDashboard {
	generatedAt, _ := time.Parse(time.RFC3339, w.GeradoEm)
	out := domain.RiskDashboard{GeradoEm: generatedAt}
	for _, aw := range w.Municipios {
		a := MapAssessment(aw)
		out.Municipios = append(out.Municipios, a)
		switch a.Level {
		case domain.RiskLevelCritico:
			out.Criticos++
		case domain.RiskLevelAlto:
			out.Altos++
		}
	}
	return out
}
