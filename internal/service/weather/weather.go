// Package weather exposes the weather observation endpoints.
package weather

import (
	"context"
	"net/url"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
)

// Service is the weather façade.
type Service struct {
	deps service.Deps
}

// New creates the façade.
func New(deps service.Deps) *Service {
	return &Service{deps: deps}
}

// List fetches observations for every monitored city.
func (s *Service) List(ctx context.Context) domain.Result[[]domain.WeatherSample] {
	return service.Run(ctx, s.deps, service.Operation[ListResponse, []domain.WeatherSample]{
		Name: "weather.list",
		Live: func(ctx context.Context) (ListResponse, *domain.APIError) {
			var resp ListResponse
			if apiErr := s.deps.Transport.GetJSON(ctx, "/api/v1/weather", nil, &resp); apiErr != nil {
				return ListResponse{}, apiErr
			}
			return resp, nil
		},
		Mock: MockList,
		Map:  mapList,
	})
}

// Current fetches the observation for one city.
func (s *Service) Current(ctx context.Context, city string) domain.Result[domain.WeatherSample] {
	return service.Run(ctx, s.deps, service.Operation[Wire, domain.WeatherSample]{
		Name: "weather.current",
		Live: func(ctx context.Context) (Wire, *domain.APIError) {
			var resp Wire
			path := "/api/v1/weather/" + url.PathEscape(city)
			if apiErr := s.deps.Transport.GetJSON(ctx, path, nil, &resp); apiErr != nil {
				return Wire{}, apiErr
			}
			return resp, nil
		},
		Mock: func() Wire { return MockCity(city) },
		Map:  MapSample,
	})
}

// CityRisk fetches the weather-derived risk assessment for one city.
func (s *Service) CityRisk(ctx context.Context, city string) domain.Result[domain.RiskAssessment] {
	return service.Run(ctx, s.deps, service.Operation[risk.AssessmentWire, domain.RiskAssessment]{
		Name: "weather.city_risk",
		Live: func(ctx context.Context) (risk.AssessmentWire, *domain.APIError) {
			var resp risk.AssessmentWire
			path := "/api/v1/weather/" + url.PathEscape(city) + "/risk"
			if apiErr := s.deps.Transport.GetJSON(ctx, path, nil, &resp); apiErr != nil {
				return risk.AssessmentWire{}, apiErr
			}
			return resp, nil
		},
		Mock: func() risk.AssessmentWire { return MockCityRisk(city) },
		Map:  risk.MapAssessment,
	})
}

// MapSample converts one wire observation to its view model.
func MapSample(w Wire) domain.WeatherSample {
	collectedAt, _ := time.Parse(time.RFC3339, w.Timestamp)
	return domain.WeatherSample{
		Cidade:       municipios.TitleCase(w.Cidade),
		TemperaturaC: w.Temperatura,
		UmidadePct:   w.Umidade,
		ChuvaMM:      w.Precipitacao,
		VentoKPH:     w.Vento,
		Condicao:     municipios.TitleCase(w.Condicao),
		ColetadoEm:   collectedAt,
	}
}

func mapList(resp ListResponse) []domain.WeatherSample {
	out := make([]domain.WeatherSample, 0, len(resp.Data))
	for _, w := range resp.Data {
		out = append(out, MapSample(w))
	}
	return out
}
