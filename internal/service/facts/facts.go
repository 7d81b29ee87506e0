// Package facts exposes field-activity records as map points of
// interest.
package facts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
)

// Service is the facts façade.
type Service struct {
	deps service.Deps
}

// New creates the façade.
func New(deps service.Deps) *Service {
	return &Service{deps: deps}
}

// ListParams are the common list query parameters.
type ListParams struct {
	Limit  int
	Offset int
	Query  string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	return q
}

// List fetches field-activity facts mapped into points of interest.
func (s *Service) List(ctx context.Context, p ListParams) domain.Result[[]domain.PointOfInterest] {
	return service.Run(ctx, s.deps, service.Operation[ListResponse, []domain.PointOfInterest]{
		Name: "facts.list",
		Live: func(ctx context.Context) (ListResponse, *domain.APIError) {
			var resp ListResponse
			if apiErr := s.deps.Transport.GetJSON(ctx, "/facts", p.values(), &resp); apiErr != nil {
				return ListResponse{}, apiErr
			}
			return resp, nil
		},
		Mock: MockList,
		Map:  MapList,
	})
}

// Gold fetches the curated aggregate.
func (s *Service) Gold(ctx context.Context) domain.Result[domain.GoldSummary] {
	return service.Run(ctx, s.deps, service.Operation[GoldWire, domain.GoldSummary]{
		Name: "facts.gold",
		Live: func(ctx context.Context) (GoldWire, *domain.APIError) {
			var resp GoldWire
			if apiErr := s.deps.Transport.GetJSON(ctx, "/gold", nil, &resp); apiErr != nil {
				return GoldWire{}, apiErr
			}
			return resp, nil
		},
		Mock: MockGold,
		Map:  mapGold,
	})
}

// MapList converts the wire batch to view models. Records without an
// upstream ID get a synthetic one derived from the municipality code
// and their position in the batch, which is stable for a given
// response.
func MapList(resp ListResponse) []domain.PointOfInterest {
	out := make([]domain.PointOfInterest, 0, len(resp.Data))
	for i, w := range resp.Data {
		out = append(out, mapOne(w, i))
	}
	return out
}

func mapOne(w Wire, index int) domain.PointOfInterest {
	id := w.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", w.CodigoIBGE, index)
	}

	registeredAt, _ := time.Parse("2006-01-02", w.DataRegistro)

	return domain.PointOfInterest{
		ID:           id,
		CodigoIBGE:   w.CodigoIBGE,
		Municipio:    municipios.TitleCase(w.Municipio),
		Latitude:     w.Lat,
		Longitude:    w.Lng,
		Tipo:         municipios.TitleCase(w.TipoAtividade),
		Status:       ClassifyStatus(w.StatusAtividade),
		StatusBruto:  w.StatusAtividade,
		RegistradoEm: registeredAt,
	}
}

// ClassifyStatus folds the free-text agent status into the two-state
// enum the map legend understands.
func ClassifyStatus(raw string) domain.POIStatus {
	if strings.Contains(strings.ToLower(raw), "conclu") {
		return domain.POIStatusTratado
	}
	return domain.POIStatusPendente
}

func mapGold(w GoldWire) domain.GoldSummary {
	updatedAt, _ := time.Parse(time.RFC3339, w.AtualizadoEm)
	return domain.GoldSummary{
		Municipios:   w.Municipios,
		Fatos:        w.Fatos,
		Tratados:     w.Tratados,
		Pendentes:    w.Pendentes,
		AtualizadoEm: updatedAt,
	}
}
