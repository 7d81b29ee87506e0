// Package municipios exposes the municipality catalog.
package municipios

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/service"
)

// Service is the municipality façade.
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

// List fetches municipalities, normalized into view models.
func (s *Service) List(ctx context.Context, p ListParams) domain.Result[[]domain.Municipio] {
	return service.Run(ctx, s.deps, service.Operation[ListResponse, []domain.Municipio]{
		Name: "municipios.list",
		Live: func(ctx context.Context) (ListResponse, *domain.APIError) {
			var resp ListResponse
			if apiErr := s.deps.Transport.GetJSON(ctx, "/municipios", p.values(), &resp); apiErr != nil {
				return ListResponse{}, apiErr
			}
			return resp, nil
		},
		Mock: func() ListResponse {
			// The substitute dataset honors the same query contract as
			// the live endpoint.
			return Filter(MockList(), p)
		},
		Map: mapList,
	})
}

// Export fetches the catalog in an alternative format (csv, parquet).
// The bytes are returned verbatim; only format=json is ever decoded by
// this client. The fallback path serves a CSV rendering of the
// substitute dataset.
func (s *Service) Export(ctx context.Context, format string) domain.Result[[]byte] {
	return service.Run(ctx, s.deps, service.Operation[[]byte, []byte]{
		Name: "municipios.export",
		Live: func(ctx context.Context) ([]byte, *domain.APIError) {
			q := url.Values{}
			q.Set("format", format)
			return s.deps.Transport.Do(ctx, "GET", "/municipios", q, nil)
		},
		Mock: func() []byte { return CSV(MockList()) },
		Map:  func(b []byte) []byte { return b },
	})
}

// Filter applies the list query contract to a wire batch. The mock
// path and the local mock server share it so both behave like the live
// endpoint.
func Filter(resp ListResponse, p ListParams) ListResponse {
	data := resp.Data
	if p.Query != "" {
		needle := strings.ToLower(p.Query)
		filtered := make([]Wire, 0, len(data))
		for _, w := range data {
			if strings.Contains(strings.ToLower(w.NomeMunicipio), needle) ||
				strings.Contains(strings.ToLower(w.SiglaUF), needle) {
				filtered = append(filtered, w)
			}
		}
		data = filtered
	}
	total := len(data)
	if p.Offset > 0 {
		if p.Offset >= len(data) {
			data = nil
		} else {
			data = data[p.Offset:]
		}
	}
	if p.Limit > 0 && p.Limit < len(data) {
		data = data[:p.Limit]
	}
	return ListResponse{Data: data, Total: total}
}

func mapList(resp ListResponse) []domain.Municipio {
	out := make([]domain.Municipio, 0, len(resp.Data))
	for _, w := range resp.Data {
		out = append(out, mapOne(w))
	}
	return out
}

func mapOne(w Wire) domain.Municipio {
	nome := TitleCase(w.NomeMunicipio)
	return domain.Municipio{
		CodigoIBGE: w.CodigoIBGE,
		Nome:       nome,
		UF:         strings.ToUpper(w.SiglaUF),
		Populacao:  ParsePopulation(w.Populacao),
		AreaHa:     w.AreaKM2 * 100,

		LegacyID:   w.CodigoIBGE,
		LegacyNome: nome,
		LegacyUF:   strings.ToUpper(w.SiglaUF),
	}
}

// ParsePopulation converts an upstream population string with locale
// thousand separators ("11.451.999" or "11,451,999") to an integer.
// Unparseable input reads as zero rather than failing the whole batch.
func ParsePopulation(s string) int {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// connectives stay lowercase mid-name: "PORTO DOS GAÚCHOS" → "Porto dos Gaúchos".
var connectives = map[string]bool{
	"da": true, "das": true, "de": true, "do": true, "dos": true, "e": true,
}

// TitleCase normalizes an all-caps upstream name.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && connectives[w] {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// CSV renders a wire batch in the upstream export format.
func CSV(resp ListResponse) []byte {
	var b strings.Builder
	b.WriteString("codigo_ibge,nome_municipio,sigla_uf,populacao\n")
	for _, w := range resp.Data {
		b.WriteString(w.CodigoIBGE)
		b.WriteByte(',')
		b.WriteString(w.NomeMunicipio)
		b.WriteByte(',')
		b.WriteString(w.SiglaUF)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(ParsePopulation(w.Populacao)))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
