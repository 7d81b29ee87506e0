package municipios

import "github.com/mapadengue/mapadengue-go/internal/mockdata"

// MockList returns the substitute municipality dataset, shaped exactly
// like a live ListResponse.
func MockList() ListResponse {
	data := make([]Wire, 0, len(mockdata.Municipios))
	for _, m := range mockdata.Municipios {
		data = append(data, Wire{
			CodigoIBGE:    m.CodigoIBGE,
			NomeMunicipio: m.Nome,
			SiglaUF:       m.UF,
			Populacao:     m.Populacao,
			AreaKM2:       m.AreaKM2,
		})
	}
	return ListResponse{Data: data, Total: len(data)}
}
