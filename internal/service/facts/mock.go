package facts

import (
	"fmt"
	"strings"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
)

var mockTipos = []string{
	"FOCO LARVÁRIO",
	"CRIADOURO",
	"TERRENO BALDIO",
	"VISITA DOMICILIAR",
	"ARMADILHA",
}

var mockStatuses = []string{
	"CONCLUÍDO",
	"Concluída com tratamento",
	"EM ANDAMENTO",
	"PENDENTE DE VISITA",
	"AGENDADO",
}

// mockEpoch anchors generated registration dates.
var mockEpoch = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

// MockList returns the substitute field-activity dataset. Most records
// carry no upstream ID, matching the live feed.
func MockList() ListResponse {
	rng := mockdata.RNG("facts")
	var data []Wire
	for _, m := range mockdata.Municipios {
		n := 3 + rng.Intn(4)
		for i := 0; i < n; i++ {
			w := Wire{
				CodigoIBGE:      m.CodigoIBGE,
				Municipio:       m.Nome,
				Lat:             m.Lat + (rng.Float64()-0.5)*0.4,
				Lng:             m.Lng + (rng.Float64()-0.5)*0.4,
				TipoAtividade:   mockTipos[rng.Intn(len(mockTipos))],
				StatusAtividade: mockStatuses[rng.Intn(len(mockStatuses))],
				DataRegistro:    mockEpoch.AddDate(0, 0, rng.Intn(30)).Format("2006-01-02"),
			}
			// A minority of records do carry an upstream ID.
			if rng.Intn(5) == 0 {
				w.ID = fmt.Sprintf("fct-%s-%03d", m.CodigoIBGE, rng.Intn(1000))
			}
			data = append(data, w)
		}
	}
	return ListResponse{Data: data, Total: len(data)}
}

// MockGold derives the aggregate from the substitute facts so the two
// endpoints never disagree.
func MockGold() GoldWire {
	list := MockList()
	g := GoldWire{
		Municipios:   len(mockdata.Municipios),
		Fatos:        len(list.Data),
		AtualizadoEm: mockEpoch.AddDate(0, 0, 30).Format(time.RFC3339),
	}
	for _, w := range list.Data {
		if strings.Contains(strings.ToLower(w.StatusAtividade), "conclu") {
			g.Tratados++
		} else {
			g.Pendentes++
		}
	}
	return g
}
