package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
	"github.com/mapadengue/mapadengue-go/internal/testutil"
	"github.com/mapadengue/mapadengue-go/internal/transport"
)

func TestList_VCRReplay(t *testing.T) {
	rec, cleanup := testutil.NewVCRRecorder(t, "weather_endpoints")
	defer cleanup()

	tr := transport.New("http://127.0.0.1:8000", transport.WithHTTPClient(testutil.VCRHTTPClient(rec)))
	svc := New(service.Deps{Transport: tr})

	res := svc.List(context.Background())
	if !res.Success {
		t.Fatalf("List() failed: %v", res.Err)
	}
	if len(res.Data) != 2 {
		t.Fatalf("samples = %d, want 2", len(res.Data))
	}
	if res.Data[0].Cidade != "São Paulo" {
		t.Errorf("Cidade = %q", res.Data[0].Cidade)
	}
	if res.Data[1].Condicao != "Chuva Forte" {
		t.Errorf("Condicao = %q", res.Data[1].Condicao)
	}
}

func TestCurrent_VCRReplay(t *testing.T) {
	rec, cleanup := testutil.NewVCRRecorder(t, "weather_endpoints")
	defer cleanup()

	tr := transport.New("http://127.0.0.1:8000", transport.WithHTTPClient(testutil.VCRHTTPClient(rec)))
	svc := New(service.Deps{Transport: tr})

	res := svc.Current(context.Background(), "manaus")
	if !res.Success {
		t.Fatalf("Current() failed: %v", res.Err)
	}
	if res.Data.TemperaturaC != 31.4 {
		t.Errorf("TemperaturaC = %v", res.Data.TemperaturaC)
	}
	want := time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC)
	if !res.Data.ColetadoEm.Equal(want) {
		t.Errorf("ColetadoEm = %v, want %v", res.Data.ColetadoEm, want)
	}
}

func TestCityRisk_404FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"não encontrado"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	tr := transport.New(srv.URL, transport.WithRetryBackoff(time.Millisecond))
	svc := New(service.Deps{Transport: tr})

	res := svc.CityRisk(context.Background(), "Manaus")
	if !res.Success {
		t.Fatalf("CityRisk() failed: %v", res.Err)
	}
	if res.Data.CodigoIBGE != "1302603" {
		t.Errorf("CodigoIBGE = %q", res.Data.CodigoIBGE)
	}
	if res.Data.Level == "" {
		t.Error("Level empty")
	}
}

func TestMockCity_DeterministicForUnknownCity(t *testing.T) {
	a := MockCity("Xique-Xique")
	b := MockCity("xique-xique")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("unknown-city sample varies: %+v vs %+v", a, b)
	}
	if a.Temperatura < 22 || a.Temperatura > 34 {
		t.Errorf("Temperatura = %v, outside the synthetic range", a.Temperatura)
	}
}

func TestMockCityRisk_AgreesWithRiskEndpoint(t *testing.T) {
	fromWeather := MockCityRisk("São Paulo")
	fromRisk := risk.MockByMunicipio("3550308")
	if fromWeather != fromRisk {
		t.Errorf("weather and risk disagree on the same city:\n%+v\n%+v", fromWeather, fromRisk)
	}
}

func TestMapSample_BadTimestampYieldsZeroTime(t *testing.T) {
	s := MapSample(Wire{Cidade: "MANAUS", Timestamp: "not-a-time"})
	if !s.ColetadoEm.IsZero() {
		t.Errorf("ColetadoEm = %v, want zero", s.ColetadoEm)
	}
}
