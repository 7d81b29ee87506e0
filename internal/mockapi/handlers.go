package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/mapadengue/mapadengue-go/internal/mockdata"
	"github.com/mapadengue/mapadengue-go/internal/service/facts"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
	"github.com/mapadengue/mapadengue-go/internal/service/risk"
	"github.com/mapadengue/mapadengue-go/internal/service/weather"
)

var signingKey = []byte("mapadengue-dev")

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "corpo de requisição inválido", "bad_request")
		return
	}
	if body.Email != mockdata.MockEmail || body.Password != mockdata.MockPassword {
		writeError(w, http.StatusUnauthorized, "credenciais inválidas", "invalid_credentials")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
		writeError(w, http.StatusUnauthorized, "refresh token ausente", "invalid_token")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse())
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeError(w, http.StatusUnauthorized, "token ausente", "missing_token")
		return
	}
	writeJSON(w, http.StatusOK, mockUserJSON())
}

func (s *Server) handleOK(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleMunicipios(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	resp := municipios.Filter(municipios.MockList(), p)

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Write(municipios.CSV(resp))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	resp := facts.MockList()
	q := r.URL.Query()
	if needle := strings.ToLower(q.Get("q")); needle != "" {
		filtered := resp.Data[:0:0]
		for _, f := range resp.Data {
			if strings.Contains(strings.ToLower(f.Municipio), needle) {
				filtered = append(filtered, f)
			}
		}
		resp.Data = filtered
		resp.Total = len(filtered)
	}
	if offset, _ := strconv.Atoi(q.Get("offset")); offset > 0 {
		if offset >= len(resp.Data) {
			resp.Data = nil
		} else {
			resp.Data = resp.Data[offset:]
		}
	}
	if limit, _ := strconv.Atoi(q.Get("limit")); limit > 0 && limit < len(resp.Data) {
		resp.Data = resp.Data[:limit]
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGold(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, facts.MockGold())
}

func (s *Server) handleWeatherList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, weather.MockList())
}

func (s *Server) handleWeatherCity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, weather.MockCity(chi.URLParam(r, "city")))
}

func (s *Server) handleWeatherCityRisk(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, weather.MockCityRisk(chi.URLParam(r, "city")))
}

func (s *Server) handleRiskDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, risk.MockDashboard())
}

func (s *Server) handleRiskAnalyze(w http.ResponseWriter, r *http.Request) {
	var in risk.AnalyzeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "corpo de requisição inválido", "bad_request")
		return
	}
	writeJSON(w, http.StatusOK, risk.MockAnalyze(in))
}

func (s *Server) handleRiskMunicipio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, risk.MockByMunicipio(chi.URLParam(r, "codigo_ibge")))
}

func listParams(r *http.Request) municipios.ListParams {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return municipios.ListParams{Limit: limit, Offset: offset, Query: q.Get("q")}
}

func tokenResponse() map[string]any {
	now := time.Now()
	access, _ := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "usr-0001",
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(signingKey)
	refresh, _ := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub": "usr-0001",
		"iat": now.Unix(),
		"exp": now.Add(30 * 24 * time.Hour).Unix(),
	}).SignedString(signingKey)

	return map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          mockUserJSON(),
	}
}

func mockUserJSON() map[string]string {
	return map[string]string{
		"id":     "usr-0001",
		"nome":   "AGENTE DE CAMPO",
		"email":  mockdata.MockEmail,
		"perfil": "agente",
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, map[string]string{"message": message, "code": code})
}
