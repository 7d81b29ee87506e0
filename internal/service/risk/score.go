package risk

import "github.com/mapadengue/mapadengue-go/internal/domain"

// Score computes the climate/epidemiological risk score for one
// municipality. It is pure: no I/O, no clock, no randomness, so the
// fallback path produces the same number every run.
//
// Contributions:
//   - temperature 25–30°C: +30 (ideal Aedes range); 20–35°C: +15
//   - humidity ≥70%: +25; ≥60%: +15
//   - year-over-year case variation >100%: +30; >50%: +20; >0%: +10
//   - incidence per 100k inhabitants >300: +15; >100: +10; >30: +5
//
// The total is clamped to [0,100].
func Score(tempC, humidityPct float64, casesRecent, casesPriorYear, population int) (int, domain.RiskLevel, domain.RiskBreakdown) {
	var b domain.RiskBreakdown

	switch {
	case tempC >= 25 && tempC <= 30:
		b.Temperatura = 30
	case tempC >= 20 && tempC <= 35:
		b.Temperatura = 15
	}

	switch {
	case humidityPct >= 70:
		b.Umidade = 25
	case humidityPct >= 60:
		b.Umidade = 15
	}

	var variation float64
	if casesPriorYear > 0 {
		variation = float64(casesRecent-casesPriorYear) / float64(casesPriorYear) * 100
	}
	switch {
	case variation > 100:
		b.Variacao = 30
	case variation > 50:
		b.Variacao = 20
	case variation > 0:
		b.Variacao = 10
	}

	var incidence float64
	if population > 0 {
		incidence = float64(casesRecent) / float64(population) * 100000
	}
	switch {
	case incidence > 300:
		b.Incidencia = 15
	case incidence > 100:
		b.Incidencia = 10
	case incidence > 30:
		b.Incidencia = 5
	}

	total := b.Temperatura + b.Umidade + b.Variacao + b.Incidencia
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return total, Level(total), b
}

// Level maps a score to its qualitative band.
func Level(score int) domain.RiskLevel {
	switch {
	case score >= 80:
		return domain.RiskLevelCritico
	case score >= 60:
		return domain.RiskLevelAlto
	case score >= 40:
		return domain.RiskLevelModerado
	default:
		return domain.RiskLevelBaixo
	}
}
