package weather

// Wire is one upstream weather observation.
type Wire struct {
	Cidade       string  `json:"cidade"`
	Temperatura  float64 `json:"temperatura"`
	Umidade      float64 `json:"umidade"`
	Precipitacao float64 `json:"precipitacao_mm"`
	Vento        float64 `json:"vento_kph"`
	Condicao     string  `json:"condicao"`
	Timestamp    string  `json:"timestamp"`
}

// ListResponse is the /api/v1/weather envelope.
type ListResponse struct {
	Data []Wire `json:"data"`
}
