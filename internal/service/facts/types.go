package facts

// Wire is one flat field-activity record as the upstream API returns
// it. Records frequently arrive without an ID of their own.
type Wire struct {
	ID            string  `json:"id,omitempty"`
	CodigoIBGE    string  `json:"codigo_ibge"`
	Municipio     string  `json:"municipio"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	TipoAtividade string  `json:"tipo_atividade"`
	// StatusAtividade is free text typed by field agents.
	StatusAtividade string `json:"status_atividade"`
	DataRegistro    string `json:"data_registro"`
}

// ListResponse is the upstream list envelope.
type ListResponse struct {
	Data  []Wire `json:"data"`
	Total int    `json:"total"`
}

// GoldWire is the curated aggregate served by /gold.
type GoldWire struct {
	Municipios   int    `json:"municipios"`
	Fatos        int    `json:"fatos"`
	Tratados     int    `json:"tratados"`
	Pendentes    int    `json:"pendentes"`
	AtualizadoEm string `json:"atualizado_em"`
}
