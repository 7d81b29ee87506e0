package municipios

// Wire shapes as the upstream API returns them: all-caps names and
// locale-formatted population strings. They exist only long enough to
// be mapped.

// Wire is one upstream municipality record.
type Wire struct {
	CodigoIBGE    string  `json:"codigo_ibge"`
	NomeMunicipio string  `json:"nome_municipio"`
	SiglaUF       string  `json:"sigla_uf"`
	Populacao     string  `json:"populacao"`
	AreaKM2       float64 `json:"area_km2"`
}

// ListResponse is the upstream list envelope.
type ListResponse struct {
	Data  []Wire `json:"data"`
	Total int    `json:"total"`
}
