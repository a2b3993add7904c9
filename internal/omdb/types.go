package omdb

// lookupResponse is the raw OMDb payload. OMDb reports misses in-band with
// Response == "False" and fills absent fields with the literal "N/A".
type lookupResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Plot     string `json:"Plot"`
	Director string `json:"Director"`
	Poster   string `json:"Poster"`
	Genre    string `json:"Genre"`
	ImdbID   string `json:"imdbID"`
}

// MovieDetails is the normalized enrichment record handed to the catalog:
// sentinel "N/A" values are mapped to nil and the year is parsed.
type MovieDetails struct {
	Title       string
	ImdbID      string
	Plot        *string
	Poster      *string
	ReleaseYear *int
	Genre       *string
	Director    *string
}
