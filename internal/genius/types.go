package genius

// Song is the normalized representation of one searchable track.
// Records are produced only by the search client and never mutated.
type Song struct {
	ID        string
	Title     string
	Artist    string
	FullTitle string
	URL       string
}

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				ID            int64  `json:"id"`
				Title         string `json:"title"`
				URL           string `json:"url"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}
