package views

// Letterhead is the issuing company identity printed in every document header.
// It is injected into the mappers so they stay pure functions of their inputs.
type Letterhead struct {
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline,omitempty"`
	AddressLines   []string `json:"addressLines,omitempty"`
	ContactNumbers string   `json:"contactNumbers,omitempty"`
	Email          string   `json:"email,omitempty"`
	GSTIN          string   `json:"gstin,omitempty"`
	PAN            string   `json:"pan,omitempty"`
	LogoDataURI    string   `json:"-"`
}
