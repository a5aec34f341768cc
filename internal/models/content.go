// internal/models/content.go
package models

type HeroSection struct {
	H1   string `json:"h1"`
	H1Fa string `json:"h1Fa"`
	P    string `json:"p"`
	PFa  string `json:"pFa"`
}

type TextSection struct {
	Title   string `json:"title"`
	TitleFa string `json:"titleFa"`
	Body    string `json:"body"`
	BodyFa  string `json:"bodyFa"`
}

// HomeContent is the home page copy, replaced as a whole.
type HomeContent struct {
	Hero    HeroSection `json:"hero"`
	About   TextSection `json:"about"`
	Mission TextSection `json:"mission"`
	Vision  TextSection `json:"vision"`
}

type ContactInfo struct {
	Email     string `json:"email" validate:"notblank"`
	Phone     string `json:"phone" validate:"notblank"`
	Address   string `json:"address" validate:"notblank"`
	AddressFa string `json:"addressFa,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}
