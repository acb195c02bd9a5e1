package response

import (
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/domain/entities"
)

type ContactInfoResponse struct {
	Email         string `json:"email"`
	WhatsAppPhone string `json:"whatsapp_phone"`
	WhatsAppURL   string `json:"whatsapp_url"`
}

type ContentResponse struct {
	HeroTitle    string              `json:"hero_title"`
	HeroTagline  string              `json:"hero_tagline"`
	AboutHeading string              `json:"about_heading"`
	AboutStory   []string            `json:"about_story"`
	Values       []entities.Value    `json:"values"`
	Stats        []entities.Stat     `json:"stats"`
	Projects     []entities.Project  `json:"projects"`
	Services     []ServiceResponse   `json:"services"`
	Contact      ContactInfoResponse `json:"contact"`
}

func FromContent(c entities.SiteContent, services []entities.Service, rates *currency.Table, code string, contact ContactInfoResponse) ContentResponse {
	return ContentResponse{
		HeroTitle:    c.HeroTitle,
		HeroTagline:  c.HeroTagline,
		AboutHeading: c.AboutHeading,
		AboutStory:   c.AboutStory,
		Values:       c.Values,
		Stats:        c.Stats,
		Projects:     c.Projects,
		Services:     FromServices(services, rates, code),
		Contact:      contact,
	}
}

type ContactLinkResponse struct {
	MailtoLink string `json:"mailto_link"`
}
