package domain

import (
	"strings"
	"time"
)

type Company struct {
	ID           string    `db:"id"         json:"id"`
	Name         string    `db:"name"       json:"name"`
	Email        string    `db:"email"      json:"email"`
	PasswordHash string    `db:"password"   json:"-"`
	CNPJ         string    `db:"cnpj"       json:"cnpj"`
	Street       string    `db:"street"     json:"street"`
	City         string    `db:"city"       json:"city"`
	State        string    `db:"state"      json:"state"`
	ZipCode      string    `db:"zip_code"   json:"zipCode"`
	WhatsApp     string    `db:"whatsapp"   json:"whatsapp"`
	LogoURL      *string   `db:"logo_url"   json:"logoUrl"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`

	Downloads []*Download `db:"-" json:"downloads,omitempty"`
}

// CompanyPatch holds the fields of a partial update. Nil fields are left untouched.
type CompanyPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	CNPJ         *string
	Street       *string
	City         *string
	State        *string
	ZipCode      *string
	WhatsApp     *string
}

func (p *CompanyPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil && p.CNPJ == nil &&
		p.Street == nil && p.City == nil && p.State == nil && p.ZipCode == nil && p.WhatsApp == nil
}

// PublicCompany is the part of a company returned alongside an access token.
type PublicCompany struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Company) Public() PublicCompany {
	return PublicCompany{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// RewriteLogoHost replaces the storage host reachable only from inside the
// deployment network with the one clients can reach.
func (c *Company) RewriteLogoHost(internalHost, publicHost string) {
	if c.LogoURL == nil || internalHost == "" || publicHost == "" {
		return
	}

	rewritten := strings.Replace(*c.LogoURL, internalHost, publicHost, 1)
	c.LogoURL = &rewritten
}
