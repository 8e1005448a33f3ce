package company

import "time"

// Company is a single entry in the directory. The id and both timestamps
// are assigned by the database; everything else is required.
type Company struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	ContactEmail  string    `gorm:"not null" json:"contactEmail"`
	StreetAddress string    `gorm:"not null" json:"streetAddress"`
	City          string    `gorm:"not null" json:"city"`
	Country       string    `gorm:"not null" json:"country"`
	Domain        string    `gorm:"not null" json:"domain"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Company) TableName() string {
	return "companies"
}

// Columns maps updatable attribute names (as they appear in the GraphQL
// schema and CLI flags) to their database column names.
var Columns = map[string]string{
	"name":          "name",
	"contactEmail":  "contact_email",
	"streetAddress": "street_address",
	"city":          "city",
	"country":       "country",
	"domain":        "domain",
}
