package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PropertyStatus marks a listing's visibility state. The stored collection
// often omits it; an empty value reads as Active.
type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "Active"
)

// Beds is a bedroom count that the source data stores either as a number or
// as the literal string "Studio".
type Beds struct {
	Count  int
	Studio bool
}

func (b Beds) MarshalJSON() ([]byte, error) {
	if b.Studio {
		return json.Marshal("Studio")
	}
	return json.Marshal(b.Count)
}

func (b *Beds) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*b = Beds{Count: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("beds must be a number or \"Studio\": %w", err)
	}
	*b = Beds{Studio: true}
	return nil
}

func (b Beds) String() string {
	if b.Studio {
		return "Studio"
	}
	return strconv.Itoa(b.Count)
}

// Property is a rental listing. Read-mostly: the data layer never mutates a
// listing, it only filters and aggregates. OwnerID may reference a vanished
// or non-owner user; readers tolerate that.
type Property struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Price     int      `json:"price"`
	Address   string   `json:"address"`
	Type      string   `json:"type"`
	Beds      Beds     `json:"beds"`
	Baths     float64  `json:"baths"`
	Sqft      int      `json:"sqft"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`

	OwnerID   int            `json:"ownerId,omitempty"`
	Views     int            `json:"views,omitempty"`
	Inquiries int            `json:"inquiries,omitempty"`
	Status    PropertyStatus `json:"status,omitempty"`
}

// EffectiveStatus resolves the stored status, defaulting to Active when the
// record predates the status field.
func (p *Property) EffectiveStatus() PropertyStatus {
	if p.Status == "" {
		return PropertyStatusActive
	}
	return p.Status
}

// PropertyDraft is the unsubmitted "add property" form payload kept around
// between visits.
type PropertyDraft struct {
	Title     string   `json:"title"`
	Price     int      `json:"price"`
	Address   string   `json:"address"`
	Type      string   `json:"type"`
	Beds      Beds     `json:"beds"`
	Baths     float64  `json:"baths"`
	Sqft      int      `json:"sqft"`
	Amenities []string `json:"amenities"`
}
