package entities

import "strings"

// CustomerInfo holds the service date/time/address fields collected on the
// details step. Dates/times are kept as strings ("2006-01-02" / "HH:MM");
// semantic checks such as "date not in the past" belong to the presentation
// layer, not here.

type CustomerInfo struct {
	ServiceDate    string   `json:"service_date"`
	ServiceTime    string   `json:"service_time"`
	Address        string   `json:"address"`
	Province       string   `json:"province"`
	District       string   `json:"district"`
	SubDistrict    string   `json:"sub_district"`
	AdditionalInfo string   `json:"additional_info"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// CustomerInfoPatch merge-assigns any subset of CustomerInfo fields.
// Nil fields retain the prior value.
type CustomerInfoPatch struct {
	ServiceDate    *string
	ServiceTime    *string
	Address        *string
	Province       *string
	District       *string
	SubDistrict    *string
	AdditionalInfo *string
	Latitude       *float64
	Longitude      *float64
}

func (c *CustomerInfo) Apply(p CustomerInfoPatch) {
	if p.ServiceDate != nil {
		c.ServiceDate = *p.ServiceDate
	}
	if p.ServiceTime != nil {
		c.ServiceTime = *p.ServiceTime
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Province != nil {
		c.Province = *p.Province
	}
	if p.District != nil {
		c.District = *p.District
	}
	if p.SubDistrict != nil {
		c.SubDistrict = *p.SubDistrict
	}
	if p.AdditionalInfo != nil {
		c.AdditionalInfo = *p.AdditionalInfo
	}
	if p.Latitude != nil {
		c.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		c.Longitude = p.Longitude
	}
}

// IsComplete reports whether every field required before checkout is filled.
// AdditionalInfo and the coordinate override are optional.
func (c CustomerInfo) IsComplete() bool {
	required := []string{c.ServiceDate, c.ServiceTime, c.Address, c.Province, c.District, c.SubDistrict}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
