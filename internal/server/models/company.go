package models

import "time"

// Company describes the operating company. Cgst is optional.
type Company struct {
	ID         int64     `json:"id"`
	Cname      string    `json:"cname"`
	Caddress   string    `json:"caddress"`
	Cgst       *string   `json:"cgst"`
	Cphone     string    `json:"cphone"`
	CownerName string    `json:"cowner_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CompanyPatch struct {
	Cname      *string
	Caddress   *string
	Cgst       *string
	Cphone     *string
	CownerName *string
}

func (p CompanyPatch) Empty() bool {
	return p.Cname == nil && p.Caddress == nil && p.Cgst == nil && p.Cphone == nil && p.CownerName == nil
}
