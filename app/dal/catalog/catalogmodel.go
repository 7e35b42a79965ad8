package catalog

import "strings"

type Category string

const (
	CategoryEquipment   Category = "Equipment"
	CategoryBalls       Category = "Balls"
	CategoryProtective  Category = "Protective Gear"
	CategoryAccessories Category = "Accessories"
)

// Categories lists the category vocabulary in storefront order.
var Categories = []Category{CategoryEquipment, CategoryBalls, CategoryProtective, CategoryAccessories}

type Demographic string

const (
	DemographicAdult  Demographic = "Adult"
	DemographicJunior Demographic = "Junior"
	DemographicUnisex Demographic = "Unisex"
)

var Demographics = []Demographic{DemographicAdult, DemographicJunior, DemographicUnisex}

type Activity string

const (
	ActivityCricket     Activity = "Cricket"
	ActivitySoccer      Activity = "Soccer"
	ActivityTennis      Activity = "Tennis"
	ActivityPickleball  Activity = "Pickleball"
	ActivityBadminton   Activity = "Badminton"
	ActivityFootball    Activity = "Football"
	ActivityRacquetball Activity = "Racquetball"
)

var Activities = []Activity{
	ActivityCricket, ActivitySoccer, ActivityTennis, ActivityPickleball,
	ActivityBadminton, ActivityFootball, ActivityRacquetball,
}

type Product struct {
	Id           string      `json:"id" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	Price        float64     `json:"price" validate:"gte=0"`
	Category     Category    `json:"category" validate:"required"`
	Demographic  Demographic `json:"demographic" validate:"required"`
	Activity     Activity    `json:"activity" validate:"required"`
	Images       []string    `json:"images" validate:"min=1,dive,required"`
	Description  string      `json:"description,optional"`
	Features     []string    `json:"features,optional"`
	IsNew        bool        `json:"isNew,optional"`
	IsBestSeller bool        `json:"isBestSeller,optional"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	cp := p
	cp.Images = append([]string(nil), p.Images...)
	cp.Features = append([]string(nil), p.Features...)
	return cp
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func (d Demographic) Valid() bool {
	for _, v := range Demographics {
		if d == v {
			return true
		}
	}
	return false
}

func (a Activity) Valid() bool {
	for _, v := range Activities {
		if a == v {
			return true
		}
	}
	return false
}

// ParseCategory returns the category named by raw, or "" for sentinels and unknown values.
func ParseCategory(raw string) Category {
	c := Category(strings.TrimSpace(raw))
	if c.Valid() {
		return c
	}
	return ""
}

func ParseDemographic(raw string) Demographic {
	d := Demographic(strings.TrimSpace(raw))
	if d.Valid() {
		return d
	}
	return ""
}

func ParseActivity(raw string) Activity {
	a := Activity(strings.TrimSpace(raw))
	if a.Valid() {
		return a
	}
	return ""
}

func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}

func DemographicNames() []string {
	names := make([]string, 0, len(Demographics))
	for _, d := range Demographics {
		names = append(names, string(d))
	}
	return names
}

func ActivityNames() []string {
	names := make([]string, 0, len(Activities))
	for _, a := range Activities {
		names = append(names, string(a))
	}
	return names
}
