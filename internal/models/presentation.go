package models

type Audience string

const (
	AudienceConference Audience = "conference"
	AudienceInternal   Audience = "internal"
	AudienceClient     Audience = "client"
	AudienceInterview  Audience = "interview"
	AudienceWorkshop   Audience = "workshop"
)

// Audiences lists every audience in declaration order.
var Audiences = []Audience{
	AudienceConference,
	AudienceInternal,
	AudienceClient,
	AudienceInterview,
	AudienceWorkshop,
}

func (a Audience) Valid() bool {
	for _, v := range Audiences {
		if a == v {
			return true
		}
	}
	return false
}

type TimeConstraint string

const (
	Time5Min  TimeConstraint = "5min"
	Time15Min TimeConstraint = "15min"
	Time30Min TimeConstraint = "30min"
	Time1Hour TimeConstraint = "1hour"
)

var TimeConstraints = []TimeConstraint{Time5Min, Time15Min, Time30Min, Time1Hour}

func (t TimeConstraint) Valid() bool {
	for _, v := range TimeConstraints {
		if t == v {
			return true
		}
	}
	return false
}

type PresentationConfig struct {
	Audience        Audience       `json:"audience" yaml:"audience"`
	TimeConstraint  TimeConstraint `json:"timeConstraint" yaml:"timeConstraint"`
	IncludeQA       bool           `json:"includeQA" yaml:"includeQA"`
	IncludeLiveDemo bool           `json:"includeLiveDemo" yaml:"includeLiveDemo"`
}
