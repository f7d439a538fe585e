// Package cart holds the in-memory booking cart: the passenger roster shared
// by every flight segment of a trip, the per-segment seat assignment vectors
// and the engine that toggles seats on them.
package cart

import "strings"

type TripType string

const (
	OneWay    TripType = "ONE_WAY"
	RoundTrip TripType = "ROUND_TRIP"
	MultiCity TripType = "MULTI_CITY"
)

// ParseTripType accepts the search form value; empty means ONE_WAY.
func ParseTripType(s string) (TripType, bool) {
	switch TripType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", OneWay:
		return OneWay, true
	case RoundTrip:
		return RoundTrip, true
	case MultiCity:
		return MultiCity, true
	}
	return "", false
}

// accepts reports whether n segments fit the trip type.
func (t TripType) accepts(n int) bool {
	switch t {
	case OneWay:
		return n == 1
	case RoundTrip:
		return n == 2
	case MultiCity:
		return n >= 2
	}
	return false
}

type FareType string

const (
	FareNone          FareType = "NONE"
	FareArmedForces   FareType = "ARMED_FORCES"
	FareStudent       FareType = "STUDENT"
	FareSeniorCitizen FareType = "SENIOR_CITIZEN"
)

func ParseFareType(s string) (FareType, bool) {
	switch FareType(strings.ToUpper(strings.TrimSpace(s))) {
	case "", FareNone:
		return FareNone, true
	case FareArmedForces:
		return FareArmedForces, true
	case FareStudent:
		return FareStudent, true
	case FareSeniorCitizen:
		return FareSeniorCitizen, true
	}
	return "", false
}

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ParseGender maps form input to a Gender. The select placeholder counts as unset.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToUpper(strings.TrimSpace(s))) {
	case "", "SELECT GENDER":
		return GenderUnset, true
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderOther:
		return GenderOther, true
	}
	return "", false
}

type AircraftSize string

const (
	AircraftLight  AircraftSize = "LIGHT"
	AircraftMedium AircraftSize = "MEDIUM"
	AircraftLarge  AircraftSize = "LARGE"
	AircraftJumbo  AircraftSize = "JUMBO"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

type JourneyStatus string

const (
	JourneyNotStarted JourneyStatus = "NOT_STARTED"
	JourneyScheduled  JourneyStatus = "SCHEDULED"
	JourneyInProgress JourneyStatus = "IN_PROGRESS"
	JourneyCompleted  JourneyStatus = "COMPLETED"
)

// BindingMode decides how seats map back onto roster slots after a change.
type BindingMode string

const (
	// BindRepack re-packs selected seats into roster order after every change,
	// so the passenger holding a given seat may shift on eviction.
	BindRepack BindingMode = "REPACK"
	// BindStable keeps each passenger on the seat they were given; eviction
	// replaces the oldest assignment in place.
	BindStable BindingMode = "STABLE"
)

func ParseBindingMode(s string) (BindingMode, bool) {
	switch BindingMode(strings.ToUpper(strings.TrimSpace(s))) {
	case "", BindRepack:
		return BindRepack, true
	case BindStable:
		return BindStable, true
	}
	return "", false
}
