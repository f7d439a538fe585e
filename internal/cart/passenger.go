package cart

import (
	"strconv"
	"strings"

	"goairline/internal/domain"
	"goairline/internal/utils"
)

const maxPassengerAge = 120

// Passenger is one roster entry. It has no id of its own: its position in
// the roster is its identity, and its seats live in each segment's vector.
type Passenger struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           Gender `json:"gender"`
	TravelDocumentID string `json:"travelDocumentId"`
}

// Field names a mutable passenger attribute.
type Field string

const (
	FieldName           Field = "name"
	FieldAge            Field = "age"
	FieldGender         Field = "gender"
	FieldTravelDocument Field = "travelDocumentId"
)

// ParseField accepts the field name in the spellings the booking form uses.
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return FieldName, true
	case "age":
		return FieldAge, true
	case "gender":
		return FieldGender, true
	case "travel_document_id", "traveldocumentid", "passportnumber", "passport_number", "document":
		return FieldTravelDocument, true
	}
	return "", false
}

// set applies one field edit. Empty values clear the field.
func (p *Passenger) set(field Field, value string) error {
	switch field {
	case FieldName:
		p.Name = utils.NormalizeSpace(value)
	case FieldAge:
		value = strings.TrimSpace(value)
		if value == "" {
			p.Age = 0
			return nil
		}
		age, err := strconv.Atoi(value)
		if err != nil || age < 1 || age > maxPassengerAge {
			return domain.ValidationError{Field: string(FieldAge), Msg: "must be a number between 1 and 120", Err: err}
		}
		p.Age = age
	case FieldGender:
		g, ok := ParseGender(value)
		if !ok {
			return domain.ValidationError{Field: string(FieldGender), Msg: "must be MALE, FEMALE or OTHER"}
		}
		p.Gender = g
	case FieldTravelDocument:
		p.TravelDocumentID = strings.ToUpper(strings.TrimSpace(value))
	default:
		return domain.ValidationError{Field: "field", Msg: "unknown passenger field " + strconv.Quote(string(field))}
	}
	return nil
}

// missing returns the first required field left empty, or "".
func (p Passenger) missing(requireDocument bool) Field {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return FieldName
	case p.Age <= 0:
		return FieldAge
	case p.Gender == GenderUnset:
		return FieldGender
	case requireDocument && strings.TrimSpace(p.TravelDocumentID) == "":
		return FieldTravelDocument
	}
	return ""
}
