package animalcontrol

import "strings"

// RecordType define bajo qué tab aparece el registro.
// @Enum catch, surrendered
type RecordType string

const (
	RecordTypeCatch       RecordType = "catch"
	RecordTypeSurrendered RecordType = "surrendered"
)

func (t RecordType) Valid() bool {
	return t == RecordTypeCatch || t == RecordTypeSurrendered
}

// Label es el texto que se muestra en tabs/reportes.
func (t RecordType) Label() string {
	switch t {
	case RecordTypeCatch:
		return "Catch"
	case RecordTypeSurrendered:
		return "Surrendered"
	default:
		return string(t)
	}
}

// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Record es un registro de intake (captura o entrega voluntaria).
type Record struct {
	ID            int64      `json:"id"`
	OwnerName     string     `json:"owner_name"`
	ContactNumber string     `json:"contact_number,omitempty"`
	Address       string     `json:"address,omitempty"`
	RecordType    RecordType `json:"record_type"`
	Detail        string     `json:"detail,omitempty"`
	Species       string     `json:"species,omitempty"`
	Breed         string     `json:"breed,omitempty"`
	Gender        Gender     `json:"gender,omitempty"`
	Date          string     `json:"date"` // YYYY-MM-DD (el API a veces agrega hora)
	ImageURL      string     `json:"image_url,omitempty"`

	// El API no siempre manda zona horaria; se guardan tal cual.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Day devuelve solo la parte YYYY-MM-DD de Date.
func (r Record) Day() string {
	return DayOf(r.Date)
}

func DayOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

// CreateInput es el payload de POST. Los tags validate cumplen el rol del
// atributo required del formulario.
type CreateInput struct {
	OwnerName     string     `json:"owner_name" validate:"required"`
	ContactNumber string     `json:"contact_number,omitempty"`
	Address       string     `json:"address,omitempty"`
	RecordType    RecordType `json:"record_type" validate:"required,oneof=catch surrendered"`
	Detail        string     `json:"detail,omitempty"`
	Species       string     `json:"species,omitempty"`
	Breed         string     `json:"breed,omitempty"`
	Gender        Gender     `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Date          string     `json:"date" validate:"required,datetime=2006-01-02"`
	ImageURL      string     `json:"image_url,omitempty"`
}

// UpdateInput es el payload de PUT parcial.
// Punteros: nil = no enviar (el campo no aparece en el JSON).
type UpdateInput struct {
	OwnerName     *string     `json:"owner_name,omitempty"`
	ContactNumber *string     `json:"contact_number,omitempty"`
	Address       *string     `json:"address,omitempty"`
	RecordType    *RecordType `json:"record_type,omitempty" validate:"omitempty,oneof=catch surrendered"`
	Detail        *string     `json:"detail,omitempty"`
	Species       *string     `json:"species,omitempty"`
	Breed         *string     `json:"breed,omitempty"`
	Gender        *Gender     `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Date          *string     `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageURL      *string     `json:"image_url,omitempty"`
}

func (u UpdateInput) IsEmpty() bool {
	return u.OwnerName == nil && u.ContactNumber == nil && u.Address == nil &&
		u.RecordType == nil && u.Detail == nil && u.Species == nil &&
		u.Breed == nil && u.Gender == nil && u.Date == nil && u.ImageURL == nil
}

// Apply devuelve r con los campos presentes en u.
func (u UpdateInput) Apply(r Record) Record {
	if u.OwnerName != nil {
		r.OwnerName = *u.OwnerName
	}
	if u.ContactNumber != nil {
		r.ContactNumber = *u.ContactNumber
	}
	if u.Address != nil {
		r.Address = *u.Address
	}
	if u.RecordType != nil {
		r.RecordType = *u.RecordType
	}
	if u.Detail != nil {
		r.Detail = *u.Detail
	}
	if u.Species != nil {
		r.Species = *u.Species
	}
	if u.Breed != nil {
		r.Breed = *u.Breed
	}
	if u.Gender != nil {
		r.Gender = *u.Gender
	}
	if u.Date != nil {
		r.Date = *u.Date
	}
	if u.ImageURL != nil {
		r.ImageURL = *u.ImageURL
	}
	return r
}

// FormOf arma el estado de formulario de edición a partir de un registro.
func FormOf(r Record) CreateInput {
	return CreateInput{
		OwnerName:     r.OwnerName,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		RecordType:    r.RecordType,
		Detail:        r.Detail,
		Species:       r.Species,
		Breed:         r.Breed,
		Gender:        r.Gender,
		Date:          r.Day(),
		ImageURL:      r.ImageURL,
	}
}

// Diff arma el patch con los campos del formulario que cambiaron respecto de orig.
func Diff(orig Record, form CreateInput) UpdateInput {
	var u UpdateInput
	before := FormOf(orig)

	if form.OwnerName != before.OwnerName {
		u.OwnerName = ptr(form.OwnerName)
	}
	if form.ContactNumber != before.ContactNumber {
		u.ContactNumber = ptr(form.ContactNumber)
	}
	if form.Address != before.Address {
		u.Address = ptr(form.Address)
	}
	if form.RecordType != before.RecordType {
		u.RecordType = ptr(form.RecordType)
	}
	if form.Detail != before.Detail {
		u.Detail = ptr(form.Detail)
	}
	if form.Species != before.Species {
		u.Species = ptr(form.Species)
	}
	if form.Breed != before.Breed {
		u.Breed = ptr(form.Breed)
	}
	if form.Gender != before.Gender {
		u.Gender = ptr(form.Gender)
	}
	if form.Date != before.Date {
		u.Date = ptr(form.Date)
	}
	if form.ImageURL != before.ImageURL {
		u.ImageURL = ptr(form.ImageURL)
	}
	return u
}

func ptr[T any](v T) *T { return &v }
