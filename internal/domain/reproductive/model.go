package reproductive

// @Enum canine, feline
type Species string

const (
	SpeciesCanine Species = "canine"
	SpeciesFeline Species = "feline"
)

func (s Species) Valid() bool {
	return s == SpeciesCanine || s == SpeciesFeline
}

// @Enum castrated, spayed
type Status string

const (
	StatusCastrated Status = "castrated"
	StatusSpayed    Status = "spayed"
)

// Record es un registro de castración / esterilización.
type Record struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	OwnerName          string  `json:"owner_name"`
	Species            Species `json:"species"`
	Date               string  `json:"date,omitempty"`
	DateOfBirth        string  `json:"date_of_birth,omitempty"`
	Color              string  `json:"color,omitempty"`
	Breed              string  `json:"breed,omitempty"`
	Gender             string  `json:"gender,omitempty"`
	ReproductiveStatus Status  `json:"reproductive_status,omitempty"`
}

// Input es el estado completo del formulario; se usa tanto en POST como en PUT.
type Input struct {
	Name               string  `json:"name" validate:"required"`
	OwnerName          string  `json:"owner_name" validate:"required"`
	Species            Species `json:"species" validate:"required,oneof=canine feline"`
	Date               string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateOfBirth        string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Color              string  `json:"color,omitempty"`
	Breed              string  `json:"breed,omitempty"`
	Gender             string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	ReproductiveStatus Status  `json:"reproductive_status,omitempty" validate:"omitempty,oneof=castrated spayed"`
}

// InputOf siembra el formulario de edición.
func InputOf(r Record) Input {
	return Input{
		Name:               r.Name,
		OwnerName:          r.OwnerName,
		Species:            r.Species,
		Date:               r.Date,
		DateOfBirth:        r.DateOfBirth,
		Color:              r.Color,
		Breed:              r.Breed,
		Gender:             r.Gender,
		ReproductiveStatus: r.ReproductiveStatus,
	}
}

// ListQuery son los filtros server-side de GET /reproductive-records/.
type ListQuery struct {
	Species Species
	Search  string
}
