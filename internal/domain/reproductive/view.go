package reproductive

import (
	"strings"
)

const DefaultPageSize = 10

// SpeciesAll es el valor del filtro que muestra ambas especies.
const SpeciesAll Species = "all"

// View es el estado de la tabla: filtro de especie, búsqueda y página.
// Cambiar filtro o búsqueda vuelve a la página 1.
type View struct {
	species  Species
	search   string
	page     int
	pageSize int
}

func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &View{species: SpeciesAll, page: 1, pageSize: pageSize}
}

func (v *View) SetSpecies(s Species) {
	if s == "" {
		s = SpeciesAll
	}
	v.species = s
	v.page = 1
}

func (v *View) SetSearch(q string) {
	v.search = q
	v.page = 1
}

// SetPage no valida contra el total; Apply acota.
func (v *View) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	v.page = p
}

func (v *View) Species() Species { return v.species }
func (v *View) Search() string   { return v.search }
func (v *View) CurrentPage() int { return v.page }

// Page es una página ya filtrada.
type Page struct {
	Items      []Record `json:"items"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalItems int      `json:"total_items"`
	TotalPages int      `json:"total_pages"`
}

// Matches es el predicado de la tabla.
func Matches(r Record, species Species, search string) bool {
	if species != "" && species != SpeciesAll && r.Species != species {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	for _, f := range []string{r.Name, r.OwnerName, r.Breed, r.Color} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func Filter(records []Record, species Species, search string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, species, search) {
			out = append(out, r)
		}
	}
	return out
}

// Apply filtra y pagina records. La página se acota a [1, TotalPages].
func (v *View) Apply(records []Record) Page {
	filtered := Filter(records, v.species, v.search)

	total := len(filtered)
	pages := (total + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		pages = 1
	}
	if v.page > pages {
		v.page = pages
	}

	start := (v.page - 1) * v.pageSize
	end := start + v.pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Page:       v.page,
		PageSize:   v.pageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}
