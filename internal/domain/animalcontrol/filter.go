package animalcontrol

import "strings"

// Matches es el predicado de la página: tab + búsqueda (case-insensitive)
// sobre owner, contacto, dirección, especie, raza y detalle.
// tab vacío = cualquier tipo.
func Matches(r Record, tab RecordType, search string) bool {
	if tab != "" && r.RecordType != tab {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	for _, f := range []string{r.OwnerName, r.ContactNumber, r.Address, r.Species, r.Breed, r.Detail} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter aplica Matches sin modificar records.
func Filter(records []Record, tab RecordType, search string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, tab, search) {
			out = append(out, r)
		}
	}
	return out
}

// Partition separa por tab. Registros con tipo desconocido quedan en other.
func Partition(records []Record) (catch, surrendered, other []Record) {
	catch = make([]Record, 0)
	surrendered = make([]Record, 0)
	other = make([]Record, 0)
	for _, r := range records {
		switch r.RecordType {
		case RecordTypeCatch:
			catch = append(catch, r)
		case RecordTypeSurrendered:
			surrendered = append(surrendered, r)
		default:
			other = append(other, r)
		}
	}
	return catch, surrendered, other
}
