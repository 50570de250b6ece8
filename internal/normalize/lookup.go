// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

// LookupTable pairs vendor codes with readable labels by position.
type LookupTable struct {
	Codes  []string
	Labels []string
}

// Convert looks code up in the table. See [ConvertLookup].
func (t LookupTable) Convert(code string) string {
	return ConvertLookup(code, t.Codes, t.Labels)
}

// ConvertLookup returns the label at the position of the first code equal
// to code. Unknown codes are returned unchanged. A match past the end of
// labels yields "".
func ConvertLookup(code string, codes, labels []string) string {
	for i, c := range codes {
		if c != code {
			continue
		}
		if i >= len(labels) {
			return ""
		}
		return labels[i]
	}

	return code
}

var (
	absenceTypes = LookupTable{
		Codes:  []string{"T", "A", "U", "R", "E"},
		Labels: []string{"Tutte", "Assenza", "Uscita anticipata", "Ritardo", "Rientri"},
	}

	justifiedBy = LookupTable{
		Codes:  []string{"1", "2"},
		Labels: []string{"Genitore/Tutore", "Docente"},
	}

	communicationTypes = LookupTable{
		Codes:  []string{"1", "4", "5"},
		Labels: []string{"Circolare", "Scuola/Famiglia", "Comunicazione"},
	}

	noteTypes = LookupTable{
		Codes:  []string{"C", "S"},
		Labels: []string{"Classe", "Studente"},
	}

	weekdays = LookupTable{
		Codes:  []string{"G1", "G2", "G3", "G4", "G5", "G6"},
		Labels: []string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato"},
	}

	permissionTypes = LookupTable{
		Codes:  []string{"A", "U", "E", "G", "D"},
		Labels: []string{"Assenza", "Uscita Anticipata", "Entrata Posticipata", "Uscita Didattica", "DaD (Didattica a distanza)"},
	}

	gradeTypes = LookupTable{
		Codes:  []string{"T", "S", "G", "O", "P", "A"},
		Labels: []string{"Tutti", "Scritto", "Grafico", "Orale", "Pratico", "Unico"},
	}

	timelineTypes = LookupTable{
		Codes:  []string{"C", "L", "M", "N", "A", "V"},
		Labels: []string{"Comunicazione", "Argomento", "Compito", "Nota", "Assenza", "Voto"},
	}
)
