// Package schema carries the versioned column table of the publication as
// data, not logic. The live header is validated against this table at
// parse time; field identity always comes from position, never from label
// text, because labels are not guaranteed unique or stable across
// publications.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"capacidad/pkg/contracts/domain"
)

const (
	// ExpectedColumns is the column width of the publication.
	ExpectedColumns = 61
	// HeaderRows is the number of hierarchical header rows.
	HeaderRows = 4
	// Delimiter is the field separator. The format has no quoting or
	// escaping of embedded delimiters.
	Delimiter = ";"
	// NotApplicableToken is the sentinel for not-applicable numeric fields,
	// matched case-insensitively after trimming.
	NotApplicableToken = "N/A"
	// CheckMark is the presence-flag glyph.
	CheckMark = "✓"
	// ListSeparator separates entries of a binding-criterion code list.
	ListSeparator = "/"
	// DefaultExpectedRows is the data-row count of the current publication.
	DefaultExpectedRows = 937
)

// ValueKind selects the coercion rule for a column.
type ValueKind string

const (
	KindInteger  ValueKind = "integer"
	KindFlag     ValueKind = "flag"
	KindEnum     ValueKind = "enum"
	KindCodeList ValueKind = "code_list"
	KindFreeText ValueKind = "free_text"
	KindRaw      ValueKind = "raw"
)

// EnumSet names the closed value set an enum column is matched against.
type EnumSet string

const (
	SetRegion    EnumSet = "region"
	SetAgreement EnumSet = "agreement"
	SetTender    EnumSet = "tender"
)

// ColumnSpec is the static, immutable metadata of one column.
type ColumnSpec struct {
	Position int            `yaml:"position" validate:"required,min=1,max=61"`
	Field    domain.FieldID `yaml:"field" validate:"required"`
	Kind     ValueKind      `yaml:"kind" validate:"required,oneof=integer flag enum code_list free_text raw"`
	Set      EnumSet        `yaml:"set,omitempty" validate:"omitempty,oneof=region agreement tender"`
	// Group is the expected first-header-row label at the start of a merged
	// group; empty for continuation columns.
	Group string `yaml:"group,omitempty"`
	// Label is the leaf header label, used for diagnostics only.
	Label string `yaml:"label,omitempty"`
}

type table struct {
	Version string       `yaml:"version"`
	Columns []ColumnSpec `yaml:"columns"`
}

//go:embed columns.yml
var columnsYAML []byte

var (
	loadOnce sync.Once
	loaded   table
	loadErr  error
)

func load() {
	if err := yaml.Unmarshal(columnsYAML, &loaded); err != nil {
		loadErr = fmt.Errorf("schema: unmarshal column table: %w", err)
		return
	}
	if n := len(loaded.Columns); n != ExpectedColumns {
		loadErr = fmt.Errorf("schema: column table has %d entries, want %d", n, ExpectedColumns)
		return
	}
	v := validator.New()
	for i, spec := range loaded.Columns {
		if err := v.Struct(spec); err != nil {
			loadErr = fmt.Errorf("schema: column %d (%s): %w", i+1, spec.Field, err)
			return
		}
		if spec.Position != i+1 {
			loadErr = fmt.Errorf("schema: column %s at index %d has position %d, want %d",
				spec.Field, i, spec.Position, i+1)
			return
		}
		if spec.Kind == KindEnum && spec.Set == "" {
			loadErr = fmt.Errorf("schema: enum column %s has no value set", spec.Field)
			return
		}
	}
}

// Table returns the 61 column specs in position order. The table is loaded
// and validated once per process.
func Table() ([]ColumnSpec, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	return loaded.Columns, nil
}

// Version returns the schema version string of the embedded table.
func Version() string {
	loadOnce.Do(load)
	return loaded.Version
}

// Regions is the closed set of autonomous communities of the publication.
func Regions() []string {
	return []string{
		"Andalucía", "Aragón", "Canarias", "Cantabria",
		"Castilla y León", "Castilla-La Mancha", "Cataluña",
		"Ceuta", "Comunidad de Madrid", "Comunidad Foral de Navarra",
		"Comunidad Valenciana", "Extremadura", "Galicia",
		"Islas Baleares", "La Rioja", "País Vasco",
		"Principado de Asturias", "Región de Murcia",
	}
}

// ReasonTemplate classifies a non-grantable reason text by substring match
// after whitespace normalization, case-insensitively.
type ReasonTemplate struct {
	Class      domain.ReasonClass
	Substrings []string
}

// ReasonTemplates returns the known regulatory reason templates in match
// order. New phrasing falls through to unclassified, never to a failure.
func ReasonTemplates() []ReasonTemplate {
	return []ReasonTemplate{
		{Class: domain.ReasonTenderReserved, Substrings: []string{"concurso"}},
		{Class: domain.ReasonAgreementPending, Substrings: []string{"valor de referencia", "acuerdo"}},
	}
}
