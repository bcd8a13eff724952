// Package capacidad parses the regulator-published access-capacity file of
// the transmission network into a validated, strongly-typed dataset: one
// record per substation-voltage node, a tri-state value model that never
// conflates "not applicable" or "unknown" with zero, and a full audit trail
// of warnings from coercion, derivation and dataset checks.
//
// Typical use:
//
//	ds, err := capacidad.ParseFile("2026_02_20_GRT_demanda.csv", capacidad.DefaultOptions())
//	if err != nil {
//	    // structural mismatch: the file does not match the known schema
//	}
//	total := ds.TotalAvailable(domain.DemandCEPCH)
//
// Export, reporting and dashboard collaborators consume the returned
// domain.Dataset and must not re-parse raw cell text themselves.
package capacidad

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"capacidad/internal/config"
	"capacidad/internal/parse"
	"capacidad/pkg/contracts/domain"
)

// Options tunes a parse invocation.
type Options struct {
	// ToleranceMW is the absolute tolerance of derivation comparisons.
	ToleranceMW int64
	// Workers sets row-assembly parallelism; 1 means sequential. Results
	// are identical either way, including warning order.
	Workers int
	// ExpectedRows is the publication's expected data-row count; a
	// mismatch is a dataset warning. 0 disables the check.
	ExpectedRows int
	// Logger receives structured progress and anomaly logs; nil uses
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options for the current publication.
func DefaultOptions() Options {
	return fromConfig(config.Default())
}

// OptionsFromEnv builds options from CAPACIDAD_* environment variables and
// the optional CAPACIDAD_CONFIG_FILE overlay.
func OptionsFromEnv() (Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return Options{}, err
	}
	opts := fromConfig(cfg)
	opts.Logger = cfg.Logging.NewLogger(os.Stderr)
	return opts, nil
}

func fromConfig(cfg *config.Config) Options {
	return Options{
		ToleranceMW:  cfg.Engine.ToleranceMW,
		Workers:      cfg.Engine.Workers,
		ExpectedRows: cfg.Engine.ExpectedRows,
	}
}

// Parse reads one publication from r. source labels the input in logs and
// the dataset. It returns a StructuralMismatchError when the header shape
// or column count disagrees with the known schema; every other anomaly is
// recorded in the dataset's warnings.
func Parse(r io.Reader, source string, opts Options) (*domain.Dataset, error) {
	p, err := parse.NewParser(config.EngineConfig{
		ToleranceMW:  opts.ToleranceMW,
		Workers:      opts.Workers,
		ExpectedRows: opts.ExpectedRows,
	}, opts.Logger)
	if err != nil {
		return nil, err
	}
	return p.Parse(r, source)
}

// ParseFile parses the publication at path.
func ParseFile(path string, opts Options) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path), opts)
}
