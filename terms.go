package equitypack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Terms holds the loan constants printed on the compiled package. They are
// configuration injected into the compiler, never hardcoded there.
type Terms struct {
	LoanName       string
	LoanAmount     Money
	EquityRequired Money
}

// termsFile is the YAML form of Terms. Amounts are plain numbers in major
// units.
type termsFile struct {
	LoanName       string  `yaml:"loan_name"`
	LoanAmount     float64 `yaml:"loan_amount"`
	EquityRequired float64 `yaml:"equity_required"`
}

// DefaultTerms returns the demo closing terms used when no terms file exists.
func DefaultTerms() Terms {
	return Terms{
		LoanName:       "Moving Company LLC",
		LoanAmount:     M(1_000_000),
		EquityRequired: M(100_000),
	}
}

// LoadTerms reads the loan terms from a YAML file. A missing file is not an
// error: it yields the default terms.
func LoadTerms(path string) (Terms, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultTerms(), nil
	}
	if err != nil {
		return Terms{}, fmt.Errorf("could not read terms file %q: %w", path, err)
	}
	var tf termsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Terms{}, fmt.Errorf("could not parse terms file %q: %w", path, err)
	}
	return Terms{
		LoanName:       tf.LoanName,
		LoanAmount:     M(tf.LoanAmount),
		EquityRequired: M(tf.EquityRequired),
	}, nil
}
