package output

import (
	"io"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// Render formats result with the named formatter.
func Render(result *domain.ComparisonResult, format string) ([]byte, error) {
	f, err := GetFormatterByName(format)
	if err != nil {
		return nil, err
	}
	return f.Format(result)
}

// WriteTo renders result in the named format to w.
func WriteTo(w io.Writer, result *domain.ComparisonResult, format string) error {
	data, err := Render(result, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport renders result in the named format into a timestamped file
// in dir and returns its path.
func GenerateReport(result *domain.ComparisonResult, format, dir string) (string, error) {
	f, err := GetFormatterByName(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, result, dir)
}
