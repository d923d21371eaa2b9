package compare

import (
	"github.com/goccy/go-json"
)

// JSONFormatter formats comparison sets as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// FormatPay generates JSON output for a pay comparison set.
func (jf *JSONFormatter) FormatPay(set *PayComparisonSet) (string, error) {
	return jf.marshal(set)
}

// FormatBenefit generates JSON output for a benefit comparison set.
func (jf *JSONFormatter) FormatBenefit(set *BenefitComparisonSet) (string, error) {
	return jf.marshal(set)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
