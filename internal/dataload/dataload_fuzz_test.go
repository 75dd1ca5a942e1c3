package dataload_test

import (
	"testing"

	"github.com/adizioli/covid19-vis/internal/dataload"
)

// FuzzParseObservations fuzzes the CSV parser with arbitrary file contents.
func FuzzParseObservations(f *testing.F) {
	seeds := []string{
		observationsCSV,
		"Country_Region,Date,Confirmed\n",
		"Country_Region,Date,Confirmed\nItaly,2020-03-01,100\n",
		"Country_Region,Date,Confirmed\nItaly,bad-date,100\n",
		"no,relevant,columns\na,b,c\n",
		"\"unterminated,quote\nItaly,2020-03-01,100",
		"",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		result, err := dataload.ParseObservations(data, testConfig())
		if err != nil {
			return // Unusable input is fine, panics are not
		}
		if result == nil {
			t.Fatal("nil result without an error")
		}
		if result.Fingerprint == "" {
			t.Fatal("parsed result without a fingerprint")
		}
	})
}
