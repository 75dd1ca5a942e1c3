// Binary covidvis turns COVID-19 time series into comparable chart data.
package main

import (
	"os"

	"github.com/adizioli/covid19-vis/cmd"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/datastore"
)

func main() {
	cmd.SetStoreManager(datastore.Manager)

	err := cmd.Execute()

	// Flush stores and profiles even when the command failed
	datastore.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Profiling shutdown", perr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
