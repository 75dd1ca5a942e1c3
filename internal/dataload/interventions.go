package dataload

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// LoadInterventions reads intervention events from cfg.InterventionsPath.
// An empty path means no interventions were supplied.
func LoadInterventions(cfg *contract.Config) ([]schema.InterventionEvent, error) {
	if cfg.InterventionsPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(cfg.InterventionsPath)
	if err != nil {
		return nil, fmt.Errorf("read interventions: %w", err)
	}
	return ParseInterventions(data, cfg)
}

// ParseInterventions parses raw CSV bytes into intervention events. Rows with
// a blank group, date or type are dropped so later joins never see partial
// events.
func ParseInterventions(data []byte, cfg *contract.Config) ([]schema.InterventionEvent, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read interventions header: %w", err)
	}
	stripBOM(header)

	groupIdx := findColumn(header, cfg.GroupColumn)
	if groupIdx < 0 {
		return nil, &schema.InterventionDataError{Column: cfg.GroupColumn, Path: cfg.InterventionsPath}
	}
	dateIdx := findColumn(header, schema.InterventionDateColumn)
	if dateIdx < 0 {
		return nil, &schema.InterventionDataError{Column: schema.InterventionDateColumn, Path: cfg.InterventionsPath}
	}
	typeIdx := findColumn(header, schema.InterventionTypeColumn)
	if typeIdx < 0 {
		return nil, &schema.InterventionDataError{Column: schema.InterventionTypeColumn, Path: cfg.InterventionsPath}
	}

	var events []schema.InterventionEvent
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // Skip malformed rows
		}
		event, ok := parseInterventionRow(record, groupIdx, dateIdx, typeIdx, cfg.DateFormat)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// parseInterventionRow converts one CSV record into an intervention event.
// It reports false for records that are short or have blank fields.
func parseInterventionRow(record []string, groupIdx, dateIdx, typeIdx int, dateFormat string) (schema.InterventionEvent, bool) {
	if len(record) <= max(groupIdx, dateIdx, typeIdx) {
		return schema.InterventionEvent{}, false
	}

	group := strings.TrimSpace(record[groupIdx])
	eventType := strings.TrimSpace(record[typeIdx])
	if group == "" || eventType == "" {
		return schema.InterventionEvent{}, false
	}

	date, err := contract.ParseDay(record[dateIdx], dateFormat)
	if err != nil {
		return schema.InterventionEvent{}, false
	}

	return schema.InterventionEvent{Group: group, Date: date, Type: eventType}, true
}
