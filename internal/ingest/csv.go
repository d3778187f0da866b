// Package ingest parses raw analyst input into domain models: the
// observation CSV exported from the retail report, and the optional
// product-name mapping pasted from a spreadsheet.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kfujino/elastilens/internal/common"
	"github.com/kfujino/elastilens/internal/model"
	"github.com/shopspring/decimal"
)

// Expected column order in the exported CSV, after the header row.
const (
	colProductID = iota
	colDiscountFraction
	colListPrice
	colDemandChange
	colElasticity
	columnCount
)

// ParseObservations reads the observation CSV. The first row is a header
// and is skipped; a leading UTF-8 BOM is tolerated. The discount column
// holds a signed fraction (e.g. -0.09) and is converted to a positive
// percentage.
func ParseObservations(r io.Reader) ([]model.Observation, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	if len(records) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: expected a header row and at least one data row", common.ErrEmptyInput)
	}

	observations := make([]model.Observation, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header
		if len(record) < columnCount {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				common.ErrInvalidFormat, line, len(record), columnCount)
		}

		obs, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrInvalidFormat, line, err)
		}
		observations = append(observations, obs)
	}

	return observations, nil
}

func parseRecord(record []string) (model.Observation, error) {
	productID := strings.TrimSpace(record[colProductID])
	if productID == "" {
		return model.Observation{}, fmt.Errorf("empty product id")
	}

	fraction, err := parseFloat(record[colDiscountFraction], "discount fraction")
	if err != nil {
		return model.Observation{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[colListPrice]))
	if err != nil {
		return model.Observation{}, fmt.Errorf("list price %q: %v", record[colListPrice], err)
	}

	demandChange, err := parseFloat(record[colDemandChange], "demand change")
	if err != nil {
		return model.Observation{}, err
	}

	elasticity, err := parseFloat(record[colElasticity], "elasticity")
	if err != nil {
		return model.Observation{}, err
	}

	return model.Observation{
		ProductID:    productID,
		DiscountPct:  math.Abs(fraction) * 100,
		ListPrice:    price,
		DemandChange: demandChange,
		Elasticity:   elasticity,
	}, nil
}

func parseFloat(field, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: not a number", name, field)
	}
	return v, nil
}
