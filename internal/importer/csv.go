// Package importer loads customers into the CRM from CSV files and provides
// the sample dataset used by crmctl seed.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/services"
)

// Result summarises an import run
type Result struct {
	Imported int
	Skipped  int
	Errors   []string
}

var requiredColumns = []string{"name", "email", "phone"}

// ImportCustomers reads a CSV with a header row of
// name,email,phone[,totalOrders,totalSpend,totalVisits] and creates one
// customer per valid row. Invalid rows are skipped and reported. A read
// failure other than a malformed row stops the import and returns the partial
// result with the error.
func ImportCustomers(ctx context.Context, r io.Reader, customers services.CustomerService) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := columns[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return result, fmt.Errorf("failed to read CSV: %w", err)
			}
			result.skip(line, err)
			continue
		}

		req, err := parseRow(record, columns)
		if err != nil {
			result.skip(line, err)
			continue
		}
		if _, err := customers.CreateCustomer(ctx, req); err != nil {
			result.skip(line, err)
			continue
		}
		result.Imported++
	}

	slog.Info("Customer import finished", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func (r *Result) skip(line int, err error) {
	slog.Warn("Skipping CSV row", "line", line, "error", err)
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("line %d: %v", line, err))
}

func parseRow(record []string, columns map[string]int) (*models.CreateCustomerRequest, error) {
	get := func(name string) string {
		i, ok := columns[strings.ToLower(name)]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	req := &models.CreateCustomerRequest{
		Name:  get("name"),
		Email: get("email"),
		Phone: get("phone"),
	}

	var err error
	if req.TotalOrders, err = optionalInt(get("totalOrders")); err != nil {
		return nil, fmt.Errorf("invalid totalOrders: %w", err)
	}
	if req.TotalVisits, err = optionalInt(get("totalVisits")); err != nil {
		return nil, fmt.Errorf("invalid totalVisits: %w", err)
	}
	if s := get("totalSpend"); s != "" {
		if req.TotalSpend, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("invalid totalSpend: %w", err)
		}
	}
	return req, nil
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
